// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"strings"

	"github.com/langmatch/langmatch/internal/textutil"
)

const (
	simplified  = "hans"
	traditional = "hant"
)

// chineseScript maps lowercase regions to the script they imply for Chinese.
var chineseScript = map[string]string{
	"cn": simplified,
	"sg": simplified,
	"my": simplified,
	"tw": traditional,
	"hk": traditional,
	"mo": traditional,
}

// InferChineseScript returns t with its script set to hans or hant if t is a
// Chinese tag without a script and its region implies one. Otherwise it
// returns t unchanged.
func InferChineseScript(t Tag) Tag {
	if !strings.EqualFold(t.Language, "zh") || !textutil.IsBlank(t.Script) || textutil.IsBlank(t.Region) {
		return t
	}
	if s, ok := chineseScript[strings.ToLower(t.Region)]; ok {
		t.Script = s
	}
	return t
}
