// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textutil contains small string helpers shared by the matching
// packages.
package textutil

import (
	"strings"
	"unicode"
)

// IsBlank reports whether s is empty or consists solely of white space.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, isNotSpace) < 0
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
