// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "github.com/langmatch/langmatch/match"

// Comparers for each of the subtags of a Tag.
var (
	LanguageField   = field("language", func(t Tag) string { return t.Language })
	ExtlangField    = field("extlang", func(t Tag) string { return t.Extlang })
	ScriptField     = field("script", func(t Tag) string { return t.Script })
	RegionField     = field("region", func(t Tag) string { return t.Region })
	VariantField    = field("variant", func(t Tag) string { return t.Variant })
	ExtensionField  = field("extension", func(t Tag) string { return t.Extension })
	PrivateUseField = field("privateUse", func(t Tag) string { return t.PrivateUse })
)

func field(name string, get func(Tag) string) match.StringField[Tag] {
	return match.StringField[Tag]{
		Name: name,
		Get: func(t Tag) (string, bool) {
			s := get(t)
			return s, s != ""
		},
	}
}
