// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langtag selects the best available language tag for a requested
// one.
//
// A Tag holds the subtags of a BCP 47 language tag as plain strings. The
// default Matcher requires the language to agree and then prefers, in order,
// an agreeing script and an agreeing region. Before comparing, a Chinese tag
// without a script gets the script that is implied by its region, so that
// zh-HK selects zh-Hant rather than zh-Hans.
//
// Tags are usually obtained from golang.org/x/text/language using Parse or
// FromTag.
package langtag

import "strings"

// Tag is a language tag split into its subtags. An empty string denotes an
// absent subtag. Comparisons of subtags are case-insensitive.
type Tag struct {
	Language   string
	Extlang    string
	Script     string
	Region     string
	Variant    string
	Extension  string
	PrivateUse string
}

// String returns the subtags of t joined by hyphens. A missing language is
// written as "und".
func (t Tag) String() string {
	lang := t.Language
	if lang == "" {
		lang = "und"
	}
	parts := []string{lang}
	for _, s := range [...]string{t.Extlang, t.Script, t.Region, t.Variant, t.Extension, t.PrivateUse} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}
