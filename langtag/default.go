// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "github.com/langmatch/langmatch/match"

// NewDefaultMatcher returns a Matcher that requires the language to agree,
// prefers agreement on script and then on region, and infers the script of
// Chinese tags from their region.
func NewDefaultMatcher() *match.Matcher[Tag] {
	return match.New(match.Config[Tag]{
		Essential:    []match.Equaler[Tag]{LanguageField},
		Optional:     []match.FieldComparer[Tag]{ScriptField, RegionField},
		Interceptors: []match.Interceptor[Tag]{InferChineseScript},
	})
}

var defaultMatcher = NewDefaultMatcher()

// DefaultMatcher returns a shared Matcher configured as by NewDefaultMatcher.
func DefaultMatcher() *match.Matcher[Tag] {
	return defaultMatcher
}

// BestMatch returns the candidate that best matches wanted using the default
// Matcher. It reports false if no candidate has the same language.
func BestMatch(wanted Tag, candidates []Tag) (Tag, bool) {
	return defaultMatcher.BestMatch(wanted, candidates)
}
