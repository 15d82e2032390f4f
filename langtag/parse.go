// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// FromTag returns the subtags of a parsed language tag. Undetermined parts of
// t are left empty. Extended language subtags are folded into the language
// by x/text, so Extlang is never set.
func FromTag(t language.Tag) Tag {
	var tag Tag
	b, s, r := t.Raw()
	if b != (language.Base{}) {
		tag.Language = b.String()
	}
	if s != (language.Script{}) {
		tag.Script = s.String()
	}
	if r != (language.Region{}) {
		tag.Region = r.String()
	}

	var variants []string
	for _, v := range t.Variants() {
		variants = append(variants, v.String())
	}
	tag.Variant = strings.Join(variants, "-")

	var exts []string
	for _, e := range t.Extensions() {
		if e.Type() == 'x' {
			tag.PrivateUse = e.String()
			continue
		}
		exts = append(exts, e.String())
	}
	tag.Extension = strings.Join(exts, "-")
	return tag
}

// Parse parses a BCP 47 language tag using golang.org/x/text/language and
// returns its subtags.
func Parse(s string) (Tag, error) {
	t, err := language.Parse(s)
	if err != nil {
		return Tag{}, err
	}
	return FromTag(t), nil
}

// MustParse is like Parse, but panics if s cannot be parsed.
// It simplifies safe initialization of Tag values.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseAll parses each of the given strings. It returns an error identifying
// the first string that cannot be parsed.
func ParseAll(list ...string) ([]Tag, error) {
	tags := make([]Tag, 0, len(list))
	for i, s := range list {
		t, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("langtag: tag %d (%q): %w", i, s, err)
		}
		tags = append(tags, t)
	}
	return tags, nil
}
