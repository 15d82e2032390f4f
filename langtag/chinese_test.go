// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langtag

import "testing"

func makeTag(mods ...func(*Tag)) Tag {
	t := Tag{
		Language:   "this",
		Extlang:    "is",
		Script:     "another",
		Region:     "language",
		Variant:    "with",
		Extension:  "some",
		PrivateUse: "fields",
	}
	for _, m := range mods {
		m(&t)
	}
	return t
}

func chinese(script, region string) Tag {
	return makeTag(func(t *Tag) { t.Language, t.Script, t.Region = "zh", script, region })
}

func TestInferChineseScript(t *testing.T) {
	tests := []struct {
		desc   string
		in     Tag
		script string
	}{
		{"other language", makeTag(), "another"},
		{"other language with region", makeTag(func(t *Tag) { t.Script, t.Region = "", "TW" }), ""},
		{"script present", chinese("anything", "HK"), "anything"},
		{"no region", chinese("", ""), ""},
		{"blank region", chinese("", "  "), ""},
		{"unknown region", chinese("", "US"), ""},
		{"CN", chinese("", "CN"), "hans"},
		{"SG", chinese("  ", "SG"), "hans"},
		{"MY", chinese("", "MY"), "hans"},
		{"TW", chinese("", "TW"), "hant"},
		{"HK", chinese("  ", "HK"), "hant"},
		{"MO", chinese("", "mo"), "hant"},
		{"upper case language", makeTag(func(t *Tag) { t.Language, t.Script, t.Region = "ZH", "", "cn" }), "hans"},
	}
	for _, tt := range tests {
		got := InferChineseScript(tt.in)
		want := tt.in
		if tt.script != tt.in.Script {
			want.Script = tt.script
		}
		if got != want {
			t.Errorf("%s: was %#v; want %#v", tt.desc, got, want)
		}
	}
}

func TestInferChineseScriptDoesNotMutate(t *testing.T) {
	in := []Tag{chinese("", "CN")}
	InferChineseScript(in[0])
	if in[0] != chinese("", "CN") {
		t.Errorf("input was modified to %#v", in[0])
	}
}
