// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package match

import (
	"errors"
	"testing"
)

type refTag struct {
	Language *string
	Region   *string
	Dialect  string `match:"dialect-code"`
	Count    int
	hidden   string
}

func str(s string) *string { return &s }

func TestFieldByName(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"Language", nil},
		{"region", nil},
		{"dialect-code", nil},
		{"DIALECT", nil},
		{"Count", ErrFieldType},
		{"hidden", ErrUnknownField},
		{"Missing", ErrUnknownField},
		{"", ErrUnknownField},
	}
	for i, tt := range tests {
		_, err := FieldByName[refTag](tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("%d:%s: error was %v; want %v", i, tt.name, err, tt.err)
		}
	}
	if _, err := FieldByName[string]("Language"); !errors.Is(err, ErrFieldType) {
		t.Errorf("non-struct: error was %v; want %v", err, ErrFieldType)
	}
}

func TestPointerFields(t *testing.T) {
	f, err := FieldByName[refTag]("Region")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		a, b  refTag
		equal bool
	}{
		{refTag{}, refTag{}, true},
		{refTag{Region: str("SE")}, refTag{Region: str("se")}, true},
		{refTag{Region: str("SE")}, refTag{}, false},
		{refTag{}, refTag{Region: str("SE")}, false},
		// A present empty string is not the same as an absent value.
		{refTag{}, refTag{Region: str("")}, false},
		{refTag{Region: str("")}, refTag{Region: str("")}, true},
	}
	for i, tt := range tests {
		if got := f.Equal(tt.a, tt.b); got != tt.equal {
			t.Errorf("%d: equal was %v; want %v", i, got, tt.equal)
		}
	}
	for i, v := range []*string{nil, str(""), str(" \t")} {
		if !f.IsEmpty(refTag{Region: v}) {
			t.Errorf("%d: IsEmpty was false; want true", i)
		}
	}
	if f.IsEmpty(refTag{Region: str("SE")}) {
		t.Error("IsEmpty(SE) was true; want false")
	}
}

func TestPointerEntity(t *testing.T) {
	m, err := NewFromFields[*tag]([]string{"Language"}, []string{"Region"})
	if err != nil {
		t.Fatal(err)
	}
	sv := &tag{Language: "sv"}
	svFI := &tag{Language: "sv", Region: "FI"}
	got, ok := m.BestMatch(&tag{Language: "sv", Region: "SE"}, []*tag{nil, svFI, sv})
	if !ok || got != sv {
		t.Errorf("was %v, %v; want %v, true", got, ok, sv)
	}
	if i := m.BestMatchIndex(nil, []*tag{svFI, nil}); i != 1 {
		t.Errorf("nil wanted: index was %d; want 1", i)
	}
}

func TestNewFromFieldsError(t *testing.T) {
	if _, err := NewFromFields[tag]([]string{"language"}, []string{"dialect"}); !errors.Is(err, ErrUnknownField) {
		t.Errorf("optional: error was %v; want %v", err, ErrUnknownField)
	}
	if _, err := NewFromFields[tag]([]string{"dialect"}, nil); !errors.Is(err, ErrUnknownField) {
		t.Errorf("essential: error was %v; want %v", err, ErrUnknownField)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustNewFromFields did not panic")
		}
	}()
	MustNewFromFields[tag](nil, []string{"dialect"})
}
