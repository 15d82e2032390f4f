// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package match

import (
	"strings"

	"github.com/langmatch/langmatch/internal/textutil"
)

// An Equaler decides whether a single field of a wanted value agrees with
// the same field of a candidate.
//
// Equal is always called with the wanted value as the first argument and the
// candidate as the second. Implementations may rely on this order to model
// relations that are not symmetric, such as "is understood by".
type Equaler[T any] interface {
	Equal(wanted, candidate T) bool
}

// A FieldComparer is an Equaler that can also report whether its field is
// unset in a value. Optional fields require a FieldComparer; essential
// fields only need an Equaler.
type FieldComparer[T any] interface {
	Equaler[T]
	IsEmpty(v T) bool
}

// StringField compares a field holding an optional string.
//
// Absent values are equal to each other and never equal to a present value.
// Present values are compared without regard to case. A field is empty if it
// is absent or holds only white space.
type StringField[T any] struct {
	// Name identifies the field in diagnostics. It does not affect matching.
	Name string

	// Get returns the value of the field and whether it is present.
	Get func(v T) (value string, ok bool)
}

// Equal implements Equaler.
func (f StringField[T]) Equal(wanted, candidate T) bool {
	a, aok := f.Get(wanted)
	b, bok := f.Get(candidate)
	if !aok || !bok {
		return aok == bok
	}
	return strings.EqualFold(a, b)
}

// IsEmpty implements FieldComparer.
func (f StringField[T]) IsEmpty(v T) bool {
	s, ok := f.Get(v)
	return !ok || textutil.IsBlank(s)
}

func (f StringField[T]) String() string {
	return f.Name
}

// Funcs adapts a pair of functions to the FieldComparer interface.
// A nil EmptyFunc reports every value as non-empty.
type Funcs[T any] struct {
	EqualFunc func(wanted, candidate T) bool
	EmptyFunc func(v T) bool
}

// Equal implements Equaler.
func (f Funcs[T]) Equal(wanted, candidate T) bool {
	return f.EqualFunc(wanted, candidate)
}

// IsEmpty implements FieldComparer.
func (f Funcs[T]) IsEmpty(v T) bool {
	if f.EmptyFunc == nil {
		return false
	}
	return f.EmptyFunc(v)
}

// EqualFunc is an Equaler backed by a single function. It is convenient for
// essential fields, for which emptiness is never consulted.
type EqualFunc[T any] func(wanted, candidate T) bool

// Equal implements Equaler.
func (f EqualFunc[T]) Equal(wanted, candidate T) bool {
	return f(wanted, candidate)
}
