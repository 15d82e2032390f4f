// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package match

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnknownField is returned when a field name does not resolve to an
	// exported field of the entity type.
	ErrUnknownField = errors.New("match: unknown field")

	// ErrFieldType is returned when the entity type is not a struct, or the
	// named field is neither a string nor a pointer to a string.
	ErrFieldType = errors.New("match: field is not a string")
)

// NewFromFields returns a Matcher for a struct type T, or a pointer to one,
// using StringField comparers for the named fields. See FieldByName for how
// names are resolved.
func NewFromFields[T any](essential, optional []string, interceptors ...Interceptor[T]) (*Matcher[T], error) {
	c := Config[T]{Interceptors: interceptors}
	for _, name := range essential {
		f, err := FieldByName[T](name)
		if err != nil {
			return nil, err
		}
		c.Essential = append(c.Essential, f)
	}
	for _, name := range optional {
		f, err := FieldByName[T](name)
		if err != nil {
			return nil, err
		}
		c.Optional = append(c.Optional, f)
	}
	return New(c), nil
}

// MustNewFromFields is like NewFromFields, but panics if a field cannot be
// resolved. It simplifies safe initialization of package-level Matchers.
func MustNewFromFields[T any](essential, optional []string, interceptors ...Interceptor[T]) *Matcher[T] {
	m, err := NewFromFields(essential, optional, interceptors...)
	if err != nil {
		panic(err)
	}
	return m
}

// FieldByName returns a StringField for the exported field of struct type T
// with the given name. T may also be a pointer to a struct, in which case a
// nil value has all its fields absent.
//
// The name is matched against the Go field name, then against a `match`
// struct tag, and finally against the Go field name ignoring case, so that
// "privateUse" finds a field PrivateUse. A field of type string is absent when
// it is the empty string; a field of type *string is absent when it is nil.
func FieldByName[T any](name string) (StringField[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	isPtr := typ.Kind() == reflect.Pointer
	if isPtr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return StringField[T]{}, fmt.Errorf("%w: %s is not a struct", ErrFieldType, typ)
	}
	sf, ok := lookupField(typ, name)
	if !ok {
		return StringField[T]{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, typ, name)
	}

	var byRef bool
	switch {
	case sf.Type.Kind() == reflect.String:
	case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.String:
		byRef = true
	default:
		return StringField[T]{}, fmt.Errorf("%w: %s.%s has type %s", ErrFieldType, typ, sf.Name, sf.Type)
	}

	index := sf.Index
	get := func(v T) (string, bool) {
		rv := reflect.ValueOf(&v).Elem()
		if isPtr {
			if rv.IsNil() {
				return "", false
			}
			rv = rv.Elem()
		}
		fv, err := rv.FieldByIndexErr(index)
		if err != nil {
			// Nil embedded struct pointer.
			return "", false
		}
		if byRef {
			if fv.IsNil() {
				return "", false
			}
			return fv.Elem().String(), true
		}
		s := fv.String()
		return s, s != ""
	}
	return StringField[T]{Name: name, Get: get}, nil
}

func lookupField(typ reflect.Type, name string) (reflect.StructField, bool) {
	if name == "" {
		return reflect.StructField{}, false
	}
	if sf, ok := typ.FieldByName(name); ok && sf.IsExported() {
		return sf, true
	}
	fields := reflect.VisibleFields(typ)
	for _, sf := range fields {
		if sf.IsExported() && sf.Tag.Get("match") == name {
			return sf, true
		}
	}
	for _, sf := range fields {
		if sf.IsExported() && !sf.Anonymous && strings.EqualFold(sf.Name, name) {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}
