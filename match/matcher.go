// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package match selects, from a list of candidates, the one that best fits a
// wanted value.
//
// A Matcher is configured with three ordered lists. Essential fields must
// agree for a candidate to be considered at all. Optional fields are ranked
// by importance, the first being the most important; a candidate is scored by
// how many of them agree before the first disagreement. Interceptors rewrite
// the wanted value and each candidate before they are compared, for instance
// to fill in a script that can be inferred from a region.
//
// When no candidate agrees on every optional field, ties on the number of
// leading agreeing fields are broken in favor of the candidate that leaves
// the following fields unset. An unset field is a weaker disagreement than a
// conflicting one: for a request of sv-SE, "sv" is preferred over "sv-FI".
//
// This is not an implementation of RFC 4647 lookup. There are no wildcard
// ranges and no fallback chains; a single list of candidates is scanned once.
package match

// An Interceptor rewrites a value before it is compared. Interceptors must
// return a result for every input and must not modify their argument.
type Interceptor[T any] func(v T) T

// Config holds the field configuration of a Matcher.
type Config[T any] struct {
	// Essential lists the fields that must agree. A candidate for which any
	// of them disagrees is never selected.
	Essential []Equaler[T]

	// Optional lists the remaining fields that take part in matching, in
	// descending order of importance.
	Optional []FieldComparer[T]

	// Interceptors are applied in order to the wanted value and to each
	// candidate. Each receives the output of the previous one.
	Interceptors []Interceptor[T]
}

// A Matcher finds the best match for a value among a list of candidates.
// A Matcher is immutable and may be used concurrently by multiple goroutines.
type Matcher[T any] struct {
	essential    []Equaler[T]
	optional     []FieldComparer[T]
	interceptors []Interceptor[T]
}

// New returns a Matcher for the given configuration. Later changes to the
// slices in c do not affect the returned Matcher.
func New[T any](c Config[T]) *Matcher[T] {
	return &Matcher[T]{
		essential:    append([]Equaler[T](nil), c.Essential...),
		optional:     append([]FieldComparer[T](nil), c.Optional...),
		interceptors: append([]Interceptor[T](nil), c.Interceptors...),
	}
}

// Score describes how well a candidate fits a wanted value.
type Score struct {
	// Matched is the number of leading optional fields that agree.
	Matched int
	// Empty is the number of consecutive optional fields, starting right
	// after the matched ones, that are empty in the candidate.
	Empty int
}

// Less reports whether s ranks below t.
func (s Score) Less(t Score) bool {
	if s.Matched != t.Matched {
		return s.Matched < t.Matched
	}
	return s.Empty < t.Empty
}

// BestMatch returns the candidate that best matches wanted and true, or the
// zero value and false if no candidate agrees with wanted on all essential
// fields. The returned value is the candidate as passed in, not the result of
// applying the interceptors to it.
//
// A candidate that agrees on all optional fields is returned immediately.
// Otherwise the candidate with the highest Score wins, the earliest one in
// the list if there is a tie.
func (m *Matcher[T]) BestMatch(wanted T, candidates []T) (T, bool) {
	i := m.BestMatchIndex(wanted, candidates)
	if i < 0 {
		var zero T
		return zero, false
	}
	return candidates[i], true
}

// BestMatchIndex is like BestMatch, but returns the index of the selected
// candidate, or -1 if there is none.
func (m *Matcher[T]) BestMatchIndex(wanted T, candidates []T) int {
	w := m.intercept(wanted)

	best := -1
	var bestScore Score
	for i, c := range candidates {
		s, ok := m.score(w, m.intercept(c))
		if !ok {
			continue
		}
		if s.Matched == len(m.optional) {
			return i
		}
		if best < 0 || bestScore.Less(s) {
			best, bestScore = i, s
		}
	}
	return best
}

// Score computes the Score of candidate for wanted after applying the
// interceptors to both. It reports false if the two disagree on an essential
// field.
func (m *Matcher[T]) Score(wanted, candidate T) (Score, bool) {
	return m.score(m.intercept(wanted), m.intercept(candidate))
}

func (m *Matcher[T]) score(wanted, candidate T) (Score, bool) {
	for _, f := range m.essential {
		if !f.Equal(wanted, candidate) {
			return Score{}, false
		}
	}
	s := Score{Matched: len(m.optional)}
	for i, f := range m.optional {
		if !f.Equal(wanted, candidate) {
			s.Matched = i
			break
		}
	}
	for _, f := range m.optional[s.Matched:] {
		if !f.IsEmpty(candidate) {
			break
		}
		s.Empty++
	}
	return s, true
}

func (m *Matcher[T]) intercept(v T) T {
	for _, f := range m.interceptors {
		v = f(v)
	}
	return v
}
