// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/langmatch/langmatch/langtag"
	"github.com/langmatch/langmatch/match"
)

var cmdMatch = &Command{
	Run:       runMatch,
	UsageLine: "match [-config file] [-v] <tag> <candidate>...",
	Short:     "select the best candidate for a single language tag",
	Long: `
Match prints the candidate that best matches the given language tag, as it
was written on the command line. It exits with status 1 if no candidate has
the same essential subtags.
`,
}

var cmdAccept = &Command{
	Run:       runAccept,
	UsageLine: "accept [-config file] [-v] <accept-language> <candidate>...",
	Short:     "select the best candidate for an Accept-Language header",
	Long: `
Accept tries the languages of an HTTP Accept-Language header in order of
decreasing quality and prints the first candidate that matches one of them.
It exits with status 1 if none of the languages can be matched.
`,
}

// A selector holds what the commands need to select a candidate.
type selector struct {
	matcher    *match.Matcher[langtag.Tag]
	candidates []langtag.Tag
	args       []string
	log        zerolog.Logger
}

func newSelector(candidates []string) (*selector, error) {
	c, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}
	m, err := c.matcher()
	if err != nil {
		return nil, err
	}
	tags, err := langtag.ParseAll(candidates...)
	if err != nil {
		return nil, err
	}
	return &selector{
		matcher:    m,
		candidates: tags,
		args:       candidates,
		log:        newLogger(os.Stderr, c.LogLevel, verbose),
	}, nil
}

// selectTag returns the index of the candidate selected for wanted, or -1.
func (s *selector) selectTag(wanted langtag.Tag) int {
	if s.log.GetLevel() <= zerolog.DebugLevel {
		for i, c := range s.candidates {
			e := s.log.Debug().Str("wanted", wanted.String()).Str("candidate", s.args[i])
			score, ok := s.matcher.Score(wanted, c)
			if !ok {
				e.Msg("essential subtags differ")
				continue
			}
			e.Int("matched", score.Matched).Int("empty", score.Empty).Msg("scored")
		}
	}
	i := s.matcher.BestMatchIndex(wanted, s.candidates)
	if i < 0 {
		s.log.Debug().Str("wanted", wanted.String()).Msg("no match")
	}
	return i
}

func runMatch(cmd *Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
	}
	wanted, err := langtag.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[0], err)
	}
	s, err := newSelector(args[1:])
	if err != nil {
		return err
	}
	i := s.selectTag(wanted)
	if i < 0 {
		return errNoMatch
	}
	fmt.Fprintln(out, s.args[i])
	return nil
}

func runAccept(cmd *Command, args []string) error {
	if len(args) < 1 {
		cmd.Usage()
	}
	wanted, q, err := language.ParseAcceptLanguage(args[0])
	if err != nil {
		return fmt.Errorf("parsing Accept-Language: %w", err)
	}
	s, err := newSelector(args[1:])
	if err != nil {
		return err
	}
	for j, t := range wanted {
		s.log.Debug().Str("tag", t.String()).Float32("q", q[j]).Msg("trying")
		if i := s.selectTag(langtag.FromTag(t)); i >= 0 {
			fmt.Fprintln(out, s.args[i])
			return nil
		}
	}
	return errNoMatch
}
