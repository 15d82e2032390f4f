// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/langmatch/langmatch/langtag"
	"github.com/langmatch/langmatch/match"
)

// Config describes the Matcher used by the commands. Field names are those
// of langtag.Tag, for instance "language" or "privateUse".
type Config struct {
	Essential    []string `yaml:"essential"`
	Optional     []string `yaml:"optional"`
	Interceptors []string `yaml:"interceptors"`
	LogLevel     string   `yaml:"log_level"`
}

// interceptors maps the names accepted in a Config to their implementation.
var interceptors = map[string]match.Interceptor[langtag.Tag]{
	"chinese-script": langtag.InferChineseScript,
}

// defaultConfig mirrors langtag.NewDefaultMatcher.
func defaultConfig() Config {
	return Config{
		Essential:    []string{"language"},
		Optional:     []string{"script", "region"},
		Interceptors: []string{"chinese-script"},
		LogLevel:     "info",
	}
}

// loadConfig reads the configuration from the YAML file at path. Keys that
// are not present in the file keep their default value. An empty path
// yields the default configuration.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()
	if err := decodeConfig(f, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

func decodeConfig(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// matcher builds the Matcher described by c.
func (c Config) matcher() (*match.Matcher[langtag.Tag], error) {
	var list []match.Interceptor[langtag.Tag]
	for _, name := range c.Interceptors {
		f, ok := interceptors[name]
		if !ok {
			return nil, fmt.Errorf("unknown interceptor %q", name)
		}
		list = append(list, f)
	}
	return match.NewFromFields[langtag.Tag](c.Essential, c.Optional, list...)
}
