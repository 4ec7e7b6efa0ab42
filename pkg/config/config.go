// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/walteh/unbeheader/pkg/tmpl"
	"gitlab.com/tozd/go/errors"
)

// DefaultSubstring must be part of a comment block for it to be treated as the header.
const DefaultSubstring = "This file is part of"

// 📁 FileNames are the config file names looked up in every directory
var FileNames = []string{".header.yaml", ".header.yml", ".header.hcl"}

// Placeholders are the only names a template may reference.
var Placeholders = []string{
	"comment_start",
	"comment_middle",
	"comment_end",
	"owner",
	"dates",
	"start_year",
	"end_year",
}

var (
	// ErrConfigNotFound is returned when no config file exists between a path and the filesystem root.
	ErrConfigNotFound = errors.Base("no valid header config found")
	// ErrConfigInvalid is returned for unknown keys, missing keys and unparsable files.
	ErrConfigInvalid = errors.Base("invalid header config")
)

const resolverCacheSize = 512

// 📄 File is the content of a single config file. Unset keys are nil.
type File struct {
	Owner     *string `yaml:"owner" hcl:"owner,optional"`
	StartYear *int    `yaml:"start_year" hcl:"start_year,optional"`
	Substring *string `yaml:"substring" hcl:"substring,optional"`
	Template  *string `yaml:"template" hcl:"template,optional"`
	Root      *bool   `yaml:"root" hcl:"root,optional"`
}

// mergeFrom copies the keys of other that are not set on f yet.
func (f *File) mergeFrom(other *File) {
	if f.Owner == nil {
		f.Owner = other.Owner
	}
	if f.StartYear == nil {
		f.StartYear = other.StartYear
	}
	if f.Substring == nil {
		f.Substring = other.Substring
	}
	if f.Template == nil {
		f.Template = other.Template
	}
}

// 📚 Config is the resolved header configuration for one file
type Config struct {
	Owner     string
	StartYear *int // nil means EndYear
	Substring string
	Template  string
	EndYear   int
}

// FirstYear returns the start year, falling back to the end year.
func (c *Config) FirstYear() int {
	if c.StartYear == nil {
		return c.EndYear
	}
	return *c.StartYear
}

// 🔍 Validate checks the merged config for missing keys and template errors
func (f *File) Validate() error {
	if f.Owner == nil {
		return errors.Errorf("%w: owner is missing", ErrConfigInvalid)
	}
	if f.Template == nil {
		return errors.Errorf("%w: template is missing", ErrConfigInvalid)
	}
	if err := tmpl.Check(*f.Template, Placeholders); err != nil {
		return errors.WithStack(&invalidTemplateError{err: err})
	}
	return nil
}

// invalidTemplateError is both ErrConfigInvalid and the underlying
// *tmpl.TemplateError for errors.Is and errors.As.
type invalidTemplateError struct {
	err error
}

func (e *invalidTemplateError) Error() string {
	return ErrConfigInvalid.Error() + ": " + e.err.Error()
}

func (e *invalidTemplateError) Unwrap() []error {
	return []error{ErrConfigInvalid, e.err}
}

// 🧭 Resolver finds and merges the config files that apply to a path.
// A Resolver memoises merged configs per directory and is meant to live
// for one sweep.
type Resolver struct {
	cache *lru.Cache[string, *File]
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	cache, err := lru.New[string, *File](resolverCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(err)
	}
	return &Resolver{cache: cache}
}

// 🎯 Resolve returns the config for path with endYear as the target year
func (r *Resolver) Resolve(ctx context.Context, path string, endYear int) (*Config, error) {
	merged, err := r.load(ctx, path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Owner:     *merged.Owner,
		StartYear: merged.StartYear,
		Substring: DefaultSubstring,
		Template:  *merged.Template,
		EndYear:   endYear,
	}
	if merged.Substring != nil {
		cfg.Substring = *merged.Substring
	}
	return cfg, nil
}

func (r *Resolver) load(ctx context.Context, path string) (*File, error) {
	dirs, err := walkToRoot(path)
	if err != nil {
		return nil, err
	}

	if cached, ok := r.cache.Get(dirs[0]); ok {
		return cached, nil
	}

	logger := zerolog.Ctx(ctx)
	merged := &File{}
	found := false
	for _, dir := range dirs {
		name, err := findConfigFile(dir)
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}

		logger.Debug().Str("path", name).Msg("loading header config")
		f, err := Load(ctx, name)
		if err != nil {
			return nil, err
		}
		found = true
		merged.mergeFrom(f)
		if f.Root != nil && *f.Root {
			break
		}
	}

	if !found {
		return nil, errors.Errorf("%w in %s", ErrConfigNotFound, path)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}

	r.cache.Add(dirs[0], merged)
	return merged, nil
}

// 📝 Load parses a single config file with the parser registered for its name
func Load(ctx context.Context, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Str("format", p.Format()).Msg("parsing header config")
	f, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrConfigInvalid, path, err.Error())
	}
	return f, nil
}

// findConfigFile returns the config file of dir, or "" when there is none.
func findConfigFile(dir string) (string, error) {
	var found []string
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		found = append(found, candidate)
	}

	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", errors.Errorf("%w: multiple config files found in %s: %s", ErrConfigInvalid, dir, strings.Join(found, ", "))
	}
}

// walkToRoot returns the directory of path followed by all its parents.
func walkToRoot(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("getting absolute path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Errorf("starting path not found: %w", err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	dirs := []string{dir}
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return dirs, nil
		}
		dirs = append(dirs, parent)
		dir = parent
	}
}
