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
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser decodes one header config format
type Parser interface {
	// 📝 Parse decodes a config file, rejecting unknown keys
	Parse(ctx context.Context, data []byte, filename string) (*File, error)

	// 🔍 CanParse reports whether the parser handles a config file name
	CanParse(name string) bool

	// Format names the format in logs
	Format() string
}

// 🗺️ parsers holds the registered parsers in registration order
var parsers []Parser

// 📝 Register adds a parser to the registry
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 parserFor returns the parser for the base name of path
func parserFor(path string) (Parser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.CanParse(name) {
			return p, nil
		}
	}
	return nil, errors.Errorf("%w: no parser for %s", ErrConfigInvalid, name)
}
