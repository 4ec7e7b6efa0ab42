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

// Package exclude decides whether a path is excluded from header updates by
// a marker file in its directory or one of its parents.
package exclude

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MarkerName is the file that excludes its directory and everything below it.
const MarkerName = ".no-header"

const cacheSize = 4096

// 🚫 Checker answers exclusion questions for paths below one root. Results
// are memoised per directory for the lifetime of the checker, so create
// one per sweep. A Checker is safe for concurrent use.
type Checker struct {
	root  string
	cache *lru.Cache[string, bool]
}

// NewChecker creates a checker that looks for markers up to and including root.
func NewChecker(root string) *Checker {
	cache, err := lru.New[string, bool](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Checker{
		root:  filepath.Clean(root),
		cache: cache,
	}
}

// Root returns the directory the checker stops at.
func (c *Checker) Root() string {
	return c.root
}

// 🔍 IsExcluded reports whether path, or any of its parents up to the
// root, holds a marker file. Paths outside the root are never excluded.
func (c *Checker) IsExcluded(path string) bool {
	return c.excluded(filepath.Clean(path))
}

func (c *Checker) excluded(path string) bool {
	if !within(c.root, path) {
		return false
	}
	if v, ok := c.cache.Get(path); ok {
		return v
	}

	result := hasMarker(path)
	if !result && path != c.root {
		parent := filepath.Dir(path)
		if parent != path {
			result = c.excluded(parent)
		}
	}

	c.cache.Add(path, result)
	return result
}

// IsExcluded is a one-off check with a fresh checker.
func IsExcluded(path, root string) bool {
	return NewChecker(root).IsExcluded(path)
}

func hasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MarkerName))
	return err == nil && !info.IsDir()
}

// within reports whether path is root or below it.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
