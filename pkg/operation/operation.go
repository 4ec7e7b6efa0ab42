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

package operation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/unbeheader/pkg/header"
	"gitlab.com/tozd/go/errors"
)

// MinYear is the lowest accepted target year.
const MinYear = 1000

// 🎯 Mode selects how the files of a target are listed
type Mode int

const (
	ModeRepo Mode = iota // files known to git
	ModeDir              // every file below a directory
	ModeFile             // a single file
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeDir:
		return "dir"
	case ModeFile:
		return "file"
	default:
		return "repo"
	}
}

// 📍 Target is what a sweep runs over
type Target struct {
	Mode Mode
	Path string // absolute; the working directory in repo mode
}

// TargetFor builds the target for a user supplied path. An empty path
// means the git repository of the working directory.
func TargetFor(path string) (Target, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Target{}, errors.Errorf("getting working directory: %w", err)
		}
		return Target{Mode: ModeRepo, Path: wd}, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Target{}, errors.Errorf("resolving %s: %w", path, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return Target{}, errors.Errorf("path %s does not exist: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return Target{}, errors.Errorf("path %s does not exist: %w", path, err)
	}
	if info.IsDir() {
		return Target{Mode: ModeDir, Path: abs}, nil
	}
	return Target{Mode: ModeFile, Path: abs}, nil
}

// Describe returns the scope shown in the sweep banner
func (t Target) Describe() string {
	switch t.Mode {
	case ModeDir:
		return fmt.Sprintf("all the files in %s", t.Path)
	case ModeFile:
		return fmt.Sprintf("the file %s", t.Path)
	default:
		return "all git-tracked files"
	}
}

// 🔧 Options configures a Runner
type Options struct {
	// Year is the target year of every header
	Year int
	// Check reports outdated headers without writing them
	Check bool
	// Jobs is the number of files processed in parallel, at least 1
	Jobs int
	// Excludes are doublestar globs matched against the slash separated
	// path relative to the target root
	Excludes []string
	// Reporter is told about every changed file, may be nil
	Reporter header.Reporter
}

// 🏭 New creates a runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Year < MinYear {
		return nil, errors.Errorf("year must be at least %d, got %d", MinYear, opts.Year)
	}
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	return &Runner{opts: opts}, nil
}
