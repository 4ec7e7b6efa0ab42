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

package status

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/walteh/unbeheader/pkg/header"
)

// 🎨 Formatter renders report lines
type Formatter struct {
	Dir   string // paths are printed relative to this directory
	Plain bool   // disables styling of the path
}

// 🏭 NewFormatter creates a formatter relative to the working directory
// that is plain when running in CI.
func NewFormatter() *Formatter {
	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}
	return &Formatter{
		Dir:   dir,
		Plain: IsCI(),
	}
}

// IsCI reports whether the CI environment variable is set to 1 or true.
func IsCI() bool {
	switch os.Getenv("CI") {
	case "1", "true":
		return true
	default:
		return false
	}
}

// 🎯 Format renders the report line for a change
func (f *Formatter) Format(change header.Change) string {
	outcome := Classify(change.Found, change.Check)
	path := f.relative(change.Path)
	if !f.Plain {
		path = color.New(color.Bold, color.FgWhite).Sprint(path)
	}
	return fmt.Sprintf("%s %s", outcome, path)
}

func (f *Formatter) relative(path string) string {
	if f.Dir == "" {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(f.Dir, abs)
	if err != nil {
		return path
	}
	return rel
}
