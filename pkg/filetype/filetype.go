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

package filetype

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// 💬 Skeleton holds the strings that open, continue and close a header comment
type Skeleton struct {
	Start  string // inserted before the first line
	Middle string // inserted before every continuation line
	End    string // inserted on the closing line, may be empty
}

// 📄 Rule describes how headers are found and written for one file type
type Rule struct {
	// Pattern matches the comment blocks that may hold a header
	Pattern *regexp.Regexp
	// Skeleton is used when generating a new header
	Skeleton Skeleton
}

var (
	hashLines  = regexp.MustCompile(`(?m)^#.*(?:\n#.*)*`)
	slashBlock = regexp.MustCompile(`/\*[\s\S]*?\*/|(?m:^//.*(?:\n//.*)*)`)
	cssBlock   = regexp.MustCompile(`/\*[\s\S]*?\*/`)

	hashSkeleton  = Skeleton{Start: "#", Middle: "#"}
	slashSkeleton = Skeleton{Start: "//", Middle: "//"}
	cssSkeleton   = Skeleton{Start: "/*", Middle: " *", End: " */"}
)

// 🗺️ rules maps a file extension (without the dot) to its rule
var rules = map[string]Rule{
	"py":   {Pattern: hashLines, Skeleton: hashSkeleton},
	"pyi":  {Pattern: hashLines, Skeleton: hashSkeleton},
	"wsgi": {Pattern: hashLines, Skeleton: hashSkeleton},
	"sh":   {Pattern: hashLines, Skeleton: hashSkeleton},
	"js":   {Pattern: slashBlock, Skeleton: slashSkeleton},
	"jsx":  {Pattern: slashBlock, Skeleton: slashSkeleton},
	"scss": {Pattern: slashBlock, Skeleton: slashSkeleton},
	"css":  {Pattern: cssBlock, Skeleton: cssSkeleton},
}

// 🔍 Lookup returns the rule registered for ext. The extension is given
// without its leading dot and compared case-sensitively.
func Lookup(ext string) (Rule, bool) {
	rule, ok := rules[ext]
	return rule, ok
}

// ForPath returns the rule for the extension of path.
func ForPath(path string) (Rule, bool) {
	return Lookup(Ext(path))
}

// Ext returns the extension of path without the leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// Supported reports whether path has a registered extension.
func Supported(path string) bool {
	_, ok := ForPath(path)
	return ok
}

// 📋 Extensions returns all registered extensions in sorted order
func Extensions() []string {
	exts := make([]string, 0, len(rules))
	for ext := range rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
