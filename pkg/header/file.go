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

package header

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/unbeheader/pkg/config"
	"github.com/walteh/unbeheader/pkg/filetype"
	"gitlab.com/tozd/go/errors"
)

// 📝 Change describes a file whose header is missing or out of date
type Change struct {
	Path     string // path of the file
	Found    bool   // whether a header was found and replaced
	Check    bool   // whether the file was left untouched on disk
	Original string // content before the rewrite
	Updated  string // content after the rewrite
}

// 📢 Reporter receives every file that changes
type Reporter interface {
	Report(ctx context.Context, change Change)
}

// 🔧 Options controls UpdateFile
type Options struct {
	// Check computes the change without writing it
	Check bool
	// Reporter is told about every change, may be nil
	Reporter Reporter
}

// 🔍 Eligible returns the rule for path if it is an existing regular file
// with a supported extension that is not a dotfile.
func Eligible(path string) (filetype.Rule, bool) {
	rule, ok := filetype.ForPath(path)
	if !ok {
		return filetype.Rule{}, false
	}
	if strings.HasPrefix(filepath.Base(path), ".") {
		return filetype.Rule{}, false
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return filetype.Rule{}, false
	}
	return rule, true
}

// 🎯 UpdateFile rewrites the header of the file at path. It returns true
// when the content differs from what is on disk, whether or not it was
// written. Files that are not Eligible are skipped without error.
func UpdateFile(ctx context.Context, path string, cfg *config.Config, opts Options) (bool, error) {
	rule, ok := Eligible(path)
	if !ok {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Errorf("reading %s: %w", path, err)
	}

	result, err := Rewrite(string(data), rule, cfg)
	if err != nil {
		return false, errors.Errorf("rewriting %s: %w", path, err)
	}
	if !result.Changed {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("header up to date")
		return false, nil
	}

	if opts.Reporter != nil {
		opts.Reporter.Report(ctx, Change{
			Path:     path,
			Found:    result.Found,
			Check:    opts.Check,
			Original: string(data),
			Updated:  result.Content,
		})
	}

	if opts.Check {
		return true, nil
	}

	if err := writeFileAtomic(path, []byte(result.Content), info.Mode().Perm()); err != nil {
		return false, errors.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// writeFileAtomic replaces path through a temp file in the same directory
// so readers never see a partial write. A symlink is written through to its
// target and stays a link.
func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	path, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving symlinks: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
