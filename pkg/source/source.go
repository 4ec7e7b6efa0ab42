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

// Package source lists the files a sweep visits.
package source

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNotGitRepository is returned when git cannot list files in a directory.
var ErrNotGitRepository = errors.Base("you must be within a git repository to run this command")

// 📂 GitFiles returns the files git knows about below dir: tracked and
// untracked-but-not-ignored files, minus files deleted from the worktree.
// Paths are absolute and sorted.
func GitFiles(ctx context.Context, dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", dir, err)
	}

	tracked, err := gitLsFiles(ctx, abs)
	if err != nil {
		return nil, err
	}
	untracked, err := gitLsFiles(ctx, abs, "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	deleted, err := gitLsFiles(ctx, abs, "--deleted")
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(tracked)+len(untracked))
	for _, p := range tracked {
		set[p] = struct{}{}
	}
	for _, p := range untracked {
		set[p] = struct{}{}
	}
	for _, p := range deleted {
		delete(set, p)
	}

	files := make([]string, 0, len(set))
	for p := range set {
		files = append(files, filepath.Join(abs, filepath.FromSlash(p)))
	}
	sort.Strings(files)

	zerolog.Ctx(ctx).Debug().Str("dir", abs).Int("files", len(files)).Msg("listed git files")
	return files, nil
}

func gitLsFiles(ctx context.Context, dir string, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"ls-files", "-z"}, args...)...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}
		return nil, errors.Errorf("%w: git ls-files %s: %s", ErrNotGitRepository, strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	var paths []string
	for _, p := range strings.Split(string(out), "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths, nil
}

// 🚶 WalkDir returns every regular file below root, skipping .git
// directories. Paths are sorted.
func WalkDir(ctx context.Context, root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if d.Name() == ".git" && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// File returns path as the only file of a sweep.
func File(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}
	return []string{path}, nil
}
