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
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/unbeheader/pkg/config"
	"github.com/walteh/unbeheader/pkg/exclude"
	"github.com/walteh/unbeheader/pkg/filetype"
	"github.com/walteh/unbeheader/pkg/header"
	"github.com/walteh/unbeheader/pkg/source"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes header sweeps
type Runner struct {
	opts Options
}

// 🏃 Run updates, or checks, every eligible file of target. It returns true
// when at least one file had a missing or outdated header.
func (r *Runner) Run(ctx context.Context, target Target) (bool, error) {
	logger := zerolog.Ctx(ctx)

	files, err := r.collect(ctx, target)
	if err != nil {
		return false, err
	}

	root := target.Path
	if target.Mode == ModeFile {
		root = filepath.Dir(target.Path)
	}

	// caches live for this sweep only
	checker := exclude.NewChecker(root)
	resolver := config.NewResolver()

	logger.Debug().
		Str("mode", target.Mode.String()).
		Str("root", checker.Root()).
		Int("files", len(files)).
		Int("jobs", r.opts.Jobs).
		Msg("starting sweep")

	var changed atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Jobs)

	for _, path := range files {
		if gctx.Err() != nil {
			break
		}
		if r.skip(ctx, target.Mode, root, path, checker) {
			continue
		}

		g.Go(func() error {
			ok, err := r.process(gctx, path, resolver)
			if err != nil {
				return err
			}
			if ok {
				changed.Store(true)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return changed.Load(), err
	}
	if err := ctx.Err(); err != nil {
		return changed.Load(), errors.WithStack(err)
	}
	return changed.Load(), nil
}

func (r *Runner) collect(ctx context.Context, target Target) ([]string, error) {
	switch target.Mode {
	case ModeFile:
		return source.File(target.Path)
	case ModeDir:
		return source.WalkDir(ctx, target.Path)
	default:
		return source.GitFiles(ctx, target.Path)
	}
}

// skip reports whether path is left out of the sweep before any file is read
func (r *Runner) skip(ctx context.Context, mode Mode, root, path string, checker *exclude.Checker) bool {
	logger := zerolog.Ctx(ctx)

	if !filetype.Supported(path) {
		return true
	}

	if mode != ModeFile && checker.IsExcluded(filepath.Dir(path)) {
		logger.Debug().Str("path", path).Msg("excluded by marker")
		return true
	}

	if len(r.opts.Excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range r.opts.Excludes {
		if match, _ := doublestar.Match(pattern, rel); match {
			logger.Debug().Str("path", path).Str("pattern", pattern).Msg("excluded by pattern")
			return true
		}
	}
	return false
}

// process rewrites a single file, resolving its config only when the file
// can carry a header
func (r *Runner) process(ctx context.Context, path string, resolver *config.Resolver) (bool, error) {
	if _, ok := header.Eligible(path); !ok {
		return false, nil
	}

	cfg, err := resolver.Resolve(ctx, path, r.opts.Year)
	if err != nil {
		return false, errors.Errorf("resolving config for %s: %w", path, err)
	}

	return header.UpdateFile(ctx, path, cfg, header.Options{
		Check:    r.opts.Check,
		Reporter: r.opts.Reporter,
	})
}
