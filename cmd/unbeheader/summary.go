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

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/walteh/unbeheader/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// errOutdated is returned in CI mode when headers need work. The summary
// has already been printed when it is returned.
var errOutdated = errors.Base("some headers need to be added or updated")

// 📊 printSummary prints the result of a sweep to w. The reporter stored in
// ctx provides the number of changed files.
func printSummary(ctx context.Context, w io.Writer, changed, ci bool) error {
	switch {
	case !changed:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}).
			WithWriter(w).
			Println("All headers are up to date")
		return nil
	case ci:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}).
			WithWriter(w).
			Println("Some headers need to be added or updated" + fileCount(ctx))
		return errors.WithStack(errOutdated)
	default:
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "🔄", Style: pterm.Warning.Prefix.Style}).
			WithWriter(w).
			Println("Some headers have been updated" + fileCount(ctx))
		return nil
	}
}

func fileCount(ctx context.Context) string {
	n := log.FromContext(ctx).Changes()
	if n == 1 {
		return " (1 file)"
	}
	return fmt.Sprintf(" (%d files)", n)
}
