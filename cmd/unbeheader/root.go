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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/unbeheader/pkg/filetype"
	"github.com/walteh/unbeheader/pkg/log"
	"github.com/walteh/unbeheader/pkg/operation"
	"github.com/walteh/unbeheader/pkg/source"
	"gitlab.com/tozd/go/errors"
)

// 🔧 rootOpts holds the flags of the root command
type rootOpts struct {
	ci       bool
	year     int
	path     string
	excludes []string
	diff     bool
	jobs     int
	debug    bool
}

// usageError marks errors caused by how the command was invoked
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "unbeheader",
		Short: "Update the license headers of source files",
		Long: fmt.Sprintf(`Updates all the headers in the supported files (%s).
By default, all the files tracked by git in the current repository are updated
to the current year.

You can specify a year to update to as well as a file or directory.
This will update all the supported files in the scope including those not tracked
by git. If the directory does not contain any supported files (or if the file
specified is not supported) nothing will be updated.`, strings.Join(filetype.Extensions(), ", ")),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := setupLogging(cmd.ErrOrStderr(), opts.debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	addRootFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	flags := cmd.Flags()
	flags.BoolVar(&opts.ci, "ci", false, "exit with a non-zero code unless all headers are up to date, without updating any file")
	flags.IntVarP(&opts.year, "year", "y", time.Now().Year(), "indicate the target year")
	flags.StringVarP(&opts.path, "path", "p", "", "restrict updates to a specific file or directory")
	flags.StringArrayVar(&opts.excludes, "exclude", nil, "skip paths matching this glob, relative to the swept directory (repeatable)")
	flags.BoolVar(&opts.diff, "diff", false, "print a diff of every changed header")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "number of files processed in parallel")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging builds the diagnostic logger written to w
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(cmd *cobra.Command, opts *rootOpts) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.year < operation.MinYear {
		return &usageError{errors.Errorf("invalid value for --year: %d is smaller than the minimum valid value %d", opts.year, operation.MinYear)}
	}

	target, err := operation.TargetFor(opts.path)
	if err != nil {
		return &usageError{err}
	}

	reporter := log.New(out, log.WithDiff(opts.diff))
	runner, err := operation.New(operation.Options{
		Year:     opts.year,
		Check:    opts.ci,
		Jobs:     opts.jobs,
		Excludes: opts.excludes,
		Reporter: reporter,
	})
	if err != nil {
		return &usageError{err}
	}

	ctx = log.NewContext(ctx, reporter)
	if !opts.ci {
		reporter.Header(ctx, opts.year, target.Describe())
	}

	changed, err := runner.Run(ctx, target)
	if err != nil {
		if errors.Is(err, source.ErrNotGitRepository) {
			return &usageError{err}
		}
		return err
	}

	return printSummary(ctx, out, changed, opts.ci)
}
