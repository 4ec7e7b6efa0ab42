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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/unbeheader/pkg/header"
	"github.com/walteh/unbeheader/pkg/status"
)

// 🎨 Display configuration
const diffIndent = 4 // spaces to indent diff lines

// 🎯 Logger prints one line per changed file and mirrors it to zerolog.
// It is safe for concurrent use.
type Logger struct {
	console   io.Writer
	formatter *status.Formatter
	showDiff  bool
	mu        sync.Mutex
	changes   int
}

// 🔧 Option configures a Logger
type Option func(*Logger)

// WithDiff prints a line diff below every reported file
func WithDiff(enabled bool) Option {
	return func(l *Logger) {
		l.showDiff = enabled
	}
}

// WithFormatter replaces the default report line formatter
func WithFormatter(f *status.Formatter) Option {
	return func(l *Logger) {
		l.formatter = f
	}
}

// 🏭 New creates a new logger writing to console
func New(console io.Writer, opts ...Option) *Logger {
	l := &Logger{
		console: console,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.formatter == nil {
		l.formatter = status.NewFormatter()
	}
	return l
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Report prints the line for a changed file
func (l *Logger) Report(ctx context.Context, change header.Change) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.changes++
	fmt.Fprintln(l.console, l.formatter.Format(change))
	if l.showDiff {
		l.writeDiff(change.Original, change.Updated)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", change.Path).
		Str("outcome", status.Classify(change.Found, change.Check).String()).
		Bool("found", change.Found).
		Bool("check", change.Check).
		Msg("header change")
}

// Changes returns how many files have been reported so far
func (l *Logger) Changes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.changes
}

// 📝 Header prints the banner shown before a sweep
func (l *Logger) Header(ctx context.Context, year int, scope string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	highlight := color.New(color.Bold, color.FgYellow)
	fmt.Fprintf(l.console, "Updating headers to the year %s for %s...\n",
		highlight.Sprint(year), scope)

	zerolog.Ctx(ctx).Info().Int("year", year).Str("scope", scope).Msg("updating headers")
}

// writeDiff prints the removed and added lines between before and after
func (l *Logger) writeDiff(before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	indent := strings.Repeat(" ", diffIndent)
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, c = "-", color.New(color.FgRed)
		case diffmatchpatch.DiffInsert:
			prefix, c = "+", color.New(color.FgGreen)
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintln(l.console, indent+c.Sprint(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}
