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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // base width for the file path
	linesWidth  = 12 // width for the line count
	statusWidth = 15 // width for status text
)

// 🎯 FileResult is the outcome of uwuifying one file in a batch
type FileResult struct {
	Path      string // file path relative to the batch root
	Lines     int    // lines written
	Status    string // short status text
	IsNew     bool   // output did not exist before
	IsChanged bool   // output differs from the previous run
	IsFailed  bool   // the file could not be processed
	Err       error  // set when IsFailed
}

// 📦 Batch describes a batch run for logging
type Batch struct {
	Pattern     string // glob the inputs were matched with
	Root        string // directory the glob is evaluated in
	Destination string // output directory
	Jobs        int    // concurrent workers
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	batch   *Batch
	results []FileResult
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
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

// 📝 formatFileResult formats a file result for display
func (l *Logger) formatFileResult(r FileResult) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case r.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case r.IsNew:
		symbol = '✓'
		symbolColor = color.FgGreen
	case r.IsChanged:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	lines := fmt.Sprintf("%d lines", r.Lines)

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, r.Path),
		color.New(color.FgMagenta).Sprint(fmt.Sprintf("%-*s", linesWidth, lines)),
		fmt.Sprintf("%-*s", statusWidth, r.Status))
}

// 📝 LogFileResult logs the outcome of a single file
func (l *Logger) LogFileResult(ctx context.Context, r FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results = append(l.results, r)

	fmt.Fprintln(l.console, l.formatFileResult(r))

	ev := l.zlog.Info()
	if r.IsFailed {
		ev = l.zlog.Error().Err(r.Err)
	}
	ev.Str("file", r.Path).
		Int("lines", r.Lines).
		Str("status", r.Status).
		Bool("is_new", r.IsNew).
		Bool("is_changed", r.IsChanged).
		Msg("file processed")
}

// 📝 StartBatch prints the batch header and resets the collected results
func (l *Logger) StartBatch(ctx context.Context, b Batch) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.batch = &b
	l.results = nil

	fmt.Fprintf(l.console, "[uwuifying into %s]\n",
		color.New(color.FgCyan).Sprint(b.Destination))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(b.Pattern),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(b.Root))

	l.zlog.Info().
		Str("pattern", b.Pattern).
		Str("root", b.Root).
		Str("destination", b.Destination).
		Int("jobs", b.Jobs).
		Msg("starting batch")
}

// 📝 EndBatch closes the current batch and returns its results
func (l *Logger) EndBatch(ctx context.Context) []FileResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.batch == nil {
		return nil
	}

	failed := 0
	for _, r := range l.results {
		if r.IsFailed {
			failed++
		}
	}

	l.zlog.Info().
		Str("pattern", l.batch.Pattern).
		Int("files", len(l.results)).
		Int("failed", failed).
		Msg("batch complete")

	results := l.results
	l.batch = nil
	l.results = nil
	return results
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("uwuify")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
