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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func resultLine(symbol, path string, lines int, status string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %-35s %-12s %s", symbol, path, fmt.Sprintf("%d lines", lines), status))
}

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_result",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileResult(context.Background(), FileResult{
					Path:   "notes.txt",
					Lines:  3,
					Status: "NEW",
					IsNew:  true,
				})
			},
			wantLogs: []string{
				resultLine("✓", "notes.txt", 3, "NEW"),
			},
		},
		{
			name: "start_batch",
			op: func(t *testing.T, logger *Logger) {
				logger.StartBatch(context.Background(), Batch{
					Pattern:     "**/*.txt",
					Root:        "docs",
					Destination: "/tmp/out",
					Jobs:        4,
				})
			},
			wantLogs: []string{
				"[uwuifying into /tmp/out]",
				"◆ **/*.txt • docs",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("uwuifying files")
			},
			wantLogs: []string{
				"uwuify • uwuifying files",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileResultFormatting(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name string
		r    FileResult
		want string
	}{
		{
			name: "new_file",
			r:    FileResult{Path: "a.txt", Lines: 1, Status: "NEW", IsNew: true},
			want: resultLine("✓", "a.txt", 1, "NEW"),
		},
		{
			name: "changed_file",
			r:    FileResult{Path: "b.txt", Lines: 12, Status: "UPDATED", IsChanged: true},
			want: resultLine("⟳", "b.txt", 12, "UPDATED"),
		},
		{
			name: "failed_file",
			r:    FileResult{Path: "c.txt", Status: "FAILED", IsFailed: true, Err: errors.New("boom")},
			want: resultLine("✗", "c.txt", 0, "FAILED"),
		},
		{
			name: "unchanged_file",
			r:    FileResult{Path: "d.txt", Lines: 2, Status: "no change"},
			want: resultLine("•", "d.txt", 2, "no change"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			logger.LogFileResult(context.Background(), tt.r)

			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()), "formatted output should match")
		})
	}
}

func TestBatchLifecycle(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := context.Background()
	logger := New(io.Discard, zerolog.Disabled)

	assert.Nil(t, logger.EndBatch(ctx), "ending without a batch is a no-op")

	logger.StartBatch(ctx, Batch{Pattern: "*.md", Root: ".", Destination: "out"})
	logger.LogFileResult(ctx, FileResult{Path: "a.md", IsNew: true})
	logger.LogFileResult(ctx, FileResult{Path: "b.md", IsFailed: true, Err: errors.New("nope")})

	results := logger.EndBatch(ctx)
	require.Len(t, results, 2)
	assert.Equal(t, "a.md", results[0].Path)
	assert.True(t, results[1].IsFailed)

	logger.StartBatch(ctx, Batch{Pattern: "*.md"})
	assert.Empty(t, logger.EndBatch(ctx), "a new batch starts empty")
}

func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	zl := zerolog.New(zerolog.TestWriter{T: t})
	ctx := zl.WithContext(context.Background())

	buf := &bytes.Buffer{}
	u := NewUserLogger(ctx).WithWriter(buf)

	u.LogRuleChange(RuleChange{Type: RuleAdded, List: "regex", Index: 0, Rule: "/owo/g"})
	u.LogRuleChange(RuleChange{Type: RuleRemoved, List: "string", Index: 2})
	u.LogRuleChange(RuleChange{Type: RuleError, List: "regex", Index: 1, Error: errors.New("index out of range")})
	u.LogValidation(true, "all rules compile", nil)
	u.LogValidation(false, "rule 1 does not compile", errors.New("missing )"))
	u.LogStateChange("loaded 2 rules")

	out := buf.String()
	for _, want := range []string{
		"Added regex rule 0 (/owo/g)",
		"Removed string rule 2",
		"Error regex rule 1",
		"index out of range",
		"all rules compile",
		"rule 1 does not compile",
		"missing )",
		"loaded 2 rules",
	} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, u.LogTable("Using Regex", []string{"#", "rule"}, [][]string{{"0", "/owo/g"}, {"1", ""}}))
	assert.Contains(t, buf.String(), "Using Regex")
	assert.Contains(t, buf.String(), "/owo/g")
}
