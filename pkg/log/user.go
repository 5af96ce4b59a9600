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

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger gives user-facing feedback for interactive commands
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎨 RuleChangeType is the kind of edit made to a rule list
type RuleChangeType int

const (
	RuleAdded RuleChangeType = iota
	RuleUpdated
	RuleRemoved
	RuleSkipped
	RuleError
)

// 🖼️ RuleChange describes one edit to a rule list
type RuleChange struct {
	Type  RuleChangeType
	List  string
	Index int
	Rule  string
	Error error
}

// 🎯 NewUserLogger creates a user logger writing to pterm's default output
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// WithWriter redirects every printer to w
func (u *UserLogger) WithWriter(w io.Writer) *UserLogger {
	return &UserLogger{log: u.log, out: w}
}

func (u *UserLogger) printer(p pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	pp := p.WithPrefix(pterm.Prefix{Text: prefix, Style: p.Prefix.Style})
	if u.out != nil {
		pp = pp.WithWriter(u.out)
	}
	return pp
}

// 📝 LogRuleChange prints a rule edit with a matching emoji
func (u *UserLogger) LogRuleChange(change RuleChange) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case RuleAdded:
		action = "Added"
		printer = u.printer(pterm.Success, "✨")
	case RuleUpdated:
		action = "Updated"
		printer = u.printer(pterm.Info, "🔄")
	case RuleRemoved:
		action = "Removed"
		printer = u.printer(pterm.Warning, "🗑️")
	case RuleSkipped:
		action = "Skipped"
		printer = u.printer(pterm.Info, "⏭️")
	default:
		action = "Error"
		printer = u.printer(pterm.Error, "❌")
	}

	msg := fmt.Sprintf("%s %s rule %d", action, change.List, change.Index)
	if change.Rule != "" {
		msg += fmt.Sprintf(" (%s)", change.Rule)
	}

	printer.Println(msg)
	if change.Error != nil {
		u.printer(pterm.Error, "❌").Println(change.Error.Error())
		u.log.Error().Err(change.Error).Msg(msg)
		return
	}
	u.log.Info().Msg(msg)
}

// 📊 LogStateChange prints a general status line
func (u *UserLogger) LogStateChange(description string) {
	u.printer(pterm.Info, "📦").Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation prints a check result
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	switch {
	case valid:
		u.printer(pterm.Success, "✅").Println(description)
		u.log.Info().Msg(description)
	case err != nil:
		u.printer(pterm.Error, "❌").Println(description)
		u.printer(pterm.Error, "❌").Println(err.Error())
		u.log.Error().Err(err).Msg(description)
	default:
		u.printer(pterm.Warning, "⚠️").Println(description)
		u.log.Warn().Msg(description)
	}
}

// 📋 LogTable renders rows under a header line
func (u *UserLogger) LogTable(title string, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if u.out != nil {
		table = table.WithWriter(u.out)
	}

	u.printer(pterm.Info, "📋").Println(title)
	if err := table.Render(); err != nil {
		return err
	}
	u.log.Debug().Str("title", title).Int("rows", len(rows)).Msg("rendered table")
	return nil
}
