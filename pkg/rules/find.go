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

package rules

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	"gitlab.com/tozd/go/errors"
)

// findSyntax splits "/pattern/flags"; both slashes and the flags are optional
var findSyntax = regexp.MustCompile(`^(/)?(.+?)(?:/([gimsuy]*))?$`)

// 🔍 Find is a compiled regex find field
type Find struct {
	Source  string
	Pattern string
	Flags   string
	Regexp  *regexp2.Regexp
}

// Global reports whether the find field replaces every match
func (f *Find) Global() bool {
	return strings.Contains(f.Flags, "g")
}

// ParseFind compiles a find field written either as a bare pattern or as
// /pattern/flags. Flags are de-duplicated; without a flags suffix the field
// defaults to "g". Patterns use ECMAScript semantics unless the s flag asks
// for dot-all matching.
func ParseFind(s string) (*Find, error) {
	f := &Find{Source: s, Pattern: s}

	if m := findSyntax.FindStringSubmatchIndex(s); m != nil {
		f.Pattern = s[m[4]:m[5]]
		if m[6] >= 0 {
			f.Flags = dedupe(s[m[6]:m[7]])
		} else {
			f.Flags = "g"
		}
	}

	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, flag := range f.Flags {
		switch flag {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts = (opts &^ regexp2.ECMAScript) | regexp2.Singleline
		}
	}

	re, err := regexp2.Compile(f.Pattern, opts)
	if err != nil {
		return nil, errors.Errorf("invalid find pattern %q: %w", s, err)
	}
	f.Regexp = re

	return f, nil
}

// FindError returns the error a find field would produce, or nil when it compiles
func FindError(s string) error {
	_, err := ParseFind(s)
	return err
}

func dedupe(flags string) string {
	var b strings.Builder
	for _, r := range flags {
		if !strings.ContainsRune(b.String(), r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
