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

// Package token classifies message tokens that must not be rewritten.
package token

import (
	"regexp"
	"strings"
)

var (
	// 🚫 illegalURIChar matches anything outside the RFC 3986 reserved and unreserved sets (plus %)
	illegalURIChar = regexp.MustCompile(`[^A-Za-z0-9:/?#\[\]@!$&'()*+,;=.\-_~%]`)

	// badEscape matches a % that is not followed by two hex digits
	badEscape = regexp.MustCompile(`%(?:[^0-9A-Fa-f]|[0-9A-Fa-f](?:[^0-9A-Fa-f]|$)|$)`)

	// uriParts is the generic URI grammar from RFC 3986 appendix B
	uriParts = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?`)

	// character classes stay ASCII: (?i) folding admits U+017F and U+212A
	schemeSyntax = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+\-.]*$`)
)

// 👤 IsMention reports whether tok starts with '@'
func IsMention(tok string) bool {
	return strings.HasPrefix(tok, "@")
}

// 🔗 IsURI reports whether tok is a syntactically valid absolute URI.
//
// A scheme is required. With an authority the path must be empty or start
// with "/"; without one it must not start with "//".
func IsURI(tok string) bool {
	if tok == "" {
		return false
	}

	if illegalURIChar.MatchString(tok) {
		return false
	}

	if badEscape.MatchString(tok) {
		return false
	}

	parts := uriParts.FindStringSubmatch(tok)
	if parts == nil {
		return false
	}

	scheme, authority, path := parts[1], parts[2], parts[3]

	if scheme == "" {
		return false
	}

	if authority != "" {
		if path != "" && !strings.HasPrefix(path, "/") {
			return false
		}
	} else if strings.HasPrefix(path, "//") {
		return false
	}

	return schemeSyntax.MatchString(scheme)
}

// Protected reports whether tok must pass through the word transformer untouched
func Protected(tok string) bool {
	return IsMention(tok) || IsURI(tok)
}
