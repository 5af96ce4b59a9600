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

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMention(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want bool
	}{
		{name: "mention", tok: "@user", want: true},
		{name: "bare_at", tok: "@", want: true},
		{name: "at_in_middle", tok: "user@host", want: false},
		{name: "empty", tok: "", want: false},
		{name: "plain_word", tok: "hello", want: false},
		{name: "leading_space", tok: " @user", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMention(tt.tok))
		})
	}
}

func TestIsURI(t *testing.T) {
	tests := []struct {
		name string
		tok  string
		want bool
	}{
		{name: "empty", tok: "", want: false},
		{name: "https_with_path", tok: "https://example.com/path", want: true},
		{name: "https_no_path", tok: "https://example.com", want: true},
		{name: "query_and_fragment", tok: "http://example.com/a?b=c#d", want: true},
		{name: "mailto", tok: "mailto:someone@example.com", want: true},
		{name: "urn", tok: "urn:isbn:0451450523", want: true},
		{name: "file_empty_authority", tok: "file:///etc/hosts", want: true},
		{name: "valid_escape", tok: "https://example.com/a%20b", want: true},
		{name: "trailing_colon_is_scheme", tok: "hello:", want: true},
		{name: "plain_word", tok: "hello", want: false},
		{name: "domain_without_scheme", tok: "example.com/path", want: false},
		{name: "illegal_character", tok: "https://example.com/<path>", want: false},
		{name: "unicode", tok: "https://exämple.com", want: false},
		{name: "short_escape", tok: "https://example.com/a%2", want: false},
		{name: "non_hex_escape", tok: "https://example.com/a%zz", want: false},
		{name: "half_hex_escape", tok: "https://example.com/a%2g", want: false},
		{name: "dangling_percent", tok: "https://example.com/a%", want: false},
		{name: "scheme_starts_with_digit", tok: "12:30", want: false},
		{name: "scheme_with_plus", tok: "svn+ssh://host/repo", want: true},
		{name: "scheme_invalid_char", tok: "ht_tp://example.com", want: false},
		{name: "authority_empty_path", tok: "http://host", want: true},
		{name: "mention", tok: "@user", want: false},
		{name: "long_s_not_folded", tok: "https://\u017Fite.com/path", want: false},
		{name: "kelvin_sign_not_folded", tok: "http://\u212Aey.com", want: false},
		{name: "kelvin_sign_in_scheme", tok: "\u212Attp://x", want: false},
		{name: "uppercase_scheme", tok: "HTTPS://EXAMPLE.COM/A%2F", want: true},
		{name: "exclamation_word", tok: "what?!", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURI(tt.tok))
		})
	}
}

func TestProtected(t *testing.T) {
	assert.True(t, Protected("@user"))
	assert.True(t, Protected("https://example.com/path"))
	assert.False(t, Protected("hello"))
}
