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

package uwu

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysWords() Modifiers {
	return Modifiers{Words: 1}
}

func TestApplyRules_AlwaysWords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "hello_world", content: "hello world", want: "hewwo wowwd"},
		{name: "love", content: "I love you", want: "I wuv you"},
		{name: "rover_uses_earlier_rule_output", content: "rover", want: "wuvw"},
		{name: "capital_l", content: "Hello", want: "Hewwo"},
		{name: "capital_lol_is_not_an_edge_case", content: "Lol", want: "Wow"},
		{name: "n_vowel_replaces_all", content: "banana", want: "banyanya"},
		{name: "capital_n_lower_vowel", content: "Nope", want: "Nyope"},
		{name: "capital_n_upper_vowel", content: "NOPE", want: "NyOPE"},
		{name: "edge_cases_survive", content: "lol that will do lmao", want: "lol that will do lmao"},
		{name: "edge_case_inside_word", content: "willow", want: "willow"},
		{name: "mention_untouched", content: "@lilly hello", want: "@lilly hewwo"},
		{name: "uri_untouched", content: "look https://example.com/really", want: "wook https://example.com/really"},
		{name: "keeps_inner_double_space", content: "hello  world", want: "hewwo  wowwd"},
		{name: "trims_outer_whitespace", content: "  hello ", want: "hewwo"},
		{name: "no_letters", content: "1234 5678", want: "1234 5678"},
	}

	tr := New(WithModifiers(alwaysWords()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.ApplyRules(tt.content))
		})
	}
}

func TestApplyRules_NeverSubstitutes(t *testing.T) {
	tr := New(WithModifiers(Modifiers{}))
	assert.Equal(t, "hello world", tr.ApplyRules("hello world"))
	assert.Equal(t, "", tr.ApplyRules(""))
}

func TestApplyRules_HelloHasNoLiquids(t *testing.T) {
	tr := New(WithModifiers(alwaysWords()))
	out := tr.ApplyRules("hello")
	assert.NotContains(t, out, "l")
	assert.NotContains(t, out, "L")
	assert.NotContains(t, out, "r")
	assert.NotContains(t, out, "R")
}

func TestApplyRules_Deterministic(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Words: 0.5, Exclamations: 0.5}))
	msg := "hello there my lovely friend, how are you?! running late!!"

	first := tr.ApplyRules(msg)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, tr.ApplyRules(msg), "run %d", i)
	}
	assert.Equal(t, first, New(WithModifiers(Modifiers{Words: 0.5, Exclamations: 0.5})).ApplyRules(msg))
}

func TestApplyRules_ProtectedTokensAtMaxWords(t *testing.T) {
	tr := New(WithModifiers(alwaysWords()))
	protected := []string{
		"https://example.com/path",
		"@user",
		"@rarely_online",
		"mailto:lorna@example.org",
	}

	for _, tok := range protected {
		t.Run(tok, func(t *testing.T) {
			assert.Equal(t, tok, tr.uwuifyWord(tok))
			assert.Equal(t, tok, tr.ApplyRules(tok))
		})
	}
}

func TestApplyRules_ExclamationBound(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Exclamations: 1}))
	words := []string{"what?!", "ok!!!", "why???", "?", "@user!!", "now!?!?"}

	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			out := tr.ApplyRules(w)
			stem := strings.TrimRight(w, "?!")
			require.True(t, strings.HasPrefix(out, stem), "output %q should keep stem %q", out, stem)
			assert.Contains(t, Exclamations, strings.TrimPrefix(out, stem))
		})
	}
}

func TestApplyRules_ExclamationNeverFires(t *testing.T) {
	tr := New(WithModifiers(Modifiers{}))
	assert.Equal(t, "what?!", tr.ApplyRules("what?!"))
}

func TestApplyRules_ExclamationNeedsTrailingRun(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Exclamations: 1}))
	assert.Equal(t, "wh?at", tr.ApplyRules("wh?at"))
}

func TestApplyRules_EdgeCaseWithExclamation(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Words: 1, Exclamations: 1}))
	out := tr.ApplyRules("lol!!")
	require.True(t, strings.HasPrefix(out, "lol"), "got %q", out)
	assert.Contains(t, Exclamations, strings.TrimPrefix(out, "lol"))
}

func TestApplyRules_CustomEdgeCases(t *testing.T) {
	tr := New(WithModifiers(alwaysWords()), WithEdgeCases("hello"))
	assert.Equal(t, "hello wowwd", tr.ApplyRules("hello world"))
	assert.Equal(t, "wow", tr.ApplyRules("lol"), "default edge cases are replaced, not merged")
	assert.Equal(t, []string{"hello"}, tr.EdgeCases())
}

func TestApplyRules_EmptyEdgeCaseIsIgnored(t *testing.T) {
	tr := New(WithModifiers(alwaysWords()), WithEdgeCases("", "lol"))
	assert.Equal(t, "lol hewwo", tr.ApplyRules("lol hello"))
}

func TestTransformer_Validate(t *testing.T) {
	require.NoError(t, New().Validate())
	require.NoError(t, New(WithEdgeCases("brb", "oh no")).Validate())

	err := New(WithEdgeCases("lol", "")).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1: from_text is required")
}

func TestMaskUnmask_RoundTrip(t *testing.T) {
	tr := New()
	inputs := []string{
		"lol",
		"that was so funny lol",
		"lolol trolling lmao will you",
		"  spaced   lol  out  ",
		"[$ec#5$] not ours",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			masked := tr.Mask(in)
			assert.NotContains(t, masked, "lol")
			assert.Equal(t, in, tr.Unmask(masked))
		})
	}
}

func TestMask_Placeholders(t *testing.T) {
	tr := New()
	assert.Equal(t, "[$ec#2$] [$ec#1$] [$ec#0$]", tr.Mask("lol will lmao"))
	assert.Equal(t, "[$ec#1$]ow", tr.Mask("willow"))
	assert.Equal(t, "[$ec#2$]", Placeholder(2))
}

func TestUwuifySentence_SplitsOnSingleSpaces(t *testing.T) {
	tr := New(WithModifiers(alwaysWords()))
	assert.Equal(t, " hewwo   wowwd ", tr.UwuifySentence(" hello   world "))
}

func TestSpaces_Faces(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Spaces: SpacesModifier{Faces: 1, Enabled: true}}))
	out := tr.ApplyRules("hi there")

	parts := strings.Split(out, " ")
	require.Len(t, parts, 4, "got %q", out)
	assert.Equal(t, "hi", parts[0])
	assert.Contains(t, Faces, parts[1])
	assert.Equal(t, "there", parts[2])
	assert.Contains(t, Faces, parts[3])
}

func TestSpaces_Actions(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Spaces: SpacesModifier{Actions: 1, Enabled: true}}))
	out := tr.ApplyRules("hi")

	require.True(t, strings.HasPrefix(out, "hi "), "got %q", out)
	assert.Contains(t, Actions, strings.TrimPrefix(out, "hi "))
}

func TestSpaces_Stutters(t *testing.T) {
	tr := New(WithModifiers(Modifiers{Spaces: SpacesModifier{Stutters: 1, Enabled: true}}))
	assert.Regexp(t, regexp.MustCompile(`^(h-){0,2}hello$`), tr.ApplyRules("hello"))
	assert.Equal(t, "@hello", tr.ApplyRules("@hello"), "mentions never stutter")
}

func TestSpaces_DisabledByDefault(t *testing.T) {
	m := DefaultModifiers()
	m.Spaces.Faces = 1
	m.Spaces.Actions = 0
	m.Spaces.Stutters = 0
	m.Exclamations = 0

	tr := New(WithModifiers(m))
	assert.Equal(t, "hewwo", tr.ApplyRules("hello"))
}

func TestModifiers_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modifiers Modifiers
		wantError string
	}{
		{name: "defaults", modifiers: DefaultModifiers()},
		{name: "zero", modifiers: Modifiers{}},
		{name: "words_too_high", modifiers: Modifiers{Words: 1.5}, wantError: "words modifier"},
		{name: "exclamations_negative", modifiers: Modifiers{Exclamations: -0.1}, wantError: "exclamations modifier"},
		{name: "faces_out_of_range", modifiers: Modifiers{Spaces: SpacesModifier{Faces: 2}}, wantError: "spaces.faces modifier"},
		{
			name:      "spaces_sum_too_high",
			modifiers: Modifiers{Spaces: SpacesModifier{Faces: 0.5, Actions: 0.5, Stutters: 0.5}},
			wantError: "add up to at most 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.modifiers.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
