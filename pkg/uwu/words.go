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

	"github.com/walteh/uwuify/pkg/seed"
	"github.com/walteh/uwuify/pkg/token"
)

// 🔄 Rule is a word-level substitution. Every match is replaced when the rule fires.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// WordRules are evaluated in this order; later rules see the output of earlier ones
var WordRules = []Rule{
	{regexp.MustCompile(`r|l`), "w"},
	{regexp.MustCompile(`R|L`), "W"},
	{regexp.MustCompile(`n([aeiou])`), "ny${1}"},
	{regexp.MustCompile(`N([aeiou])`), "Ny${1}"},
	{regexp.MustCompile(`N([AEIOU])`), "Ny${1}"},
	{regexp.MustCompile(`ove`), "uv"},
}

// uwuifyWord runs the gated word rules over a single word.
// One generator, keyed on the word as it was passed in, gates every rule.
func (t *Transformer) uwuifyWord(word string) string {
	if token.Protected(word) {
		return word
	}

	s := seed.New(word)
	for _, rule := range t.rules {
		if s.Random() > t.modifiers.Words {
			continue
		}
		word = rule.Pattern.ReplaceAllString(word, rule.Replacement)
	}

	return word
}

func (t *Transformer) uwuifyWords(sentence string) string {
	return mapWords(sentence, t.uwuifyWord)
}

// mapWords splits on single spaces without collapsing runs, so empty words survive
func mapWords(sentence string, fn func(string) string) string {
	words := strings.Split(sentence, " ")
	for i, w := range words {
		words[i] = fn(w)
	}
	return strings.Join(words, " ")
}
