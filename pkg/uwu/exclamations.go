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

	"github.com/walteh/uwuify/pkg/seed"
)

// Exclamations are the exaggerated replacements for a trailing ?/! run
var Exclamations = []string{"!?", "?!!", "?!?1", "!!11", "?!?!"}

var trailingBangs = regexp.MustCompile(`[?!]+$`)

// uwuifyExclamation swaps a trailing ?/! run for one of Exclamations.
// Mentions and URIs are not exempt here.
func (t *Transformer) uwuifyExclamation(word string) string {
	if !trailingBangs.MatchString(word) {
		return word
	}

	s := seed.New(word)
	if s.Random() > t.modifiers.Exclamations {
		return word
	}

	return trailingBangs.ReplaceAllLiteralString(word, "") + Exclamations[s.RandomInt(0, len(Exclamations)-1)]
}

func (t *Transformer) uwuifyExclamations(sentence string) string {
	return mapWords(sentence, t.uwuifyExclamation)
}
