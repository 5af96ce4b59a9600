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
	"strings"
	"unicode/utf8"

	"github.com/walteh/uwuify/pkg/seed"
	"github.com/walteh/uwuify/pkg/token"
)

// Faces can be appended after a word by the spaces pass
var Faces = []string{
	"(・`ω´・)",
	";;w;;",
	"OwO",
	"UwU",
	">w<",
	"^w^",
	"ÚwÚ",
	"^-^",
	":3",
	"x3",
}

// Actions can be appended after a word by the spaces pass
var Actions = []string{
	"*blushes*",
	"*whispers to self*",
	"*cries*",
	"*screams*",
	"*sweats*",
	"*twerks*",
	"*runs away*",
	"*screeches*",
	"*walks away*",
	"*looks at you*",
	"*starts twerking*",
	"*huggles tightly*",
	"*boops your nose*",
}

// uwuifySpace decorates a single word. The thresholds stack: faces first,
// then actions, then stutters, all compared against one draw.
func (t *Transformer) uwuifySpace(word string) string {
	if word == "" || token.Protected(word) {
		return word
	}

	m := t.modifiers.Spaces
	faceThreshold := m.Faces
	actionThreshold := faceThreshold + m.Actions
	stutterThreshold := actionThreshold + m.Stutters

	s := seed.New(word)
	r := s.Random()

	switch {
	case r <= faceThreshold && m.Faces > 0:
		return word + " " + Faces[s.RandomInt(0, len(Faces)-1)]
	case r <= actionThreshold && m.Actions > 0:
		return word + " " + Actions[s.RandomInt(0, len(Actions)-1)]
	case r <= stutterThreshold && m.Stutters > 0:
		first, _ := utf8.DecodeRuneInString(word)
		return strings.Repeat(string(first)+"-", s.RandomInt(0, 2)) + word
	}

	return word
}

func (t *Transformer) uwuifySpaces(sentence string) string {
	return mapWords(sentence, t.uwuifySpace)
}
