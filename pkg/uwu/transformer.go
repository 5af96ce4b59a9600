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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/pkg/text"
)

// DefaultEdgeCases are the words protected from the pipeline unless configured otherwise
var DefaultEdgeCases = []string{"lmao", "will", "lol"}

// 🎯 Transformer applies the uwuify pipeline. It is immutable after New and
// safe for concurrent use.
type Transformer struct {
	modifiers Modifiers
	rules     []Rule
	edgeCases []string
	replacer  text.TextReplacer
	mask      []text.ReplacementRule
	unmask    []text.ReplacementRule
}

// Option configures a Transformer
type Option func(*Transformer)

// WithModifiers overrides the default thresholds
func WithModifiers(m Modifiers) Option {
	return func(t *Transformer) {
		t.modifiers = m
	}
}

// WithEdgeCases overrides the protected word list. Order matters: each
// word's placeholder is derived from its index.
func WithEdgeCases(words ...string) Option {
	return func(t *Transformer) {
		t.edgeCases = append([]string(nil), words...)
	}
}

// 🏭 New creates a Transformer with DefaultModifiers and DefaultEdgeCases unless overridden
func New(opts ...Option) *Transformer {
	t := &Transformer{
		modifiers: DefaultModifiers(),
		rules:     WordRules,
		edgeCases: DefaultEdgeCases,
		replacer:  text.NewPaddedTextReplacer(" "),
	}
	for _, opt := range opts {
		opt(t)
	}

	for i, word := range t.edgeCases {
		if word == "" {
			continue
		}
		rule := text.ReplacementRule{FromText: word, ToText: Placeholder(i)}
		t.mask = append(t.mask, rule)
		t.unmask = append(t.unmask, rule.Invert())
	}

	return t
}

// Modifiers returns the thresholds in use
func (t *Transformer) Modifiers() Modifiers {
	return t.modifiers
}

// EdgeCases returns a copy of the protected word list
func (t *Transformer) EdgeCases() []string {
	return append([]string(nil), t.edgeCases...)
}

// Validate reports edge cases the guard cannot protect, such as empty words
func (t *Transformer) Validate() error {
	rules := make([]text.ReplacementRule, 0, len(t.edgeCases))
	for i, word := range t.edgeCases {
		rules = append(rules, text.ReplacementRule{FromText: word, ToText: Placeholder(i)})
	}
	if err := t.replacer.ValidateRules(rules); err != nil {
		return errors.Errorf("edge cases: %w", err)
	}
	return nil
}

// Placeholder is the token that stands in for edge case i while the pipeline runs
func Placeholder(i int) string {
	return fmt.Sprintf("[$ec#%d$]", i)
}

// 📝 ApplyRules uwuifies content. Empty content is returned as is.
func (t *Transformer) ApplyRules(content string) string {
	if content == "" {
		return content
	}

	content = t.Mask(content)
	content = t.UwuifySentence(content)
	content = t.Unmask(content)

	return strings.TrimSpace(content)
}

// Mask swaps every edge case for its placeholder
func (t *Transformer) Mask(content string) string {
	return t.replacer.Replace(content, t.mask).ModifiedContent
}

// Unmask swaps placeholders back to their edge cases
func (t *Transformer) Unmask(content string) string {
	return t.replacer.Replace(content, t.unmask).ModifiedContent
}

// UwuifySentence runs the word pass over the whole sentence, then the
// exclamation pass, so exclamation draws are seeded with uwuified words.
func (t *Transformer) UwuifySentence(sentence string) string {
	sentence = t.uwuifyWords(sentence)
	sentence = t.uwuifyExclamations(sentence)
	if t.modifiers.Spaces.Enabled {
		sentence = t.uwuifySpaces(sentence)
	}
	return sentence
}
