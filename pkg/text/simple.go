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

package text

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using literal string replacement.
//
// When Pad is set, every rule runs against the content wrapped in Pad on
// both sides, and at most one Pad is stripped from each end afterwards.
type SimpleTextReplacer struct {
	Pad string
}

// NewPaddedTextReplacer creates a SimpleTextReplacer that pads content with pad around each rule
func NewPaddedTextReplacer(pad string) *SimpleTextReplacer {
	return &SimpleTextReplacer{Pad: pad}
}

// Replace implements TextReplacer.Replace
func (r *SimpleTextReplacer) Replace(content string, rules []ReplacementRule) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	current := content
	for _, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		padded := r.Pad + current + r.Pad
		replaced := strings.ReplaceAll(padded, rule.FromText, rule.ToText)

		if replaced != padded {
			result.WasModified = true
			result.ReplacementCount += strings.Count(padded, rule.FromText)
		}

		current = r.unpad(replaced)
	}

	result.ModifiedContent = current
	return result
}

// unpad strips at most one Pad from each end
func (r *SimpleTextReplacer) unpad(s string) string {
	if r.Pad == "" {
		return s
	}
	s = strings.TrimPrefix(s, r.Pad)
	return strings.TrimSuffix(s, r.Pad)
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if r.Pad != "" && strings.Contains(rule.ToText, r.Pad) {
			return errors.Errorf("rule %d: to_text must not contain the pad %q", i, r.Pad)
		}
	}
	return nil
}
