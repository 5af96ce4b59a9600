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

// ReplacementRule defines a single literal replacement
type ReplacementRule struct {
	// FromText is the literal to replace
	FromText string

	// ToText is the replacement text
	ToText string
}

// Invert returns the rule that undoes r
func (r ReplacementRule) Invert() ReplacementRule {
	return ReplacementRule{FromText: r.ToText, ToText: r.FromText}
}

// ReplacementResult contains the results of a replacement pass
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent string

	// ModifiedContent is the content after replacements
	ModifiedContent string
}

// TextReplacer defines the interface for literal replacement passes
type TextReplacer interface {
	// Replace applies the rules in order, each against the output of the previous one
	Replace(content string, rules []ReplacementRule) *ReplacementResult

	// ValidateRules checks that all rules are usable
	ValidateRules(rules []ReplacementRule) error
}
