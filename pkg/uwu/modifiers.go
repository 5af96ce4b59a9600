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
	"gitlab.com/tozd/go/errors"
)

// 🫧 SpacesModifier controls the word-boundary decorations
type SpacesModifier struct {
	Faces    float64 // Chance to append a face after a word
	Actions  float64 // Chance to append an action after a word
	Stutters float64 // Chance to stutter the first letter of a word
	Enabled  bool    // Whether the spaces pass runs at all
}

// 🎚️ Modifiers holds the probability thresholds for every pass.
//
// A rule fires when its draw is less than or equal to the threshold, so 0
// (almost) never fires and 1 always does.
type Modifiers struct {
	Spaces       SpacesModifier
	Words        float64
	Exclamations float64
}

// DefaultModifiers returns the thresholds used when none are configured
func DefaultModifiers() Modifiers {
	return Modifiers{
		Spaces: SpacesModifier{
			Faces:    0.05,
			Actions:  0.075,
			Stutters: 0.1,
		},
		Words:        1,
		Exclamations: 1,
	}
}

// 🔍 Validate checks that every threshold is a probability
func (m Modifiers) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"words", m.Words},
		{"exclamations", m.Exclamations},
		{"spaces.faces", m.Spaces.Faces},
		{"spaces.actions", m.Spaces.Actions},
		{"spaces.stutters", m.Spaces.Stutters},
	}

	for _, c := range checks {
		if c.value < 0 || c.value > 1 {
			return errors.Errorf("%s modifier must be between 0 and 1, got %v", c.name, c.value)
		}
	}

	if sum := m.Spaces.Faces + m.Spaces.Actions + m.Spaces.Stutters; sum > 1 {
		return errors.Errorf("spaces modifiers must add up to at most 1, got %v", sum)
	}

	return nil
}
