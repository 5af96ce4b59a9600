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

/*
Package uwu implements the message uwuification pipeline.

	  content
	     |
	+----v-----+      edge cases become [$ec#<i>$]
	|   mask   |
	+----+-----+
	     |
	+----v-----+      per word: r/l -> w, n+vowel -> ny+vowel, ove -> uv
	|  words   |      (each rule gated by a draw from seed.New(word))
	+----+-----+
	     |
	+----v-----+      trailing ?!/!! runs -> one exaggerated variant
	|  bangs   |
	+----+-----+
	     |
	+----v-----+      optional faces, actions and stutters
	|  spaces  |
	+----+-----+
	     |
	+----v-----+
	|  unmask  |
	+----+-----+
	     |
	  result

Every random decision is drawn from a generator seeded with the word it
applies to, so the same message always comes out the same way.
Mentions and URIs are never touched by the word rules.

🔍 Example:

	t := uwu.New(uwu.WithModifiers(uwu.Modifiers{Words: 1}))
	t.ApplyRules("I love you") // "I wuv you"
*/
package uwu
