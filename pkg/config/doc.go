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
Package config manages configuration parsing and validation for uwuify.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Loads the pipeline thresholds, the protected edge cases, the reserved
  channel and the rule store location
- Every parser starts from Default(), so a file only needs the keys it changes

🔄 Flow:
1. Reads configuration from file
2. Picks a parser by extension
3. Overlays the file onto Default()
4. Validates probabilities and the store driver

🔍 Example (YAML):

	modifiers:
	  words: 0.8
	  exclamations: 1
	  spaces:
	    enabled: true
	edge_cases: [lmao, will, lol]
	store:
	  driver: sqlite
	  path: rules.db

🔍 Example (HCL):

	modifiers {
	  words = 0.8
	  spaces {
	    enabled = true
	  }
	}
	reserved_channel = default_reserved_channel
	store {
	  driver = "file"
	  path   = ".uwuify.store.yaml"
	}
*/
package config
