// Copyright 2025 Poiesic Systems
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


// Package tagging provides deterministic rule-based classification for
// catalog items: skill tag extraction with synonym normalization and
// multi-word phrase resolution, and category inference over keyword sets.
//
// Matching rules are represented as data (an ordered list of canonical
// label plus compiled pattern) rather than conditional branches, which
// makes precedence an explicit, testable property of list construction.
// All operations are pure functions of their inputs and are safe for
// concurrent use once a Registry or Classifier has been built.
package tagging
