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


// Package search provides hybrid assessment recommendation over the catalog.
//
// The Recommender type implements a two-stage ranking algorithm:
//   - Semantic retrieval using vector embeddings over an in-memory index
//   - Lexical boosting for query terms that appear verbatim in catalog text
//
// Candidates are scored by cosine similarity, boosted per matching term,
// re-sorted, and truncated to the requested result count.
package search
