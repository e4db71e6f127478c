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


// Package ai defines the embedding service contracts consumed by the
// catalog build pipeline and the query path.
//
// Embedding generation is an external collaborator: the core treats it as
// an opaque, deterministic function from text to a fixed-length vector.
// Concrete implementations live in subpackages (ai/openai for
// OpenAI-compatible APIs, ai/mock for tests).
package ai
