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


// Package server exposes the recommendation engine over HTTP.
//
// Three endpoints are served: POST /recommend ranks catalog items for a
// query, POST /reindex rebuilds the in-memory index from storage, and
// GET /health reports liveness. Recommendation requests made before an
// index snapshot exists answer 503 until a reindex completes.
package server
