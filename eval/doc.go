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


// Package eval measures recommendation quality against labeled queries.
//
// Relevance judgements are given as URLs. Matching is done on the URL
// slug rather than the full string, so host and scheme variants of the
// same catalog page still count as hits. The package also exports ranked
// results as a submission CSV for offline scoring.
package eval
