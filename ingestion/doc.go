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


// Package ingestion builds the assessment catalog from crawled pages.
//
// The Pipeline type turns raw crawler output into stored catalog items:
// it deduplicates pages by canonical URL, cleans and assembles text,
// tags skills, classifies each item into a category, generates
// embeddings in batches, and persists the result. Tagging runs on a
// worker pool; labels are assigned by build order so the stored catalog
// has a stable, reproducible ordering.
package ingestion
