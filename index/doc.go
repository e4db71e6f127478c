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


// Package index provides the nearest-neighbor search structure over the
// catalog's embedding matrix.
//
// A Snapshot is an immutable bundle of catalog items and their embedding
// vectors, with row i of the matrix corresponding exactly to item i for
// the lifetime of the snapshot. Rebuilds produce a new Snapshot which is
// swapped atomically through a Holder; queries in flight keep the snapshot
// they loaded and never observe a partially rebuilt structure.
package index
