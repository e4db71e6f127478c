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


package index

import "errors"

var (
	// ErrNoItems indicates an attempt to build a snapshot from an empty catalog.
	ErrNoItems = errors.New("no catalog items")

	// ErrMissingVector indicates a catalog item without an embedding vector.
	ErrMissingVector = errors.New("catalog item has no embedding vector")

	// ErrDimensionMismatch indicates vectors of inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
