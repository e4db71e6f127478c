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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidCatalogItem indicates a CatalogItem failed validation.
	ErrInvalidCatalogItem = errors.New("invalid catalog item")

	// ErrEmptyName indicates the item Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyLabel indicates the item Label field is empty.
	ErrEmptyLabel = errors.New("label cannot be empty")

	// ErrInvalidCategory indicates a category code outside the closed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrDuplicateSkill indicates the skill tag list contains duplicates.
	ErrDuplicateSkill = errors.New("duplicate skill tag")

	// ErrTextTooLong indicates the canonical text exceeds the storage bound.
	ErrTextTooLong = errors.New("canonical text too long")
)
