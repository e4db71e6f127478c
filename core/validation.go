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

import (
	"fmt"
	"unicode/utf8"
)

// ValidateCatalogItem validates a CatalogItem according to domain rules.
//
// Validation rules:
//   - Name and Label must not be empty
//   - Category must be a member of the closed set
//   - Skills must not contain duplicates
//   - Text must not exceed MaxCanonicalTextLen runes
//
// NOT validated (populated by the build pipeline):
//   - Vector (can be empty until the embedding step runs)
//   - ID (derived from content during the build)
func ValidateCatalogItem(item *CatalogItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidCatalogItem)
	}

	if item.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyName)
	}

	if item.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyLabel)
	}

	if err := ValidateCategory(item.Category); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, err)
	}

	seen := make(map[string]bool, len(item.Skills))
	for _, skill := range item.Skills {
		if seen[skill] {
			return fmt.Errorf("%w: %w: %q", ErrInvalidCatalogItem, ErrDuplicateSkill, skill)
		}
		seen[skill] = true
	}

	if utf8.RuneCountInString(item.Text) > MaxCanonicalTextLen {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrTextTooLong)
	}

	return nil
}

// ValidateCategory validates that a Category is a member of the closed set.
func ValidateCategory(category Category) error {
	for _, c := range Categories {
		if category == c {
			return nil
		}
	}
	return fmt.Errorf("%w: value %q", ErrInvalidCategory, string(category))
}
