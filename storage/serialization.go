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


package storage

import (
	"github.com/poiesic/assessrec/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalCatalogItem serializes a CatalogItem to bytes.
func MarshalCatalogItem(item *core.CatalogItem) []byte {
	buf := make([]byte, core.CatalogItemMUS.Size(*item))
	core.CatalogItemMUS.Marshal(*item, buf)
	return buf
}

// UnmarshalCatalogItem deserializes a CatalogItem from bytes.
func UnmarshalCatalogItem(data []byte) (*core.CatalogItem, error) {
	item, _, err := core.CatalogItemMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
