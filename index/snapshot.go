package index

import (
	"fmt"
	"sync/atomic"

	"github.com/poiesic/assessrec/core"
)

const defaultCandidateFloor = 10

// Snapshot is an immutable view of the catalog and its embedding matrix.
// Row i of the matrix corresponds exactly to item i; this alignment holds
// for the lifetime of the snapshot. Callers must treat the returned items
// and vectors as read-only.
type Snapshot struct {
	items  []*core.CatalogItem
	matrix [][]float32
	dim    int
	floor  int
}

// SnapshotOption configures snapshot construction.
type SnapshotOption func(*Snapshot)

// WithCandidateFloor sets the minimum neighbor count returned by Nearest,
// so downstream reranking always has enough candidates to reorder.
// Default is 10. Values below 1 are coerced to 1.
func WithCandidateFloor(n int) SnapshotOption {
	return func(s *Snapshot) {
		if n < 1 {
			n = 1
		}
		s.floor = n
	}
}

// NewSnapshot builds a snapshot from catalog items, validating that every
// item carries a vector and that all vectors share one dimensionality.
// The items slice defines row order; the caller must not mutate it after
// the call.
func NewSnapshot(items []*core.CatalogItem, opts ...SnapshotOption) (*Snapshot, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	dim := len(items[0].Vector)
	if dim == 0 {
		return nil, fmt.Errorf("%w: item %s", ErrMissingVector, items[0].Label)
	}

	matrix := make([][]float32, len(items))
	for i, item := range items {
		if len(item.Vector) == 0 {
			return nil, fmt.Errorf("%w: item %s", ErrMissingVector, item.Label)
		}
		if len(item.Vector) != dim {
			return nil, fmt.Errorf("%w: item %s has %d, expected %d",
				ErrDimensionMismatch, item.Label, len(item.Vector), dim)
		}
		matrix[i] = item.Vector
	}

	s := &Snapshot{
		items:  items,
		matrix: matrix,
		dim:    dim,
		floor:  defaultCandidateFloor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Len returns the number of catalog rows in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.items)
}

// Dim returns the embedding dimensionality.
func (s *Snapshot) Dim() int {
	return s.dim
}

// Item returns the catalog item at the given row, or nil if the row is
// outside the valid range.
func (s *Snapshot) Item(row int) *core.CatalogItem {
	if row < 0 || row >= len(s.items) {
		return nil
	}
	return s.items[row]
}

// Holder publishes the current snapshot to query handlers. Rebuilds swap
// in a complete new snapshot atomically; readers keep whatever snapshot
// they loaded for the duration of their query.
type Holder struct {
	ptr atomic.Pointer[Snapshot]
}

// NewHolder creates an empty holder. Load returns nil until the first
// Swap publishes a snapshot.
func NewHolder() *Holder {
	return &Holder{}
}

// Load returns the current snapshot, or nil if none has been published.
func (h *Holder) Load() *Snapshot {
	return h.ptr.Load()
}

// Swap atomically replaces the published snapshot.
func (h *Holder) Swap(snapshot *Snapshot) {
	h.ptr.Store(snapshot)
}
