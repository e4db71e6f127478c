package index

import "sort"

// Neighbor is one nearest-neighbor hit: the cosine distance to the query
// and the matrix row it was found at.
type Neighbor struct {
	Distance float64
	Row      int
}

// Nearest returns the n rows closest to the query vector by cosine
// distance (1 - cosine similarity), ordered by ascending distance.
//
// n is clamped to at least the snapshot's candidate floor and at most the
// number of rows. Equal distances keep row order, which is deterministic
// for a fixed build but not guaranteed stable across rebuilds with a
// different row ordering.
func (s *Snapshot) Nearest(query []float32, n int) ([]Neighbor, error) {
	if len(query) != s.dim {
		return nil, ErrDimensionMismatch
	}

	if n < s.floor {
		n = s.floor
	}
	if n > len(s.matrix) {
		n = len(s.matrix)
	}

	neighbors := make([]Neighbor, len(s.matrix))
	for row, vector := range s.matrix {
		sim, err := Cosine(query, vector)
		if err != nil {
			return nil, err
		}
		neighbors[row] = Neighbor{Distance: 1 - sim, Row: row}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	return neighbors[:n], nil
}
