package badger

import (
	"fmt"

	"github.com/poiesic/assessrec/core"
)

// Key prefixes for different data types
const (
	catalogItemPrefix  = "catitm"
	catalogLabelPrefix = "catlbl"
)

// makeItemKey generates a key for a catalog item by ID.
func makeItemKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", catalogItemPrefix, id))
}

// makeLabelKey generates a key for the label index.
// Labels are fixed-width ("A0001"), so lexicographic key order is build order.
func makeLabelKey(label string) []byte {
	return []byte(catalogLabelPrefix + ":" + label)
}
