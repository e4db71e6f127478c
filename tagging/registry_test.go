package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_Ordering(t *testing.T) {
	registry := NewRegistry(
		[]string{"power bi", "natural language processing", "data entry"},
		[]Synonym{{"powerbi", "power bi"}, {"nlp", "nlp"}},
		[]string{"power bi", "nlp", "sql"},
	)

	labels := make([]string, 0, registry.Len())
	for _, entry := range registry.Entries() {
		labels = append(labels, entry.Label)
	}

	// Phrases longest-first, then synonyms in input order, then the
	// canonical singles not already covered by the first two groups.
	assert.Equal(t, []string{
		"natural language processing",
		"data entry",
		"power bi",
		"power bi",
		"nlp",
		"sql",
	}, labels)
}

func TestNewRegistry_PhraseLengthTiesKeepInputOrder(t *testing.T) {
	registry := NewRegistry([]string{"data entry", "power bi xx"}, nil, nil)
	entries := registry.Entries()
	require.Len(t, entries, 2)
	// "power bi xx" (11 chars) sorts before "data entry" (10 chars).
	assert.Equal(t, "power bi xx", entries[0].Label)

	tied := NewRegistry([]string{"aaa bbb", "ccc ddd"}, nil, nil)
	assert.Equal(t, "aaa bbb", tied.Entries()[0].Label)
	assert.Equal(t, "ccc ddd", tied.Entries()[1].Label)
}

func TestEntry_WholeWordMatching(t *testing.T) {
	registry := NewRegistry(nil, nil, []string{"aws"})
	require.Equal(t, 1, registry.Len())
	entry := registry.Entries()[0]

	assert.True(t, entry.Matches("experience with aws required"))
	assert.True(t, entry.Matches("aws"))
	assert.False(t, entry.Matches("the report had flaws"), "must not match inside a longer token")
	assert.False(t, entry.Matches("awsome"))
}

func TestEntry_LiteralNotRegex(t *testing.T) {
	// A label containing regex metacharacters must match literally.
	registry := NewRegistry(nil, []Synonym{{"c++", "cpp"}}, nil)
	entry := registry.Entries()[0]
	assert.True(t, entry.Matches("knows c++ well"))
	assert.False(t, entry.Matches("knows cde well"))
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()
	require.NotZero(t, registry.Len())

	// Multi-word phrases occupy the front of the list.
	first := registry.Entries()[0]
	assert.Equal(t, "natural language processing", first.Label)
}
