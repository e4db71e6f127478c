package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadItems(t *testing.T) {
	csvData := `source_url,canonical_url,title,meta_description,text_snippet,extracted_text
https://example.com/src1,https://example.com/a,Java Test | Catalog,Measures Java.,Snippet one.,Full text one.
https://example.com/src2,,Verbal Reasoning,,Snippet two.,
`

	items, err := ReadItems(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "https://example.com/a", items[0].CanonicalURL)
	assert.Equal(t, "Java Test | Catalog", items[0].Title)
	assert.Equal(t, "Full text one.", items[0].ExtractedText)

	assert.Empty(t, items[1].CanonicalURL)
	assert.Equal(t, "https://example.com/src2", items[1].URL())
}

func TestReadItems_ColumnOrderIndependent(t *testing.T) {
	csvData := `title,source_url
Java Test,https://example.com/a
`

	items, err := ReadItems(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Java Test", items[0].Title)
	assert.Equal(t, "https://example.com/a", items[0].SourceURL)
}

func TestReadItems_MissingSourceURLColumn(t *testing.T) {
	csvData := `title,canonical_url
Java Test,https://example.com/a
`

	_, err := ReadItems(strings.NewReader(csvData))
	assert.ErrorContains(t, err, "source_url")
}

func TestReadItems_EmptyInput(t *testing.T) {
	_, err := ReadItems(strings.NewReader(""))
	assert.ErrorContains(t, err, "header")
}
