package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferName(t *testing.T) {
	t.Run("strips site chrome after pipe", func(t *testing.T) {
		name := InferName("Java Programming Test | Vendor Catalog", "https://example.com/view/java-test")
		assert.Equal(t, "Java Programming Test", name)
	})

	t.Run("uses full title when no pipe", func(t *testing.T) {
		name := InferName("  Verbal Reasoning  ", "https://example.com/view/verbal")
		assert.Equal(t, "Verbal Reasoning", name)
	})

	t.Run("falls back to URL slug", func(t *testing.T) {
		name := InferName("", "https://example.com/view/python-data-entry")
		assert.Equal(t, "Python Data Entry", name)
	})

	t.Run("slug underscores become spaces", func(t *testing.T) {
		name := InferName("", "https://example.com/view/account_manager_solution")
		assert.Equal(t, "Account Manager Solution", name)
	})

	t.Run("empty title and bare host falls back to unknown", func(t *testing.T) {
		assert.Equal(t, UnknownName, InferName("", "https://example.com/"))
	})

	t.Run("chrome-only title falls back to unknown", func(t *testing.T) {
		assert.Equal(t, UnknownName, InferName(" | Vendor Catalog", "https://example.com/"))
	})
}

func TestCanonicalText(t *testing.T) {
	t.Run("prefers extracted text", func(t *testing.T) {
		raw := RawItem{
			Title:         "Java Test",
			ExtractedText: "Full   page \n text.",
		}
		assert.Equal(t, "Full page text.", raw.CanonicalText())
	})

	t.Run("falls back to title description and snippet", func(t *testing.T) {
		raw := RawItem{
			Title:           "Java Test",
			MetaDescription: "Measures Java knowledge.",
			TextSnippet:     "For developers.",
		}
		assert.Equal(t, "Java Test Measures Java knowledge. For developers.", raw.CanonicalText())
	})

	t.Run("truncates long text", func(t *testing.T) {
		raw := RawItem{ExtractedText: strings.Repeat("x", 6000)}
		assert.Len(t, raw.CanonicalText(), 5000)
	})
}

func TestSkillText(t *testing.T) {
	raw := RawItem{
		Title:           "Java Test",
		MetaDescription: "Measures Java.",
		TextSnippet:     "Snippet.",
		ExtractedText:   "Body.",
	}
	assert.Equal(t, "Java Test Measures Java. Snippet. Body.", raw.SkillText())
}

func TestDedupeByURL(t *testing.T) {
	items := []RawItem{
		{CanonicalURL: "https://example.com/a", Title: "First"},
		{CanonicalURL: "https://example.com/a", Title: "Duplicate"},
		{SourceURL: "https://example.com/b", Title: "Source only"},
		{Title: "No URL"},
	}

	deduped := dedupeByURL(items)
	if assert.Len(t, deduped, 2) {
		assert.Equal(t, "First", deduped[0].Title)
		assert.Equal(t, "Source only", deduped[1].Title)
	}
}

func TestRawItemURL(t *testing.T) {
	raw := RawItem{SourceURL: "https://example.com/src", CanonicalURL: "https://example.com/canon"}
	assert.Equal(t, "https://example.com/canon", raw.URL())

	raw.CanonicalURL = ""
	assert.Equal(t, "https://example.com/src", raw.URL())
}
