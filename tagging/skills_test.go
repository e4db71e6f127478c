package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_Empty(t *testing.T) {
	registry := DefaultRegistry()

	assert.Empty(t, registry.ExtractSkills(""))
	assert.Empty(t, registry.ExtractSkills("   \t\n  "))
}

func TestExtractSkills_CanonicalLabelsOnly(t *testing.T) {
	registry := DefaultRegistry()

	canonical := make(map[string]bool, len(CanonicalSkills))
	for _, s := range CanonicalSkills {
		canonical[s] = true
	}

	skills := registry.ExtractSkills(
		"Requires Python, MySQL, PowerBI and Amazon Web Services experience. " +
			"Knowledge of natural language processing is a plus.")
	require.NotEmpty(t, skills)

	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		assert.True(t, canonical[skill], "label %q not in canonical set", skill)
		assert.False(t, seen[skill], "label %q emitted twice", skill)
		seen[skill] = true
	}
}

func TestExtractSkills_SynonymNormalization(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "database variants collapse to sql",
			text: "Experience with PostgreSQL and MySQL administration",
			want: []string{"sql"},
		},
		{
			name: "k8s maps to kubernetes",
			text: "deploying workloads on k8s clusters",
			want: []string{"kubernetes"},
		},
		{
			name: "call center maps to customer service",
			text: "call center operations role",
			want: []string{"customer service"},
		},
		{
			name: "powerbi one word",
			text: "dashboards built in PowerBI",
			want: []string{"power bi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registry.ExtractSkills(tt.text))
		})
	}
}

func TestExtractSkills_PhrasePrecedence(t *testing.T) {
	registry := DefaultRegistry()

	// Text contains the phrase but none of its component words elsewhere;
	// the phrase's canonical label must be discovered first and no spurious
	// component-word label may appear.
	skills := registry.ExtractSkills("This test covers data warehousing concepts.")
	require.NotEmpty(t, skills)
	assert.Equal(t, "data warehousing", skills[0])
	assert.NotContains(t, skills, "data entry")
}

func TestExtractSkills_PhraseAndComponentCoOccur(t *testing.T) {
	registry := DefaultRegistry()

	// Component words that independently whole-word-match are legitimate
	// co-occurring tags; the phrase still wins discovery order.
	skills := registry.ExtractSkills("machine learning and deep learning with python")
	assert.Equal(t, []string{"machine learning", "deep learning", "python"}, skills)
}

func TestExtractSkills_DiscoveryOrder(t *testing.T) {
	registry := DefaultRegistry()

	// Registry order, not text order, determines output order: synonyms are
	// scanned before canonical singles.
	skills := registry.ExtractSkills("java and amazon cloud work")
	assert.Equal(t, []string{"aws", "java"}, skills)
}

func TestExtractSkills_Deterministic(t *testing.T) {
	registry := DefaultRegistry()
	text := "Python, SQL, leadership and communication for a devops role using Docker."

	first := registry.ExtractSkills(text)
	for range 10 {
		assert.Equal(t, first, registry.ExtractSkills(text))
	}
}
