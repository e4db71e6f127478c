package eval

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLabeledQueries(t *testing.T) {
	csvData := `query,relevant_urls
java developer,https://example.com/view/java-test https://example.com/view/coding-test
sales manager,https://example.com/view/sales-assessment
unlabeled,
`

	queries, err := ReadLabeledQueries(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, queries, 3)

	assert.Equal(t, "java developer", queries[0].Query)
	assert.Len(t, queries[0].RelevantURLs, 2)
	assert.Len(t, queries[1].RelevantURLs, 1)
	assert.Empty(t, queries[2].RelevantURLs)
}

func TestReadLabeledQueries_MissingQueryColumn(t *testing.T) {
	_, err := ReadLabeledQueries(strings.NewReader("relevant_urls\nhttps://example.com/a\n"))
	assert.ErrorContains(t, err, "query")
}

func TestWriteSubmission(t *testing.T) {
	recommender := &stubRecommender{
		results: map[string][]*core.Recommendation{
			"java developer": {
				{
					Label:    "A0001",
					Name:     "Java Programming Test",
					URL:      "https://example.com/view/java-test",
					Category: core.CategorySkills,
					Skills:   []string{"java", "sql"},
					Score:    1.25,
				},
				{
					Label:    "A0002",
					Name:     "Verbal Reasoning",
					URL:      "https://example.com/view/verbal-reasoning",
					Category: core.CategoryAbility,
					Score:    0.9,
				},
			},
		},
	}

	evaluator, err := NewEvaluator(recommender)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = evaluator.WriteSubmission(context.Background(), &buf, []string{"java developer"}, 5)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"query", "rank", "assessment_id", "assessment_name", "canonical_url", "test_type", "skills_tags", "score"}, rows[0])
	assert.Equal(t, "java developer", rows[1][0])
	assert.Equal(t, "1", rows[1][1])
	assert.Equal(t, "A0001", rows[1][2])
	assert.Equal(t, "java,sql", rows[1][6])
	assert.Equal(t, "2", rows[2][1])
	assert.Equal(t, "A0002", rows[2][2])
}
