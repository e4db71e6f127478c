package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/assessrec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRecommender struct {
	results map[string][]*core.Recommendation
	err     error
}

func (s *stubRecommender) Recommend(ctx context.Context, query string, topK int) ([]*core.Recommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	results := s.results[query]
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func rec(label, url string) *core.Recommendation {
	return &core.Recommendation{
		Label:    label,
		Name:     label,
		URL:      url,
		Category: core.CategorySkills,
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain url", "https://example.com/view/java-test", "java-test"},
		{"trailing slash", "https://example.com/view/java-test/", "java-test"},
		{"host variant", "https://www.example.co.uk/solutions/view/java-test", "java-test"},
		{"uppercase", "https://example.com/view/Java-Test", "java-test"},
		{"bare host", "https://example.com/", "https://example.com/"},
		{"not a url", "java-test", "java-test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.url))
		})
	}
}

func TestRecallAtK(t *testing.T) {
	recommender := &stubRecommender{
		results: map[string][]*core.Recommendation{
			"java developer": {
				rec("A0001", "https://example.com/view/java-test"),
				rec("A0002", "https://example.com/view/verbal-reasoning"),
			},
			"sales manager": {
				rec("A0003", "https://example.com/view/sales-assessment"),
			},
		},
	}

	evaluator, err := NewEvaluator(recommender)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("perfect recall", func(t *testing.T) {
		queries := []LabeledQuery{
			{Query: "java developer", RelevantURLs: []string{"https://example.com/view/java-test"}},
		}
		recall, err := evaluator.RecallAtK(ctx, queries, 5)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, recall, 1e-9)
	})

	t.Run("partial recall averaged over queries", func(t *testing.T) {
		queries := []LabeledQuery{
			// 1 of 2 relevant found.
			{Query: "java developer", RelevantURLs: []string{
				"https://example.com/view/java-test",
				"https://example.com/view/python-test",
			}},
			// 1 of 1 relevant found.
			{Query: "sales manager", RelevantURLs: []string{"https://example.com/view/sales-assessment"}},
		}
		recall, err := evaluator.RecallAtK(ctx, queries, 5)
		require.NoError(t, err)
		assert.InDelta(t, 0.75, recall, 1e-9)
	})

	t.Run("matches across host variants", func(t *testing.T) {
		queries := []LabeledQuery{
			{Query: "java developer", RelevantURLs: []string{"https://www.example.co.uk/catalog/view/java-test/"}},
		}
		recall, err := evaluator.RecallAtK(ctx, queries, 5)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, recall, 1e-9)
	})

	t.Run("skips queries without judgements", func(t *testing.T) {
		queries := []LabeledQuery{
			{Query: "java developer", RelevantURLs: []string{"https://example.com/view/java-test"}},
			{Query: "unlabeled"},
		}
		recall, err := evaluator.RecallAtK(ctx, queries, 5)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, recall, 1e-9)
	})

	t.Run("no usable queries", func(t *testing.T) {
		_, err := evaluator.RecallAtK(ctx, []LabeledQuery{{Query: "unlabeled"}}, 5)
		assert.ErrorIs(t, err, ErrNoQueries)
	})

	t.Run("recommender failure propagates", func(t *testing.T) {
		failing, err := NewEvaluator(&stubRecommender{err: errors.New("boom")})
		require.NoError(t, err)

		queries := []LabeledQuery{
			{Query: "java developer", RelevantURLs: []string{"https://example.com/view/java-test"}},
		}
		_, err = failing.RecallAtK(ctx, queries, 5)
		assert.Error(t, err)
	})
}

func TestNewEvaluator_RequiresRecommender(t *testing.T) {
	_, err := NewEvaluator(nil)
	assert.ErrorIs(t, err, ErrRecommenderRequired)
}
