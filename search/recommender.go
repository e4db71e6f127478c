package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/index"
)

const (
	defaultTopK        = 10
	defaultBoostWeight = 0.25

	// Similarity values beyond this magnitude indicate a corrupt vector
	// and are zeroed rather than propagated into the ranking.
	maxSaneScore = 1e6
)

// Recommender ranks catalog items for a free-text query by combining
// embedding similarity with a lexical term boost.
type Recommender struct {
	holder      *index.Holder
	embedder    ai.Embedder
	boostWeight float64
	logger      *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithBoostWeight sets the score added per matching lexical term.
// Default is 0.25.
func WithBoostWeight(weight float64) Option {
	return func(r *Recommender) error {
		if weight < 0 {
			return fmt.Errorf("boost weight must be non-negative, got %f", weight)
		}
		r.boostWeight = weight
		return nil
	}
}

// NewRecommender creates a new recommender.
func NewRecommender(holder *index.Holder, provider ai.AIProvider, opts ...Option) (*Recommender, error) {
	if holder == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Recommender{
		holder:      holder,
		embedder:    provider.Embedder(),
		boostWeight: defaultBoostWeight,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Recommend returns up to topK catalog items ranked by relevance to the
// query. A non-positive topK defaults to 10.
func (r *Recommender) Recommend(ctx context.Context, query string, topK int) ([]*core.Recommendation, error) {
	return r.RecommendWithMonitor(ctx, query, topK, nil)
}

// RecommendWithMonitor ranks catalog items for the query with monitoring.
// The monitor receives callbacks at each stage of the ranking process.
func (r *Recommender) RecommendWithMonitor(ctx context.Context, query string, topK int, monitor QueryMonitor) ([]*core.Recommendation, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	monitor.Start(query)

	snapshot := r.holder.Load()
	if snapshot == nil || snapshot.Len() == 0 {
		return nil, ErrRetrievalUnavailable
	}

	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrRetrievalUnavailable, err)
	}

	// Retrieve more candidates than requested so the lexical boost can
	// promote items from beyond the initial topK cut.
	neighbors, err := snapshot.Nearest(embedding, topK)
	if err != nil {
		r.logger.Error("error querying index", "err", err)
		return nil, err
	}

	rows := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		rows = append(rows, n.Row)
	}
	monitor.AfterRetrieval(rows)

	terms := desiredTerms(query)

	results := make([]*core.Recommendation, 0, len(neighbors))
	for _, neighbor := range neighbors {
		item := snapshot.Item(neighbor.Row)
		if item == nil {
			r.logger.Debug("index returned out-of-range row", "row", neighbor.Row)
			continue
		}

		score := safeScore(1.0 - neighbor.Distance)

		if matches := countTermMatches(item.Text, terms); matches > 0 {
			boost := r.boostWeight * float64(matches)
			score += boost
			monitor.BoostApplied(item.Label, matches, boost)
		}

		results = append(results, &core.Recommendation{
			Label:    item.Label,
			Name:     item.Name,
			URL:      item.URL,
			Category: item.Category,
			Skills:   item.Skills,
			Score:    score,
		})
	}

	// Boosting can reorder candidates, so re-sort the whole slate before
	// truncating.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	monitor.Finish(results)

	return results, nil
}

// safeScore clamps non-finite or absurdly large similarity values to zero.
func safeScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxSaneScore {
		return 0.0
	}
	return v
}
