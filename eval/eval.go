package eval

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/poiesic/assessrec/core"
)

// Recommender ranks catalog items for a free-text query.
type Recommender interface {
	Recommend(ctx context.Context, query string, topK int) ([]*core.Recommendation, error)
}

// LabeledQuery pairs a query with the catalog URLs judged relevant to it.
type LabeledQuery struct {
	Query        string
	RelevantURLs []string
}

// Evaluator scores a recommender against labeled queries.
type Evaluator struct {
	recommender Recommender
	logger      *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEvaluator creates a new evaluator.
func NewEvaluator(recommender Recommender, opts ...Option) (*Evaluator, error) {
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}

	e := &Evaluator{
		recommender: recommender,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// RecallAtK returns mean recall over the labeled queries: for each query,
// the fraction of its relevant URLs found in the top k results. Queries
// without relevance judgements are skipped.
func (e *Evaluator) RecallAtK(ctx context.Context, queries []LabeledQuery, k int) (float64, error) {
	var total float64
	scored := 0

	for _, lq := range queries {
		relevant := slugSet(lq.RelevantURLs)
		if len(relevant) == 0 {
			continue
		}

		results, err := e.recommender.Recommend(ctx, lq.Query, k)
		if err != nil {
			e.logger.Error("evaluation query failed", "query", lq.Query, "err", err)
			return 0, err
		}

		hits := 0
		for _, rec := range results {
			if relevant[Slug(rec.URL)] {
				hits++
			}
		}

		recall := float64(hits) / float64(len(relevant))
		e.logger.Debug("query scored", "query", lq.Query, "recall", recall)
		total += recall
		scored++
	}

	if scored == 0 {
		return 0, ErrNoQueries
	}
	return total / float64(scored), nil
}

// Slug reduces a catalog URL to its last path segment, lowercased, so
// different hosts or schemes pointing at the same page compare equal.
// Inputs that do not parse as URLs are lowercased whole.
func Slug(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	parsed, err := url.Parse(lowered)
	if err != nil {
		return lowered
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return lowered
	}
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}

func slugSet(urls []string) map[string]bool {
	set := make(map[string]bool, len(urls))
	for _, u := range urls {
		if slug := Slug(u); slug != "" {
			set[slug] = true
		}
	}
	return set
}
