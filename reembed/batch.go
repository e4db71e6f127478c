package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/index"
	"github.com/poiesic/assessrec/storage"
)

// BatchProcessor re-embeds batches of catalog items.
type BatchProcessor struct {
	repo           storage.CatalogRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
func NewBatchProcessor(repo storage.CatalogRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds the canonical text of each item and writes the updated
// vectors back to storage. Vectors are L2-normalized so cosine distance
// stays well conditioned.
func (bp *BatchProcessor) Process(ctx context.Context, items []*core.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(items) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(items), len(embeddings))
	}

	for i := range items {
		items[i].Vector = index.NormalizeL2(embeddings[i])
	}

	if _, err := bp.repo.UpdateItems(ctx, items...); err != nil {
		return fmt.Errorf("failed to update items: %w", err)
	}

	return nil
}
