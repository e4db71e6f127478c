package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/core"
	"github.com/poiesic/assessrec/storage"
	"github.com/poiesic/assessrec/tagging"
)

// Pipeline orchestrates a catalog build from crawled pages.
// Tagging and classification run concurrently on a worker pool; embedding
// runs in batches afterwards so the embedder sees full batches.
type Pipeline struct {
	catalogRepository storage.CatalogRepository
	registry          *tagging.Registry
	classifier        *tagging.Classifier
	embedder          ai.Embedder
	taggingPool       *ants.Pool
	batchSize         int
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent tagging.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.taggingPool != nil {
			p.taggingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.taggingPool = pool
		return nil
	}
}

// WithBatchSize sets how many texts are sent to the embedder per call.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalog build pipeline.
func NewPipeline(
	catalogRepository storage.CatalogRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if catalogRepository == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		catalogRepository: catalogRepository,
		registry:          tagging.DefaultRegistry(),
		classifier:        tagging.DefaultClassifier(),
		embedder:          provider.Embedder(),
		taggingPool:       pool,
		batchSize:         32,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Build turns raw crawler rows into stored catalog items and returns them
// in label order. Duplicate URLs are dropped, keeping the first occurrence.
func (p *Pipeline) Build(ctx context.Context, raws []RawItem) ([]*core.CatalogItem, error) {
	deduped := dedupeByURL(raws)
	if len(deduped) == 0 {
		return nil, ErrNoItems
	}
	if dropped := len(raws) - len(deduped); dropped > 0 {
		p.logger.Info("dropped duplicate or empty rows", "dropped", dropped)
	}

	// Tag and classify concurrently; each worker writes its own slot so
	// label assignment stays in input order.
	items := make([]*core.CatalogItem, len(deduped))
	var wg sync.WaitGroup
	for i := range deduped {
		wg.Add(1)
		i := i
		err := p.taggingPool.Submit(func() {
			defer wg.Done()
			items[i] = p.buildItem(i+1, &deduped[i])
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()

	if err := p.embedItems(ctx, items); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := core.ValidateCatalogItem(item); err != nil {
			return nil, fmt.Errorf("item %s: %w", item.Label, err)
		}
	}

	added, err := p.catalogRepository.AddItems(ctx, items...)
	if err != nil {
		return nil, err
	}

	p.logger.Info("catalog build complete", "items", len(added))
	return added, nil
}

// buildItem assembles one catalog item without its embedding.
// Classification reads only the canonical text, so title and meta chrome
// cannot vote for a category; skill scanning covers every field.
func (p *Pipeline) buildItem(position int, raw *RawItem) *core.CatalogItem {
	name := InferName(raw.Title, raw.URL())
	canonicalText := raw.CanonicalText()

	return &core.CatalogItem{
		Id:       core.IDFromContent(raw.URL() + "|" + name),
		Label:    fmt.Sprintf("A%04d", position),
		Name:     name,
		URL:      raw.URL(),
		Category: p.classifier.Classify(canonicalText),
		Skills:   p.registry.ExtractSkills(raw.SkillText()),
		Text:     canonicalText,
	}
}

// embedItems generates embeddings for all items in batches.
func (p *Pipeline) embedItems(ctx context.Context, items []*core.CatalogItem) error {
	for start := 0; start < len(items); start += p.batchSize {
		end := start + p.batchSize
		if end > len(items) {
			end = len(items)
		}

		texts := make([]string, end-start)
		for i, item := range items[start:end] {
			texts[i] = item.Text
		}

		p.logger.Debug("generating embeddings for catalog items", "batch", len(texts))
		embeddings, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			p.logger.Error("error generating embeddings", "err", err)
			return err
		}
		if len(embeddings) != len(texts) {
			return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(texts), len(embeddings))
		}

		for i := range embeddings {
			items[start+i].Vector = embeddings[i]
		}
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.taggingPool != nil {
		p.taggingPool.Release()
	}
}
