// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package assessrec

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/ai/openai"
	"github.com/poiesic/assessrec/index"
	"github.com/poiesic/assessrec/ingestion"
	"github.com/poiesic/assessrec/reembed"
	"github.com/poiesic/assessrec/search"
	"github.com/poiesic/assessrec/storage"
	"github.com/poiesic/assessrec/storage/badger"
)

// Database bundles the catalog store, the embedding provider and the
// in-memory index behind one handle.
type Database struct {
	backend     *badger.Backend
	catalogRepo storage.CatalogRepository
	provider    ai.AIProvider
	holder      *index.Holder
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider supplies a pre-built AI provider instead of constructing
// one from configuration. Used by tests to inject mocks.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps the catalog store in memory instead of on disk.
func WithInMemoryStorage() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create catalog repository
	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			catalogRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:     backend,
		catalogRepo: catalogRepo,
		provider:    provider,
		holder:      index.NewHolder(),
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	if err := db.catalogRepo.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalogRepo
}

// IndexHolder exposes the current index snapshot holder.
func (db *Database) IndexHolder() *index.Holder {
	return db.holder
}

// Reindex rebuilds the in-memory index from stored catalog items and
// atomically publishes the new snapshot. In-flight queries keep the old
// snapshot until they finish.
func (db *Database) Reindex(ctx context.Context) error {
	items, err := db.catalogRepo.ListItems(ctx)
	if err != nil {
		return err
	}

	snapshot, err := index.NewSnapshot(items)
	if err != nil {
		return err
	}

	db.holder.Swap(snapshot)
	db.logger.Info("index rebuilt", "items", snapshot.Len(), "dimensions", snapshot.Dim())
	return nil
}

func (db *Database) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.catalogRepo, db.provider, opts...)
}

func (db *Database) NewRecommender(opts ...search.Option) (*search.Recommender, error) {
	return search.NewRecommender(db.holder, db.provider, opts...)
}

func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.catalogRepo, db.provider.Embedder(), config, progress)
}
