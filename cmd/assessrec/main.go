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

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/assessrec"
	"github.com/poiesic/assessrec/ai"
	"github.com/poiesic/assessrec/ai/openai"
	"github.com/poiesic/assessrec/eval"
	"github.com/poiesic/assessrec/ingestion"
	"github.com/poiesic/assessrec/reembed"
	"github.com/poiesic/assessrec/server"
	"github.com/poiesic/assessrec/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "assessrec",
		Usage: "Assessment catalog recommendation engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Build the catalog from crawler CSV output",
				Action: buildCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to crawler CSV output",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for tagging",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of texts per embedding request",
						Value: 32,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Verify the stored catalog can be indexed",
				Action: reindexCommand,
				Flags:  databaseFlags(),
			},
			{
				Name:   "serve",
				Usage:  "Serve the recommendation API over HTTP",
				Action: serveCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
				),
			},
			{
				Name:      "query",
				Usage:     "Rank catalog items for a single query",
				ArgsUsage: "<query>",
				Action:    queryCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   10,
					},
				),
			},
			{
				Name:   "eval",
				Usage:  "Score the recommender against labeled queries",
				Action: evalCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "Path to labeled queries CSV",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Result depth for recall",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "submission",
						Usage: "Write ranked results to this CSV file",
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate embeddings for every catalog item",
				Action: reembedCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of items to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N items",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
	}
}

func aiConfig(c *cli.Context) (*ai.Config, error) {
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return cfg, nil
}

func openDatabase(c *cli.Context) (*assessrec.Database, error) {
	cfg, err := aiConfig(c)
	if err != nil {
		return nil, err
	}

	db, err := assessrec.NewDatabase(c.String("db"), assessrec.WithAIConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func buildCommand(c *cli.Context) error {
	ctx := context.Background()

	raws, err := ingestion.ReadItemsFile(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var pipelineOpts []ingestion.Option
	if c.IsSet("pool-size") {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(c.Int("pool-size")))
	}
	pipelineOpts = append(pipelineOpts, ingestion.WithBatchSize(c.Int("batch-size")))

	pipeline, err := db.NewPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	items, err := pipeline.Build(ctx, raws)
	if err != nil {
		return fmt.Errorf("catalog build failed: %w", err)
	}

	fmt.Printf("Built catalog with %d items from %d input rows\n", len(items), len(raws))
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	// The index lives in process memory, so this is a validation pass:
	// it proves every stored item carries a consistent vector. A running
	// server rebuilds via POST /reindex.
	if err := db.Reindex(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	snapshot := db.IndexHolder().Load()
	fmt.Printf("Index OK: %d items, %d dimensions\n", snapshot.Len(), snapshot.Dim())
	return nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An empty catalog is not fatal here: queries answer 503 until a
	// build and reindex happen.
	if err := db.Reindex(ctx); err != nil {
		slog.Warn("initial reindex failed, serving without an index", "err", err)
	}

	recommender, err := db.NewRecommender()
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	srv, err := server.NewServer(c.String("addr"), recommender, db)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}

func queryCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reindex(ctx); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	recommender, err := db.NewRecommender()
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	results, err := recommender.Recommend(ctx, query, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	for i, rec := range results {
		fmt.Printf("%2d. [%s] %s (%s) score=%.4f\n", i+1, rec.Label, rec.Name, rec.Category, rec.Score)
		fmt.Printf("    %s\n", rec.URL)
		if len(rec.Skills) > 0 {
			fmt.Printf("    skills: %s\n", strings.Join(rec.Skills, ", "))
		}
	}
	return nil
}

func evalCommand(c *cli.Context) error {
	ctx := context.Background()

	queriesFile, err := os.Open(c.String("queries"))
	if err != nil {
		return fmt.Errorf("failed to open queries file: %w", err)
	}
	defer queriesFile.Close()

	labeled, err := eval.ReadLabeledQueries(queriesFile)
	if err != nil {
		return fmt.Errorf("failed to read labeled queries: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reindex(ctx); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}

	recommender, err := db.NewRecommender()
	if err != nil {
		return fmt.Errorf("failed to create recommender: %w", err)
	}

	evaluator, err := eval.NewEvaluator(recommender)
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	k := c.Int("top-k")
	recall, err := evaluator.RecallAtK(ctx, labeled, k)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	fmt.Printf("Recall@%d: %.4f over %d queries\n", k, recall, len(labeled))

	if path := c.String("submission"); path != "" {
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create submission file: %w", err)
		}
		defer out.Close()

		queries := make([]string, len(labeled))
		for i, lq := range labeled {
			queries[i] = lq.Query
		}
		if err := evaluator.WriteSubmission(ctx, out, queries, k); err != nil {
			return fmt.Errorf("failed to write submission: %w", err)
		}
		fmt.Printf("Submission written to %s\n", path)
	}

	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	cfg, err := aiConfig(c)
	if err != nil {
		return err
	}

	embedder, err := openai.NewEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("re-embedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
