// Command ingest seeds the graph with the embedded demo dataset. Records are
// inserted individually with bounded concurrency; a failing record is logged
// and counted but never halts the batch, so ingestion is at-least-once unless
// --constraints is used to make re-runs fail loudly on duplicates.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/VladyslavHaiko/moviegraph/internal/config"
	"github.com/VladyslavHaiko/moviegraph/internal/dataset"
	"github.com/VladyslavHaiko/moviegraph/internal/graph"
	"github.com/VladyslavHaiko/moviegraph/internal/logging"
	"github.com/VladyslavHaiko/moviegraph/internal/repository"
)

var (
	workers     int
	constraints bool
)

func main() {
	root := &cobra.Command{
		Use:   "ingest",
		Short: "Seed the movie graph with the embedded demo dataset",
	}
	root.PersistentFlags().IntVar(&workers, "workers", 4, "number of concurrent insert workers")
	root.PersistentFlags().BoolVar(&constraints, "constraints", false, "create uniqueness constraints before inserting")

	root.AddCommand(
		&cobra.Command{
			Use:   "genres",
			Short: "Insert the seed genres",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), ingestGenres)
			},
		},
		&cobra.Command{
			Use:   "movies",
			Short: "Insert the seed movies",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), ingestMovies)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Insert the full seed dataset",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), func(ctx context.Context, logger *slog.Logger, repo *repository.Repository) error {
					if err := ingestGenres(ctx, logger, repo); err != nil {
						return err
					}
					return ingestMovies(ctx, logger, repo)
				})
			},
		},
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, fn func(context.Context, *slog.Logger, *repository.Repository) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Logging).With("component", "ingest")

	if cfg.Graph.URI == "" {
		return graph.ErrMissingURI
	}

	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		return fmt.Errorf("create graph client: %w", err)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(client)

	if constraints {
		if err := repo.EnsureConstraints(ctx); err != nil {
			return fmt.Errorf("ensure constraints: %w", err)
		}
		logger.Info("uniqueness constraints ensured")
	}

	return fn(ctx, logger, repo)
}

func ingestGenres(ctx context.Context, logger *slog.Logger, repo *repository.Repository) error {
	var failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit())
	for _, genre := range dataset.Genres {
		g.Go(func() error {
			if err := repo.CreateGenre(ctx, genre.Name); err != nil {
				logger.Error("genre insert failed", "genre", genre.Name, "error", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("genre ingestion finished",
		"attempted", len(dataset.Genres),
		"failed", failed.Load(),
	)
	return nil
}

func ingestMovies(ctx context.Context, logger *slog.Logger, repo *repository.Repository) error {
	var failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit())
	for _, movie := range dataset.Movies {
		g.Go(func() error {
			if err := repo.CreateMovie(ctx, movie); err != nil {
				logger.Error("movie insert failed", "title", movie.Title, "error", err)
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("movie ingestion finished",
		"attempted", len(dataset.Movies),
		"failed", failed.Load(),
	)
	return nil
}

func workerLimit() int {
	if workers <= 0 {
		return 1
	}
	return workers
}
