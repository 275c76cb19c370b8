package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/squid-bingo/internal/bingo"
	"github.com/rocketscienceinc/squid-bingo/internal/config"
	"github.com/rocketscienceinc/squid-bingo/internal/fixture"
	"github.com/rocketscienceinc/squid-bingo/internal/report"
	"github.com/rocketscienceinc/squid-bingo/internal/repository"
	"github.com/rocketscienceinc/squid-bingo/internal/repository/storage"
	"github.com/rocketscienceinc/squid-bingo/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/squid-bingo/internal/simulation"
	"github.com/rocketscienceinc/squid-bingo/internal/usecase"
	"github.com/rocketscienceinc/squid-bingo/transport/rest"
)

// RunApp - solves one bingo file and writes the report to out. An empty fileID uses the configured one.
func RunApp(logger *slog.Logger, conf *config.Config, fileID string, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if fileID == "" {
		fileID = conf.FileID
	}

	solver, closeFn, err := newSolver(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeFn()

	outcome, err := solver.SolveFile(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to solve %s: %w", fileID, err)
	}

	if err = report.Render(out, fileID, outcome); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}

// RunServer - serves the HTTP API until SIGINT or SIGTERM.
func RunServer(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	solver, closeFn, err := newSolver(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeFn()

	server := rest.New(logger, conf.HTTPPort, rest.NewHandlers(logger, solver))

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.Start(groupCtx)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunGenerator - writes random bingo files into the bingo dir. Without fileIDs the configured files are generated.
func RunGenerator(logger *slog.Logger, conf *config.Config, fileIDs []string) error {
	if len(fileIDs) == 0 {
		fileIDs = conf.Generator.Files
	}

	generator := usecase.NewGenerator(
		logger,
		repository.NewBingoFileRepository(conf.BingoDir),
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		fixture.Options{
			CardSize:      conf.Generator.CardSize,
			NumberOfCalls: conf.Generator.NumberOfCalls,
			NumberOfCards: conf.Generator.NumberOfCards,
		},
	)

	if err := generator.Generate(context.Background(), fileIDs); err != nil {
		return fmt.Errorf("failed to generate bingo files: %w", err)
	}

	return nil
}

// newSolver - wires the solver with the optional redis cache and sqlite history.
// The returned function closes every opened connection.
func newSolver(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.Solver, func(), error) {
	log := logger.With("component", "app")

	policy, err := bingo.ParseMarkPolicy(conf.Simulation.MarkPolicy)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	driver := simulation.New(logger,
		simulation.WithMarkPolicy(policy),
		simulation.WithWorkers(conf.Simulation.Workers),
	)

	var (
		opts    []usecase.SolverOption
		closers []io.Closer
	)

	closeAll := func() {
		for _, closer := range closers {
			if err := closer.Close(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}
	}

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closers = append(closers, redisStorage)
		opts = append(opts,
			usecase.WithResultCache(repository.NewResultRepository(redisStorage.Connection, conf.Redis.TTL)),
			usecase.WithCacheScope(string(policy)),
		)
	}

	if conf.SQLiteStoragePath != "" {
		sqliteStorage, err := sqlite.New(conf.SQLiteStoragePath)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		closers = append(closers, sqliteStorage)

		if err = sqliteStorage.Init(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		opts = append(opts, usecase.WithHistory(repository.NewHistoryRepository(sqliteStorage.Connection)))
	}

	files := repository.NewBingoFileRepository(conf.BingoDir)

	return usecase.NewSolver(logger, files, driver, opts...), closeAll, nil
}
