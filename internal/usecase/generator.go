package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/rocketscienceinc/squid-bingo/internal/fixture"
)

type fileWriter interface {
	Save(ctx context.Context, fileID, content string) error
}

// Generator writes random bingo files for testing the solver.
type Generator struct {
	logger *slog.Logger
	files  fileWriter
	rng    *rand.Rand
	opts   fixture.Options
}

func NewGenerator(logger *slog.Logger, files fileWriter, rng *rand.Rand, opts fixture.Options) *Generator {
	return &Generator{
		logger: logger.With("component", "generator"),
		files:  files,
		rng:    rng,
		opts:   opts,
	}
}

// Generate - creates one bingo file per id.
func (that *Generator) Generate(ctx context.Context, fileIDs []string) error {
	for _, fileID := range fileIDs {
		data, err := fixture.Generate(that.rng, that.opts)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", fileID, err)
		}

		if err = that.files.Save(ctx, fileID, fixture.Render(data)); err != nil {
			return fmt.Errorf("failed to save %s: %w", fileID, err)
		}

		that.logger.Info("bingo file created", "file_id", fileID)
	}

	return nil
}
