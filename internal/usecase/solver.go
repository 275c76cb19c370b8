package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
	"github.com/rocketscienceinc/squid-bingo/internal/parser"
)

type fileRepo interface {
	GetByID(ctx context.Context, fileID string) (string, error)
}

type resultCache interface {
	CreateOrUpdate(ctx context.Context, digest string, outcome *entity.Outcome) error
	GetByID(ctx context.Context, digest string) (*entity.Outcome, error)
}

type historyRepo interface {
	Create(ctx context.Context, record *entity.SolveRecord) error
	ListByFileID(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error)
}

type player interface {
	Play(data *entity.BingoData) *entity.Outcome
}

// Solver reads, parses and plays bingo files. The result cache and the history are optional.
type Solver struct {
	logger *slog.Logger
	files  fileRepo
	player player

	results    resultCache
	cacheScope string
	history    historyRepo

	now func() time.Time
}

type SolverOption func(*Solver)

func WithResultCache(results resultCache) SolverOption {
	return func(that *Solver) {
		that.results = results
	}
}

// WithCacheScope - separates cached outcomes of solvers that play the same content differently,
// e.g. with another mark policy.
func WithCacheScope(scope string) SolverOption {
	return func(that *Solver) {
		that.cacheScope = scope
	}
}

func WithHistory(history historyRepo) SolverOption {
	return func(that *Solver) {
		that.history = history
	}
}

func NewSolver(logger *slog.Logger, files fileRepo, player player, opts ...SolverOption) *Solver {
	solver := &Solver{
		logger: logger.With("component", "solver"),
		files:  files,
		player: player,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(solver)
	}

	return solver
}

// SolveFile - reads the bingo file by its id and solves it.
func (that *Solver) SolveFile(ctx context.Context, fileID string) (*entity.Outcome, error) {
	text, err := that.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to read bingo file: %w", err)
	}

	return that.SolveText(ctx, fileID, text)
}

// SolveText - solves the content of a bingo file. A cached outcome for the same content is returned as is.
func (that *Solver) SolveText(ctx context.Context, fileID, text string) (*entity.Outcome, error) {
	log := that.logger.With("method", "SolveText", "file_id", fileID)

	digest := Digest(text)

	cacheKey := that.cacheKey(digest)

	if outcome, ok := that.cached(ctx, log, cacheKey); ok {
		log.Debug("outcome found in cache", "digest", digest)
		return outcome, nil
	}

	data, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bingo file %s: %w", fileID, err)
	}

	outcome := that.player.Play(data)
	log.Info("bingo file solved", "cards", outcome.CardCount, "calls", outcome.CallCount, "winners", len(outcome.Winners))

	if that.results != nil {
		if err = that.results.CreateOrUpdate(ctx, cacheKey, outcome); err != nil {
			log.Error("failed to cache outcome", "error", err)
		}
	}

	if that.history != nil {
		record := &entity.SolveRecord{
			FileID:   fileID,
			Digest:   digest,
			Outcome:  *outcome,
			SolvedAt: that.now().UTC(),
		}

		if err = that.history.Create(ctx, record); err != nil {
			log.Error("failed to save solve record", "error", err)
		}
	}

	return outcome, nil
}

// History - returns the latest solves of a file, newest first.
func (that *Solver) History(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error) {
	if that.history == nil {
		return nil, apperror.ErrHistoryDisabled
	}

	records, err := that.history.ListByFileID(ctx, fileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solve history: %w", err)
	}

	return records, nil
}

func (that *Solver) cacheKey(digest string) string {
	if that.cacheScope == "" {
		return digest
	}

	return that.cacheScope + ":" + digest
}

func (that *Solver) cached(ctx context.Context, log *slog.Logger, key string) (*entity.Outcome, bool) {
	if that.results == nil {
		return nil, false
	}

	outcome, err := that.results.GetByID(ctx, key)
	if err != nil {
		if !errors.Is(err, apperror.ErrResultNotFound) {
			log.Error("failed to read cached outcome", "error", err)
		}

		return nil, false
	}

	return outcome, true
}

// Digest - returns the hex sha256 of a bingo file content.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
