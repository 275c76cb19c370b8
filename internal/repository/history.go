package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

const defaultHistoryLimit = 20

// HistoryRepository is an append-only log of solved bingo files.
type HistoryRepository interface {
	Create(ctx context.Context, record *entity.SolveRecord) error
	ListByFileID(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error)
}

type dbHistory struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &dbHistory{
		db: db,
	}
}

func (that *dbHistory) Create(ctx context.Context, record *entity.SolveRecord) error {
	outcomeJSON, err := json.Marshal(record.Outcome)
	if err != nil {
		return fmt.Errorf("could not marshal outcome: %w", err)
	}

	_, err = that.db.ExecContext(ctx,
		`INSERT INTO solves (file_id, digest, outcome, solved_at) VALUES (?, ?, ?, ?)`,
		record.FileID, record.Digest, string(outcomeJSON), record.SolvedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert solve record: %w", err)
	}

	return nil
}

// ListByFileID - returns the latest records of a file, newest first. limit <= 0 uses the default.
func (that *dbHistory) ListByFileID(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	rows, err := that.db.QueryContext(ctx,
		`SELECT file_id, digest, outcome, solved_at FROM solves
		WHERE file_id = ?
		ORDER BY solved_at DESC, id DESC
		LIMIT ?`,
		fileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query solve records: %w", err)
	}
	defer rows.Close()

	records := make([]entity.SolveRecord, 0, limit)
	for rows.Next() {
		var (
			record      entity.SolveRecord
			outcomeJSON string
			solvedAt    int64
		)

		if err = rows.Scan(&record.FileID, &record.Digest, &outcomeJSON, &solvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan solve record: %w", err)
		}

		if err = json.Unmarshal([]byte(outcomeJSON), &record.Outcome); err != nil {
			return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
		}

		record.SolvedAt = time.UnixMilli(solvedAt).UTC()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read solve records: %w", err)
	}

	return records, nil
}
