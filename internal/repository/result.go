package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

// ResultRepository caches outcomes by the digest of the bingo file content.
type ResultRepository interface {
	CreateOrUpdate(ctx context.Context, digest string, outcome *entity.Outcome) error
	GetByID(ctx context.Context, digest string) (*entity.Outcome, error)
	DeleteByID(ctx context.Context, digest string) error
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultRepository - ttl 0 keeps results without expiration.
func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

func resultKey(digest string) string {
	return "result:" + digest
}

func (that *dbResult) CreateOrUpdate(ctx context.Context, digest string, outcome *entity.Outcome) error {
	outcomeJSON, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("could not marshal outcome: %w", err)
	}

	if err = that.client.Set(ctx, resultKey(digest), outcomeJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set outcome: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, digest string) (*entity.Outcome, error) {
	response, err := that.client.Get(ctx, resultKey(digest)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get outcome: %w", err)
	}

	var outcome entity.Outcome
	if err = json.Unmarshal([]byte(response), &outcome); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	return &outcome, nil
}

func (that *dbResult) DeleteByID(ctx context.Context, digest string) error {
	deleted, err := that.client.Del(ctx, resultKey(digest)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete outcome: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrResultNotFound
	}

	return nil
}
