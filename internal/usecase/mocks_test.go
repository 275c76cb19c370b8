package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/squid-bingo/internal/entity"
)

type mockFileRepo struct {
	mock.Mock
}

func (that *mockFileRepo) GetByID(ctx context.Context, fileID string) (string, error) {
	args := that.Called(ctx, fileID)
	return args.String(0), args.Error(1)
}

func (that *mockFileRepo) Save(ctx context.Context, fileID, content string) error {
	return that.Called(ctx, fileID, content).Error(0)
}

type mockResultCache struct {
	mock.Mock
}

func (that *mockResultCache) CreateOrUpdate(ctx context.Context, digest string, outcome *entity.Outcome) error {
	return that.Called(ctx, digest, outcome).Error(0)
}

func (that *mockResultCache) GetByID(ctx context.Context, digest string) (*entity.Outcome, error) {
	args := that.Called(ctx, digest)
	outcome, _ := args.Get(0).(*entity.Outcome)
	return outcome, args.Error(1)
}

type mockHistoryRepo struct {
	mock.Mock
}

func (that *mockHistoryRepo) Create(ctx context.Context, record *entity.SolveRecord) error {
	return that.Called(ctx, record).Error(0)
}

func (that *mockHistoryRepo) ListByFileID(ctx context.Context, fileID string, limit int) ([]entity.SolveRecord, error) {
	args := that.Called(ctx, fileID, limit)
	records, _ := args.Get(0).([]entity.SolveRecord)
	return records, args.Error(1)
}
