package approvalmock

import (
	"context"
	"time"

	domain "accounts-payable-service/internal/domain/approval"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateBatchFn          func(ctx context.Context, steps []*domain.Step) error
	GetByStepIDFn          func(ctx context.Context, stepID string) (*domain.Step, error)
	ListByPayableFn        func(ctx context.Context, payableNumericID uint64) ([]*domain.Step, error)
	ListPendingOlderThanFn func(ctx context.Context, threshold time.Time) ([]*domain.Step, error)
	SaveFn                 func(ctx context.Context, s *domain.Step) error
}

func (m *Repo) CreateBatch(ctx context.Context, steps []*domain.Step) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, steps)
	}
	return nil
}

func (m *Repo) GetByStepID(ctx context.Context, stepID string) (*domain.Step, error) {
	if m.GetByStepIDFn != nil {
		return m.GetByStepIDFn(ctx, stepID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByPayable(ctx context.Context, payableNumericID uint64) ([]*domain.Step, error) {
	if m.ListByPayableFn != nil {
		return m.ListByPayableFn(ctx, payableNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListPendingOlderThan(ctx context.Context, threshold time.Time) ([]*domain.Step, error) {
	if m.ListPendingOlderThanFn != nil {
		return m.ListPendingOlderThanFn(ctx, threshold)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, s *domain.Step) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
