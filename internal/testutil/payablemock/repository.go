package payablemock

import (
	"context"

	domain "accounts-payable-service/internal/domain/payable"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Payable) error
	GetByPayableIDFn   func(ctx context.Context, payableID string) (*domain.Payable, error)
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Payable, error)
	ListByPayableIDsFn func(ctx context.Context, payableIDs []string) ([]*domain.Payable, error)
	SaveFn             func(ctx context.Context, p *domain.Payable) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Payable) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPayableID(ctx context.Context, payableID string) (*domain.Payable, error) {
	if m.GetByPayableIDFn != nil {
		return m.GetByPayableIDFn(ctx, payableID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Payable, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByPayableIDs(ctx context.Context, payableIDs []string) ([]*domain.Payable, error) {
	if m.ListByPayableIDsFn != nil {
		return m.ListByPayableIDsFn(ctx, payableIDs)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Payable) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
