package approval

import (
	"context"
	"errors"
	"time"
)

var (
	ErrStepNotFound  = errors.New("approval step not found")
	ErrNotAuthorized = errors.New("user not assigned to this approval step")
	// ErrConflict is returned when a transition races with one that already
	// decided or escalated the step. The loser must surface this, never merge.
	ErrConflict = errors.New("approval step already transitioned")
)

type Repository interface {
	// CreateBatch persists a freshly built workflow in one go.
	CreateBatch(ctx context.Context, steps []*Step) error

	// Get by public step_id
	GetByStepID(ctx context.Context, stepID string) (*Step, error)

	// ListByPayable returns every step for a payable ordered by sequence.
	// Step advancement is always re-derived from this list.
	ListByPayable(ctx context.Context, payableNumericID uint64) ([]*Step, error)

	// ListPendingOlderThan returns escalation candidates: still PENDING,
	// created before the threshold, escalation date unset.
	ListPendingOlderThan(ctx context.Context, threshold time.Time) ([]*Step, error)

	Save(ctx context.Context, s *Step) error
}
