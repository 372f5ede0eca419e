package uow

import (
	"context"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
)

type Repos struct {
	Payables  payable.Repository
	Approvals approval.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the step row first, then pass it in. The lock is
	// what makes the check-then-set status guards safe against a decision
	// and an escalation sweep racing on the same step.
	WithinStepTx(ctx context.Context, stepID string, fn func(r Repos, s *approval.Step) error) error
}
