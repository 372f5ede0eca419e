package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
	"accounts-payable-service/internal/domain/uow"
)

// Engine runs the multi-level approval state machine. All status
// transitions happen inside a locked transaction (check-then-set);
// notifications fire after commit and are never allowed to fail a
// transition.
type Engine struct {
	payables  payable.Repository
	approvals approval.Repository
	uow       uow.UnitOfWork
	dir       Directory
	risk      RiskSource
	notifier  Notifier
	log       zerolog.Logger

	now func() time.Time
}

func NewEngine(
	payables payable.Repository,
	approvals approval.Repository,
	tx uow.UnitOfWork,
	dir Directory,
	risk RiskSource,
	notifier Notifier,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		payables:  payables,
		approvals: approvals,
		uow:       tx,
		dir:       dir,
		risk:      risk,
		notifier:  notifier,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateWorkflow resolves the required approval level for a payable,
// builds and persists the step chain, and notifies the first approver.
// An AUTOMATIC resolution creates no steps and approves the payable
// immediately.
func (e *Engine) CreateWorkflow(ctx context.Context, payableID string) ([]StepDTO, error) {
	var (
		created []*approval.Step
		pay     *payable.Payable
	)

	err := e.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payables.GetByPayableID(ctx, payableID)
		if err != nil {
			return payable.ErrNotFound
		}
		if p.AmountDue.LessThanOrEqual(decimal.Zero) {
			return payable.ErrInvalidAmount
		}
		if p.SupplierID == 0 || !p.Category.Valid() {
			return ErrMissingContext
		}

		existing, err := r.Approvals.ListByPayable(ctx, p.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: %s", ErrWorkflowExists, payableID)
		}

		level := ResolveLevel(p.AmountDue, p.Category, e.risk.RiskFor(p.SupplierID), p.EffectivePriority())

		steps, err := BuildSteps(e.dir, p.ID, level)
		if err != nil {
			return err
		}

		if len(steps) == 0 {
			// Small amount, low scrutiny: approved without human review.
			p.Status = payable.StatusApproved
			pay = p
			return r.Payables.Save(ctx, p)
		}

		// Only the current step gets a notification; later steps stay
		// silent until the chain reaches them.
		steps[0].NotificationSent = true

		if err := r.Approvals.CreateBatch(ctx, steps); err != nil {
			return err
		}
		p.Status = payable.StatusInApproval
		if err := r.Payables.Save(ctx, p); err != nil {
			return err
		}
		created, pay = steps, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(created) > 0 {
		e.notifier.ApprovalRequested(ctx, created[0], pay)
	}
	e.log.Info().
		Str("payable_id", payableID).
		Int("steps", len(created)).
		Msg("approval workflow created")

	return toStepDTOs(created), nil
}

// Decide records an approve/reject decision on a step. The approver must
// match the step's assignment; deciding an already-terminal step is a
// conflict, not an overwrite.
func (e *Engine) Decide(ctx context.Context, in DecideInput) (*StepDTO, error) {
	var (
		decided   *approval.Step
		nextStep  *approval.Step
		pay       *payable.Payable
		completed bool
		rejectMsg string
	)

	err := e.uow.WithinStepTx(ctx, in.StepID, func(r uow.Repos, s *approval.Step) error {
		if s.ApproverUserID != in.ApproverUserID {
			return approval.ErrNotAuthorized
		}
		now := e.now()

		p, err := r.Payables.GetByID(ctx, s.PayableID)
		if err != nil {
			return err
		}

		// A rejection terminates the whole workflow. Steps that were
		// ESCALATED at that moment are not PENDING and so were never
		// skipped; without this guard a late approval on one of them
		// would revive a rejected payable.
		priorSteps, err := r.Approvals.ListByPayable(ctx, s.PayableID)
		if err != nil {
			return err
		}
		for _, sib := range priorSteps {
			if sib.Status == approval.StatusRejected {
				return fmt.Errorf("%w: workflow already rejected for payable %s", approval.ErrConflict, p.PayableID)
			}
		}

		if in.Approve {
			if err := approval.Approve(s, now, in.Comments); err != nil {
				return err
			}
			if err := r.Approvals.Save(ctx, s); err != nil {
				return err
			}

			// Re-derive the next pending step from the full ordered list;
			// never increment a counter.
			siblings, err := r.Approvals.ListByPayable(ctx, s.PayableID)
			if err != nil {
				return err
			}
			var next *approval.Step
			for _, sib := range siblings {
				if sib.Status == approval.StatusPending {
					next = sib
					break
				}
			}

			if next == nil {
				completed = true
				p.Status = payable.StatusApproved
				if err := r.Payables.Save(ctx, p); err != nil {
					return err
				}
			} else if !next.NotificationSent {
				next.NotificationSent = true
				if err := r.Approvals.Save(ctx, next); err != nil {
					return err
				}
				nextStep = next
			}
		} else {
			if err := approval.Reject(s, now, in.Comments); err != nil {
				return err
			}
			if err := r.Approvals.Save(ctx, s); err != nil {
				return err
			}

			rejectMsg = "Rejected at " + string(s.Level)
			siblings, err := r.Approvals.ListByPayable(ctx, s.PayableID)
			if err != nil {
				return err
			}
			for _, sib := range siblings {
				if sib.Status != approval.StatusPending {
					continue
				}
				if err := approval.Skip(sib, rejectMsg); err != nil {
					return err
				}
				if err := r.Approvals.Save(ctx, sib); err != nil {
					return err
				}
			}
			p.Status = payable.StatusRejected
			if err := r.Payables.Save(ctx, p); err != nil {
				return err
			}
		}

		decided, pay = s, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case completed:
		e.notifier.ApprovalCompleted(ctx, pay)
	case rejectMsg != "":
		e.notifier.ApprovalRejected(ctx, pay, rejectMsg)
	case nextStep != nil:
		e.notifier.ApprovalRequested(ctx, nextStep, pay)
	}

	e.log.Info().
		Str("step_id", in.StepID).
		Int64("approver", in.ApproverUserID).
		Bool("approved", in.Approve).
		Msg("approval decision recorded")

	dto := toStepDTO(decided)
	return &dto, nil
}

// Escalate flags a stalled pending step for attention. The step stays with
// its approver; only visibility changes.
func (e *Engine) Escalate(ctx context.Context, stepID, reason string) (*StepDTO, error) {
	var escalated *approval.Step

	err := e.uow.WithinStepTx(ctx, stepID, func(r uow.Repos, s *approval.Step) error {
		if err := approval.Escalate(s, e.now(), reason); err != nil {
			return err
		}
		if err := r.Approvals.Save(ctx, s); err != nil {
			return err
		}
		escalated = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.notifier.ApprovalEscalated(ctx, escalated)
	e.log.Warn().
		Str("step_id", stepID).
		Str("reason", reason).
		Msg("approval step escalated")

	dto := toStepDTO(escalated)
	return &dto, nil
}

// CheckEscalations is the idempotent sweep: every step still PENDING,
// older than now-threshold, and not yet escalated gets escalated. Each
// candidate is re-checked under lock, so racing with a human decision
// leaves at most one winner. Callers own the triggering timer.
func (e *Engine) CheckEscalations(ctx context.Context, now time.Time, threshold time.Duration) (int, error) {
	candidates, err := e.approvals.ListPendingOlderThan(ctx, now.Add(-threshold))
	if err != nil {
		return 0, err
	}

	reason := fmt.Sprintf("%.0f-hour timeout exceeded", threshold.Hours())
	escalated := 0
	for _, c := range candidates {
		if _, err := e.Escalate(ctx, c.StepID, reason); err != nil {
			// A decision landed between the query and the lock. That step
			// no longer needs escalation.
			e.log.Debug().Str("step_id", c.StepID).Err(err).Msg("escalation skipped")
			continue
		}
		escalated++
	}

	if escalated > 0 {
		e.log.Warn().Int("count", escalated).Msg("stalled approvals escalated")
	}
	return escalated, nil
}

// ListSteps returns the ordered approval chain for a payable.
// GetStep fetches a single step by its public id.
func (e *Engine) GetStep(ctx context.Context, stepID string) (*StepDTO, error) {
	s, err := e.approvals.GetByStepID(ctx, stepID)
	if err != nil {
		return nil, err
	}
	dto := toStepDTO(s)
	return &dto, nil
}

func (e *Engine) ListSteps(ctx context.Context, payableID string) ([]StepDTO, error) {
	p, err := e.payables.GetByPayableID(ctx, payableID)
	if err != nil {
		return nil, payable.ErrNotFound
	}
	steps, err := e.approvals.ListByPayable(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return toStepDTOs(steps), nil
}
