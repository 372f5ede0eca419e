package workflow

import (
	"context"
	"errors"
	"time"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
)

var (
	// ErrWorkflowExists guards against instantiating a second approval
	// chain for the same payable.
	ErrWorkflowExists = errors.New("approval workflow already exists for payable")
	// ErrMissingContext: the payable lacks the supplier/category data the
	// resolver needs. Rejected before any state change.
	ErrMissingContext = errors.New("payable missing supplier or category context")
)

// RiskSource grades supplier risk. External service in a full deployment.
type RiskSource interface {
	RiskFor(supplierID int64) payable.RiskLevel
}

// Notifier is the fire-and-forget notification sink. Implementations log
// delivery failures themselves; a failed send never blocks a transition.
type Notifier interface {
	ApprovalRequested(ctx context.Context, step *approval.Step, p *payable.Payable)
	ApprovalCompleted(ctx context.Context, p *payable.Payable)
	ApprovalRejected(ctx context.Context, p *payable.Payable, reason string)
	ApprovalEscalated(ctx context.Context, step *approval.Step)
}

type DecideInput struct {
	StepID         string
	ApproverUserID int64
	Approve        bool
	Comments       string
}

type StepDTO struct {
	StepID         string     `json:"step_id"`
	Level          string     `json:"level"`
	SequenceOrder  int        `json:"sequence_order"`
	Status         string     `json:"status"`
	ApproverUserID int64      `json:"approver_user_id"`
	ApproverName   string     `json:"approver_name,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
	Comments       string     `json:"comments,omitempty"`
	EscalationDate *time.Time `json:"escalation_date,omitempty"`
}

func toStepDTO(s *approval.Step) StepDTO {
	return StepDTO{
		StepID:         s.StepID,
		Level:          string(s.Level),
		SequenceOrder:  s.SequenceOrder,
		Status:         string(s.Status),
		ApproverUserID: s.ApproverUserID,
		ApproverName:   s.ApproverName,
		DecidedAt:      s.DecidedAt,
		Comments:       s.Comments,
		EscalationDate: s.EscalationDate,
	}
}

func toStepDTOs(steps []*approval.Step) []StepDTO {
	out := make([]StepDTO, 0, len(steps))
	for _, s := range steps {
		out = append(out, toStepDTO(s))
	}
	return out
}
