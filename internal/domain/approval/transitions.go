package approval

import (
	"fmt"
	"time"
)

// Status transitions are expressed as free functions rather than entity
// methods so the check-then-set guard is explicit: every transition
// verifies the current status before mutating and fails with ErrConflict
// when it lost a race (a human decision vs. an escalation sweep must never
// silently overwrite each other).

// Decidable statuses: PENDING, or ESCALATED (escalation raises urgency but
// the same approver still decides).
func decidable(s StepStatus) bool {
	return s == StatusPending || s == StatusEscalated
}

// Approve stamps the step APPROVED.
func Approve(s *Step, at time.Time, comments string) error {
	if !decidable(s.Status) {
		return fmt.Errorf("%w: step %s is %s", ErrConflict, s.StepID, s.Status)
	}
	s.Status = StatusApproved
	s.DecidedAt = &at
	s.Comments = comments
	return nil
}

// Reject stamps the step REJECTED. Siblings are skipped separately.
func Reject(s *Step, at time.Time, comments string) error {
	if !decidable(s.Status) {
		return fmt.Errorf("%w: step %s is %s", ErrConflict, s.StepID, s.Status)
	}
	s.Status = StatusRejected
	s.DecidedAt = &at
	s.Comments = comments
	return nil
}

// Skip marks a still-pending step SKIPPED as a side effect of a sibling's
// rejection. Only PENDING steps can be skipped.
func Skip(s *Step, reason string) error {
	if s.Status != StatusPending {
		return fmt.Errorf("%w: step %s is %s", ErrConflict, s.StepID, s.Status)
	}
	s.Status = StatusSkipped
	s.Comments = "Workflow rejected: " + reason
	return nil
}

// Escalate flags a stalled PENDING step for attention. The sequence does
// not advance and the approver does not change; the reason is appended to
// any prior comments.
func Escalate(s *Step, at time.Time, reason string) error {
	if s.Status != StatusPending {
		return fmt.Errorf("%w: step %s is %s", ErrConflict, s.StepID, s.Status)
	}
	if s.EscalationDate != nil {
		return fmt.Errorf("%w: step %s already escalated", ErrConflict, s.StepID)
	}
	s.Status = StatusEscalated
	s.EscalationDate = &at
	if s.Comments != "" {
		s.Comments += " | "
	}
	s.Comments += "Escalated: " + reason
	return nil
}
