package workflow

import (
	"fmt"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/pkg/id"
)

// Directory resolves who approves at a given level. An external user
// service in a full deployment; a static table otherwise.
type Directory interface {
	ApproverFor(level approval.Level) (approval.Approver, error)
}

// BuildSteps turns the required level into the ordered chain of pending
// approval steps for a payable. AUTOMATIC yields no steps.
func BuildSteps(dir Directory, payableNumericID uint64, required approval.Level) ([]*approval.Step, error) {
	chain := approval.Chain(required)
	steps := make([]*approval.Step, 0, len(chain))

	for i, level := range chain {
		approver, err := dir.ApproverFor(level)
		if err != nil {
			return nil, fmt.Errorf("resolve approver for %s: %w", level, err)
		}
		steps = append(steps, &approval.Step{
			StepID:         id.NewID32(),
			PayableID:      payableNumericID,
			Level:          level,
			SequenceOrder:  i + 1,
			Status:         approval.StatusPending,
			ApproverUserID: approver.UserID,
			ApproverName:   approver.Name,
			ApproverEmail:  approver.Email,
		})
	}
	return steps, nil
}
