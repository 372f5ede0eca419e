package approval

import (
	"time"

	"gorm.io/gorm"
)

type StepStatus string

const (
	StatusPending   StepStatus = "PENDING"
	StatusApproved  StepStatus = "APPROVED"
	StatusRejected  StepStatus = "REJECTED"
	StatusEscalated StepStatus = "ESCALATED"
	StatusSkipped   StepStatus = "SKIPPED"
)

// Terminal reports whether a step can no longer receive a decision.
// ESCALATED is not terminal: the assigned approver still owns the step,
// escalation only raises its visibility.
func (s StepStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusSkipped:
		return true
	}
	return false
}

// Approver identifies who must act on a step.
type Approver struct {
	UserID int64
	Name   string
	Email  string
}

// Step is one rung of the approval workflow for a payable. Steps are
// created once, in bulk, when the workflow is instantiated; afterwards
// only decision and escalation events mutate them.
type Step struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	StepID string `gorm:"size:32;uniqueIndex:ux_approval_steps_step_id" json:"step_id"`
	// FK to payables.id (numeric)
	PayableID        uint64         `gorm:"column:payable_id;not null;index:idx_approval_steps_payable" json:"-"`
	Level            Level          `gorm:"column:approval_level;size:20;not null" json:"level"`
	SequenceOrder    int            `gorm:"column:sequence_order;not null" json:"sequence_order"`
	Status           StepStatus     `gorm:"column:approval_status;size:20;not null;index:idx_approval_steps_status" json:"status"`
	ApproverUserID   int64          `gorm:"column:approver_user_id;not null" json:"approver_user_id"`
	ApproverName     string         `gorm:"column:approver_name;size:100" json:"approver_name"`
	ApproverEmail    string         `gorm:"column:approver_email;size:150" json:"approver_email"`
	DecidedAt        *time.Time     `gorm:"column:decided_at" json:"decided_at,omitempty"`
	Comments         string         `gorm:"column:comments;size:500" json:"comments,omitempty"`
	NotificationSent bool           `gorm:"column:notification_sent;not null;default:false" json:"notification_sent"`
	EscalationDate   *time.Time     `gorm:"column:escalation_date" json:"escalation_date,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Step) TableName() string { return "approval_steps" }
