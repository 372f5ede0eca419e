package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/payable"
)

// Notification subjects, one per workflow event kind.
const (
	subjectRequested = "notifications.ap.approval_requested"
	subjectCompleted = "notifications.ap.approval_completed"
	subjectRejected  = "notifications.ap.approval_rejected"
	subjectEscalated = "notifications.ap.approval_escalated"
)

// NotificationEvent is the JSON payload published for the notification
// service to fan out (email, in-app).
type NotificationEvent struct {
	EventType      string    `json:"event_type"`
	PayableID      string    `json:"payable_id,omitempty"`
	StepID         string    `json:"step_id,omitempty"`
	Level          string    `json:"level,omitempty"`
	SequenceOrder  int       `json:"sequence_order,omitempty"`
	ApproverUserID int64     `json:"approver_user_id,omitempty"`
	ApproverEmail  string    `json:"approver_email,omitempty"`
	SupplierID     int64     `json:"supplier_id,omitempty"`
	Amount         string    `json:"amount,omitempty"`
	Description    string    `json:"description,omitempty"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NotificationPublisher pushes approval workflow events to NATS.
//
// Every publish is fire-and-forget: failures are logged as degraded
// delivery and never surface to the state machine, so a broker outage
// cannot block a status transition. A nil connection disables publishing.
type NotificationPublisher struct {
	nc  *nats.Conn
	log zerolog.Logger
}

func NewNotificationPublisher(nc *nats.Conn, log zerolog.Logger) *NotificationPublisher {
	return &NotificationPublisher{nc: nc, log: log}
}

func (n *NotificationPublisher) ApprovalRequested(ctx context.Context, step *approval.Step, p *payable.Payable) {
	n.publish(subjectRequested, NotificationEvent{
		EventType:      "approval_requested",
		PayableID:      p.PayableID,
		StepID:         step.StepID,
		Level:          string(step.Level),
		SequenceOrder:  step.SequenceOrder,
		ApproverUserID: step.ApproverUserID,
		ApproverEmail:  step.ApproverEmail,
		SupplierID:     p.SupplierID,
		Amount:         p.AmountDue.StringFixed(2),
		Description:    p.Description,
	})
}

func (n *NotificationPublisher) ApprovalCompleted(ctx context.Context, p *payable.Payable) {
	n.publish(subjectCompleted, NotificationEvent{
		EventType:   "approval_completed",
		PayableID:   p.PayableID,
		SupplierID:  p.SupplierID,
		Amount:      p.AmountDue.StringFixed(2),
		Description: p.Description,
	})
}

func (n *NotificationPublisher) ApprovalRejected(ctx context.Context, p *payable.Payable, reason string) {
	n.publish(subjectRejected, NotificationEvent{
		EventType:   "approval_rejected",
		PayableID:   p.PayableID,
		SupplierID:  p.SupplierID,
		Amount:      p.AmountDue.StringFixed(2),
		Description: p.Description,
		Reason:      reason,
	})
}

func (n *NotificationPublisher) ApprovalEscalated(ctx context.Context, step *approval.Step) {
	n.publish(subjectEscalated, NotificationEvent{
		EventType:      "approval_escalated",
		StepID:         step.StepID,
		Level:          string(step.Level),
		SequenceOrder:  step.SequenceOrder,
		ApproverUserID: step.ApproverUserID,
		ApproverEmail:  step.ApproverEmail,
		Reason:         step.Comments,
	})
}

func (n *NotificationPublisher) publish(subject string, event NotificationEvent) {
	if n.nc == nil {
		return
	}
	event.OccurredAt = time.Now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		n.log.Error().Err(err).Str("subject", subject).Msg("notification marshal failed")
		return
	}
	if err := n.nc.Publish(subject, data); err != nil {
		// Degraded delivery: the transition already committed.
		n.log.Warn().Err(err).Str("subject", subject).Msg("notification delivery degraded")
		return
	}
	n.log.Debug().Str("subject", subject).Str("event", event.EventType).Msg("notification published")
}
