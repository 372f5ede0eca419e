package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	approvalDomain "accounts-payable-service/internal/domain/approval"
)

type ApprovalStepRepository struct{ db *gorm.DB }

func NewApprovalStepRepository(db *gorm.DB) *ApprovalStepRepository {
	return &ApprovalStepRepository{db: db}
}

func (r *ApprovalStepRepository) CreateBatch(ctx context.Context, steps []*approvalDomain.Step) error {
	if len(steps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(steps).Error
}

func (r *ApprovalStepRepository) GetByStepID(ctx context.Context, stepID string) (*approvalDomain.Step, error) {
	var out approvalDomain.Step
	res := r.db.WithContext(ctx).
		Where("step_id = ?", stepID).
		First(&out)
	return &out, res.Error
}

func (r *ApprovalStepRepository) ListByPayable(ctx context.Context, payableNumericID uint64) ([]*approvalDomain.Step, error) {
	var out []*approvalDomain.Step
	res := r.db.WithContext(ctx).
		Where("payable_id = ?", payableNumericID).
		Order("sequence_order").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalStepRepository) ListPendingOlderThan(ctx context.Context, threshold time.Time) ([]*approvalDomain.Step, error) {
	var out []*approvalDomain.Step
	res := r.db.WithContext(ctx).
		Where("approval_status = ? AND created_at < ? AND escalation_date IS NULL",
			approvalDomain.StatusPending, threshold).
		Order("created_at").
		Find(&out)
	return out, res.Error
}

func (r *ApprovalStepRepository) Save(ctx context.Context, s *approvalDomain.Step) error {
	return r.db.WithContext(ctx).Save(s).Error
}
