package mysql

import (
	"context"

	"gorm.io/gorm"

	payableDomain "accounts-payable-service/internal/domain/payable"
)

type PayableRepository struct{ db *gorm.DB }

func NewPayableRepository(db *gorm.DB) *PayableRepository { return &PayableRepository{db: db} }

func (r *PayableRepository) Create(ctx context.Context, p *payableDomain.Payable) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PayableRepository) GetByPayableID(ctx context.Context, payableID string) (*payableDomain.Payable, error) {
	var out payableDomain.Payable
	res := r.db.WithContext(ctx).
		Where("payable_id = ?", payableID).
		First(&out)
	return &out, res.Error
}

func (r *PayableRepository) GetByID(ctx context.Context, id uint64) (*payableDomain.Payable, error) {
	var out payableDomain.Payable
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *PayableRepository) ListByPayableIDs(ctx context.Context, payableIDs []string) ([]*payableDomain.Payable, error) {
	if len(payableIDs) == 0 {
		return nil, nil
	}
	var out []*payableDomain.Payable
	res := r.db.WithContext(ctx).
		Where("payable_id IN ?", payableIDs).
		Order("id").
		Find(&out)
	return out, res.Error
}

func (r *PayableRepository) Save(ctx context.Context, p *payableDomain.Payable) error {
	return r.db.WithContext(ctx).Save(p).Error
}
