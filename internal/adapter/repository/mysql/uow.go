package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	approvalDomain "accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Payables:  &PayableRepository{db: tx},
			Approvals: &ApprovalStepRepository{db: tx},
		})
	})
}

func (u *GormUoW) WithinStepTx(ctx context.Context, stepID string, fn func(r uow.Repos, s *approvalDomain.Step) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Payables:  &PayableRepository{db: tx},
			Approvals: &ApprovalStepRepository{db: tx},
		}
		// Lock the step row up-front so the status check-then-set cannot
		// race with a concurrent decision or escalation sweep. SQLite (in
		// tests) has no FOR UPDATE; its writer lock covers the same need.
		q := tx
		if tx.Dialector.Name() == "mysql" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var s approvalDomain.Step
		res := q.Where("step_id = ?", stepID).
			First(&s)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return approvalDomain.ErrStepNotFound
			}
			return res.Error
		}
		return fn(r, &s)
	})
}
