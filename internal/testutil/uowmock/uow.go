package uowmock

import (
	"context"
	"errors"

	"accounts-payable-service/internal/domain/approval"
	"accounts-payable-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinStepTxFn func(ctx context.Context, stepID string, fn func(r uow.Repos, s *approval.Step) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinStepTx(fn func(context.Context, string, func(uow.Repos, *approval.Step) error) error) *UoW {
	m.WithinStepTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinStepTx(ctx context.Context, stepID string, fn func(r uow.Repos, s *approval.Step) error) error {
	if m.WithinStepTxFn != nil {
		return m.WithinStepTxFn(ctx, stepID, fn)
	}
	return errUnimplemented
}
