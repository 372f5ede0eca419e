package payable

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("payable not found")
	ErrInvalidAmount = errors.New("payable amount must be positive")
)

type Repository interface {
	Create(ctx context.Context, p *Payable) error

	// Get by public payable_id
	GetByPayableID(ctx context.Context, payableID string) (*Payable, error)

	// Get by internal numeric id (FK on approval steps)
	GetByID(ctx context.Context, id uint64) (*Payable, error)

	// ListByPayableIDs resolves a batch of public ids (missing ids are
	// simply absent from the result).
	ListByPayableIDs(ctx context.Context, payableIDs []string) ([]*Payable, error)

	Save(ctx context.Context, p *Payable) error
}
