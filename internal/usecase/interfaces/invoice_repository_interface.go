package interfaces

import (
	"context"
	"errors"

	"billing_insurance/internal/domain/entities"
)

var (
	// ErrConcurrentModification is returned when a conditional ledger write lost a race.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrDuplicateInvoiceNumber is returned when the invoice number is already taken.
	ErrDuplicateInvoiceNumber = errors.New("invoice number already issued")
)

// InvoiceFilter narrows invoice listings. Empty fields match everything.
type InvoiceFilter struct {
	PatientID string
	Status    entities.InvoiceStatus
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// Invoices are created once and afterwards only mutated through ILedgerRepository,
// which conditions every write on the invoice version.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter) ([]entities.Invoice, error)
}
