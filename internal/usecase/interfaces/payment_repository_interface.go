package interfaces

import (
	"context"

	"billing_insurance/internal/domain/entities"
)

// IPaymentRepository reads payments. Payments are written by ILedgerRepository only.

type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}
