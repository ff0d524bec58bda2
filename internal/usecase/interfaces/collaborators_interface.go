package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"billing_insurance/internal/domain/entities"
)

// IInvoiceNumberSequence hands out a strictly increasing number per issue day.

type IInvoiceNumberSequence interface {
	Next(ctx context.Context, day time.Time) (int64, error)
}

// IInvoiceLocker leases an invoice to a single writer for a short time.
// TryLock returns false when another request holds the lease.

type IInvoiceLocker interface {
	TryLock(ctx context.Context, invoiceID string, ttl time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, invoiceID, token string) error
}

// INotifier hands notifications to the notification service. Callers treat every
// error as non-fatal.

type INotifier interface {
	Send(ctx context.Context, n entities.Notification) error
}

// UserDetails is the subset of the user directory record the billing service shows.
type UserDetails struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// IUserDirectory resolves users from the user service.

type IUserDirectory interface {
	GetUser(ctx context.Context, userID string) (UserDetails, error)
}

// IPaymentGateway abstracts external card payment providers (e.g. Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
