package usecase

import (
	"context"
	"errors"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/domain/identity"
	"billing_insurance/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	defaultDueDays           = 30
	maxLedgerAttempts        = 3
	maxInvoiceNumberAttempts = 5
	invoiceLeaseTTL          = 10 * time.Second
)

var (
	ErrInvoiceBusy      = errors.New("invoice is being updated by another request")
	ErrConcurrentUpdate = errors.New("invoice changed concurrently")
)

// Dependencies bundles the collaborators shared by the billing use cases.
//
// Locker, Notifier, Users and Gateway are optional: a nil Locker skips the lease (the
// versioned ledger write still protects the invoice), a nil Notifier or Users disables
// the best-effort side calls, and a nil Gateway rejects gateway-backed payments.
type Dependencies struct {
	Invoices interfaces.IInvoiceRepository
	Payments interfaces.IPaymentRepository
	Policies interfaces.IInsurancePolicyRepository
	Claims   interfaces.IInsuranceClaimRepository
	Ledger   interfaces.ILedgerRepository
	Sequence interfaces.IInvoiceNumberSequence
	Locker   interfaces.IInvoiceLocker
	Notifier interfaces.INotifier
	Users    interfaces.IUserDirectory
	Gateway  interfaces.IPaymentGateway
	Log      *zap.Logger
	DueDays  int
	Now      func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.DueDays <= 0 {
		d.DueDays = defaultDueDays
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	return d
}

// notify dispatches a notification; failures are logged and swallowed.
func (d Dependencies) notify(ctx context.Context, n entities.Notification) {
	if d.Notifier == nil {
		return
	}
	n.AuthToken = identity.TokenFromContext(ctx)
	if err := d.Notifier.Send(ctx, n); err != nil {
		d.Log.Warn("[notification][usecase] dispatch failed",
			zap.String("notification_type", string(n.Type)),
			zap.String("recipient_id", n.RecipientID),
			zap.Error(err),
		)
	}
}

// withInvoiceLease runs fn while holding the invoice lease, when a locker is configured.
func (d Dependencies) withInvoiceLease(ctx context.Context, invoiceID string, fn func() error) error {
	if d.Locker == nil {
		return fn()
	}
	acquired, token, err := d.Locker.TryLock(ctx, invoiceID, invoiceLeaseTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return ErrInvoiceBusy
	}
	defer func() {
		if err := d.Locker.Unlock(ctx, invoiceID, token); err != nil {
			d.Log.Warn("[ledger][usecase] lease release failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		}
	}()
	return fn()
}

// commitWithRetry builds and commits a ledger write, rebuilding it from fresh reads
// when a concurrent writer bumped a version in between.
func (d Dependencies) commitWithRetry(ctx context.Context, build func(attempt int) (interfaces.LedgerWrite, error)) (interfaces.LedgerWrite, error) {
	for attempt := 0; attempt < maxLedgerAttempts; attempt++ {
		w, err := build(attempt)
		if err != nil {
			return interfaces.LedgerWrite{}, err
		}
		err = d.Ledger.Commit(ctx, w)
		if err == nil {
			if w.Invoice != nil {
				w.Invoice.Version++
			}
			if w.Claim != nil {
				w.Claim.Version++
			}
			return w, nil
		}
		if !errors.Is(err, interfaces.ErrConcurrentModification) {
			return interfaces.LedgerWrite{}, err
		}
		d.Log.Info("[ledger][usecase] version conflict, retrying", zap.Int("attempt", attempt+1))
	}
	return interfaces.LedgerWrite{}, ErrConcurrentUpdate
}
