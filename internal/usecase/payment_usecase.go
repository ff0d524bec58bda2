package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentMethod           = errors.New("invalid payment_method")
	ErrInvalidGatewayPayload          = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayUnavailable      = errors.New("payment gateway not configured")
	ErrPaymentDeclined                = errors.New("payment declined by gateway")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ApplyPaymentCommand is a patient payment against an invoice.
//
// When GatewayPayload is set the amount is charged through the payment gateway first
// and the provider payment id becomes the transaction id.
type ApplyPaymentCommand struct {
	InvoiceID      string
	Amount         decimal.Decimal
	Method         entities.PaymentMethod
	TransactionID  string
	Notes          string
	GatewayPayload json.RawMessage
}

// PaymentReceipt is the recorded payment and the invoice state after it.
type PaymentReceipt struct {
	Payment entities.Payment
	Invoice entities.Invoice
}

// IPaymentUseCase applies patient payments and exposes payment queries.

type IPaymentUseCase interface {
	ApplyPayment(ctx context.Context, cmd ApplyPaymentCommand) (PaymentReceipt, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	deps     Dependencies
	invoices *InvoiceUseCase
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(deps Dependencies) *PaymentUseCase {
	deps = deps.withDefaults()
	return &PaymentUseCase{deps: deps, invoices: &InvoiceUseCase{deps: deps}}
}

func (u *PaymentUseCase) ApplyPayment(ctx context.Context, cmd ApplyPaymentCommand) (PaymentReceipt, error) {
	log := u.deps.Log
	invoiceID := strings.TrimSpace(cmd.InvoiceID)
	log.Info("[payment][usecase] apply start",
		zap.String("invoice_id", invoiceID),
		zap.String("amount", cmd.Amount.String()),
		zap.String("method", string(cmd.Method)),
		zap.Bool("gateway", len(cmd.GatewayPayload) > 0),
	)
	if invoiceID == "" {
		return PaymentReceipt{}, ErrInvalidInvoiceID
	}
	if !cmd.Method.Valid() {
		return PaymentReceipt{}, ErrInvalidPaymentMethod
	}
	if len(cmd.GatewayPayload) > 0 && !json.Valid(cmd.GatewayPayload) {
		return PaymentReceipt{}, ErrInvalidGatewayPayload
	}

	var receipt PaymentReceipt
	err := u.deps.withInvoiceLease(ctx, invoiceID, func() error {
		inv, err := u.invoices.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		trial := inv
		if err := trial.ApplyPatientPayment(cmd.Amount); err != nil {
			return err
		}

		transactionID := strings.TrimSpace(cmd.TransactionID)
		charged := false
		if len(cmd.GatewayPayload) > 0 {
			providerID, err := u.charge(ctx, inv, cmd)
			if err != nil {
				return err
			}
			transactionID = providerID
			charged = true
		}

		paymentID := uuid.NewString()
		w, err := u.deps.commitWithRetry(ctx, func(attempt int) (interfaces.LedgerWrite, error) {
			if attempt > 0 {
				if inv, err = u.invoices.GetByID(ctx, invoiceID); err != nil {
					return interfaces.LedgerWrite{}, err
				}
			}
			updated := inv
			if err := updated.ApplyPatientPayment(cmd.Amount); err != nil {
				return interfaces.LedgerWrite{}, err
			}
			now := u.deps.Now()
			updated.UpdatedAt = now
			p := entities.Payment{
				ID:            paymentID,
				InvoiceID:     updated.ID,
				PatientID:     updated.PatientID,
				Date:          now,
				Amount:        cmd.Amount,
				Method:        cmd.Method,
				TransactionID: transactionID,
				Status:        entities.PaymentStatusSuccess,
				Notes:         strings.TrimSpace(cmd.Notes),
				CreatedAt:     now,
			}
			return interfaces.LedgerWrite{Invoice: &updated, Payment: &p}, nil
		})
		if err != nil {
			if charged {
				log.Error("[payment][usecase] gateway charge succeeded but ledger write failed",
					zap.String("invoice_id", invoiceID),
					zap.String("transaction_id", transactionID),
					zap.String("amount", cmd.Amount.StringFixed(2)),
					zap.Error(err),
				)
			}
			return err
		}
		receipt = PaymentReceipt{Payment: *w.Payment, Invoice: *w.Invoice}
		return nil
	})
	if err != nil {
		log.Info("[payment][usecase] apply refused", zap.String("invoice_id", invoiceID), zap.Error(err))
		return PaymentReceipt{}, err
	}

	inv := receipt.Invoice
	log.Info("[payment][usecase] apply success",
		zap.String("invoice_id", inv.ID),
		zap.String("payment_id", receipt.Payment.ID),
		zap.String("remaining_balance", inv.AmountDue().StringFixed(2)),
		zap.String("status", string(inv.Status)),
	)
	u.deps.notify(ctx, entities.Notification{
		Type:        entities.NotificationPaymentSuccessful,
		RecipientID: inv.PatientID,
		Data: map[string]string{
			"invoice_number":    inv.InvoiceNumber,
			"amount_paid":       receipt.Payment.Amount.StringFixed(2),
			"payment_date":      receipt.Payment.Date.Format("2006-01-02"),
			"remaining_balance": inv.AmountDue().StringFixed(2),
		},
	})
	return receipt, nil
}

// charge runs the gateway payment. Amount and external reference always come from
// the invoice, never from the caller's payload.
func (u *PaymentUseCase) charge(ctx context.Context, inv entities.Invoice, cmd ApplyPaymentCommand) (string, error) {
	log := u.deps.Log
	if u.deps.Gateway == nil {
		return "", ErrPaymentGatewayUnavailable
	}

	var reqMap map[string]any
	if err := json.Unmarshal(cmd.GatewayPayload, &reqMap); err != nil || reqMap == nil {
		return "", ErrInvalidGatewayPayload
	}
	reqMap["transaction_amount"] = cmd.Amount.InexactFloat64()
	reqMap["external_reference"] = inv.ID
	if !hasNonEmptyString(reqMap, "description") {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return "", err
	}

	log.Info("[payment][usecase] calling payment gateway", zap.String("invoice_id", inv.ID), zap.Int("payload_len", len(payload)))
	providerID, providerStatus, _, err := u.deps.Gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		switch {
		case isGatewayCustomerNotFound(err):
			return "", ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return "", ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return "", ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", ErrPaymentGatewayBadRequest
		}
		return "", err
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Info("[payment][usecase] payment not approved by gateway",
			zap.String("invoice_id", inv.ID),
			zap.String("provider_payment_id", providerID),
			zap.String("provider_status", providerStatus),
		)
		return "", ErrPaymentDeclined
	}
	log.Info("[payment][usecase] payment gateway success", zap.String("invoice_id", inv.ID), zap.String("provider_payment_id", providerID))
	return providerID, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.deps.Payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return u.deps.Payments.ListByInvoiceID(ctx, inv.ID)
}
