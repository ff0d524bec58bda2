package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard      PaymentMethod = "CREDIT_CARD"
	PaymentMethodCash            PaymentMethod = "CASH"
	PaymentMethodBankTransfer    PaymentMethod = "BANK_TRANSFER"
	PaymentMethodInsurancePayout PaymentMethod = "INSURANCE_PAYOUT"
	PaymentMethodVoucher         PaymentMethod = "VOUCHER"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodCash, PaymentMethodBankTransfer,
		PaymentMethodInsurancePayout, PaymentMethodVoucher:
		return true
	}
	return false
}

// PaymentStatus represents the processing outcome of a payment.
type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "SUCCESS"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment is a money movement against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//
// InvoiceID is empty for standalone payments.
type Payment struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id,omitempty"`
	ClaimID       string          `json:"claim_id,omitempty"`
	PatientID     string          `json:"patient_id"`
	Date          time.Time       `json:"payment_date"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"payment_method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        PaymentStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
