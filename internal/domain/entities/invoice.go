package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentAmount    = errors.New("payment amount must be greater than zero")
	ErrPaymentExceedsBalance   = errors.New("payment amount exceeds outstanding balance")
	ErrInvoiceAlreadyPaid      = errors.New("invoice is already fully paid")
	ErrInvoiceClosed           = errors.New("invoice is closed")
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")
	ErrInvalidMoneyPrecision   = errors.New("amounts support at most two decimal places")
)

// InvoiceStatus represents the lifecycle of an invoice.
//
// Automatic transitions:
//   - PENDING_PATIENT -> PARTIALLY_PAID (partial patient payment)
//   - any unpaid      -> PAID (full settlement by patient or insurer)
//   - PENDING_PATIENT / PARTIALLY_PAID -> PENDING_INSURANCE (claim submitted)
//
// DRAFT, OVERDUE, CANCELLED and WRITTEN_OFF are reached through manual updates only.
type InvoiceStatus string

const (
	InvoiceStatusDraft            InvoiceStatus = "DRAFT"
	InvoiceStatusPendingPatient   InvoiceStatus = "PENDING_PATIENT"
	InvoiceStatusPendingInsurance InvoiceStatus = "PENDING_INSURANCE"
	InvoiceStatusPartiallyPaid    InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid             InvoiceStatus = "PAID"
	InvoiceStatusOverdue          InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled        InvoiceStatus = "CANCELLED"
	InvoiceStatusWrittenOff       InvoiceStatus = "WRITTEN_OFF"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPendingPatient, InvoiceStatusPendingInsurance,
		InvoiceStatusPartiallyPaid, InvoiceStatusPaid, InvoiceStatusOverdue,
		InvoiceStatusCancelled, InvoiceStatusWrittenOff:
		return true
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s InvoiceStatus) Terminal() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusCancelled || s == InvoiceStatusWrittenOff
}

type InvoiceItemType string

const (
	InvoiceItemConsultation InvoiceItemType = "CONSULTATION"
	InvoiceItemMedication   InvoiceItemType = "MEDICATION"
	InvoiceItemLabTest      InvoiceItemType = "LAB_TEST"
	InvoiceItemOtherService InvoiceItemType = "OTHER_SERVICE"
)

func (t InvoiceItemType) Valid() bool {
	switch t {
	case InvoiceItemConsultation, InvoiceItemMedication, InvoiceItemLabTest, InvoiceItemOtherService:
		return true
	}
	return false
}

// InvoiceItem is a line item owned by exactly one invoice.
type InvoiceItem struct {
	ID          string          `json:"id"`
	ItemType    InvoiceItemType `json:"item_type"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Recalculate sets TotalPrice = Quantity * UnitPrice. Repositories call it on every save.
func (i *InvoiceItem) Recalculate() {
	i.TotalPrice = i.Quantity.Mul(i.UnitPrice).Round(2)
}

// Invoice is the billable record for one patient charge.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (patient_id-index): patient_id
//   - items are embedded; the invoice exclusively owns them
//
// Version is used for optimistic concurrency: every ledger write is conditioned on it.
type Invoice struct {
	ID                            string          `json:"id"`
	PatientID                     string          `json:"patient_id"`
	InvoiceNumber                 string          `json:"invoice_number"`
	IssueDate                     time.Time       `json:"issue_date"`
	DueDate                       time.Time       `json:"due_date"`
	SubTotal                      decimal.Decimal `json:"sub_total_amount"`
	Tax                           decimal.Decimal `json:"tax_amount"`
	Discount                      decimal.Decimal `json:"discount_amount"`
	Total                         decimal.Decimal `json:"total_amount"`
	PaidByPatient                 decimal.Decimal `json:"amount_paid_by_patient"`
	PaidByInsurance               decimal.Decimal `json:"amount_paid_by_insurance"`
	Status                        InvoiceStatus   `json:"status"`
	RelatedAppointmentID          string          `json:"related_appointment_id,omitempty"`
	RelatedPrescriptionDispenseID string          `json:"related_prescription_dispense_id,omitempty"`
	RelatedLabOrderID             string          `json:"related_lab_order_id,omitempty"`
	Items                         []InvoiceItem   `json:"items"`
	Version                       int64           `json:"version"`
	CreatedAt                     time.Time       `json:"created_at"`
	UpdatedAt                     time.Time       `json:"updated_at"`
}

// AmountDue is max(0, total - paid by patient - paid by insurance).
func (inv Invoice) AmountDue() decimal.Decimal {
	due := inv.Total.Sub(inv.PaidByPatient).Sub(inv.PaidByInsurance)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

func (inv Invoice) IsPaid() bool {
	return inv.AmountDue().IsZero()
}

// RecalculateTotals recomputes every item total and the invoice amounts.
// Tax and discount are not applied by this service and stay at zero.
func (inv *Invoice) RecalculateTotals() {
	sub := decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Recalculate()
		sub = sub.Add(inv.Items[i].TotalPrice)
	}
	inv.SubTotal = sub
	inv.Tax = decimal.Zero
	inv.Discount = decimal.Zero
	inv.Total = sub.Add(inv.Tax).Sub(inv.Discount)
}

// ApplyPatientPayment validates and books a patient payment, then derives the new status.
// On error the invoice is left untouched.
func (inv *Invoice) ApplyPatientPayment(amount decimal.Decimal) error {
	if inv.Status == InvoiceStatusCancelled || inv.Status == InvoiceStatusWrittenOff {
		return ErrInvoiceClosed
	}
	if inv.IsPaid() {
		return ErrInvoiceAlreadyPaid
	}
	if !amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}
	if !HasMoneyPrecision(amount) {
		return ErrInvalidMoneyPrecision
	}
	if amount.GreaterThan(inv.AmountDue()) {
		return ErrPaymentExceedsBalance
	}

	previous := inv.Status
	inv.PaidByPatient = inv.PaidByPatient.Add(amount)
	switch {
	case inv.IsPaid():
		inv.Status = InvoiceStatusPaid
	case previous == InvoiceStatusPendingPatient && inv.PaidByPatient.IsPositive():
		inv.Status = InvoiceStatusPartiallyPaid
	}
	return nil
}

// ApplyInsurancePayout books an approved claim amount. Payouts accumulate so that
// several approved claims on the same invoice reconcile against their sum.
func (inv *Invoice) ApplyInsurancePayout(amount decimal.Decimal) {
	inv.PaidByInsurance = inv.PaidByInsurance.Add(amount)
	if inv.Status == InvoiceStatusCancelled || inv.Status == InvoiceStatusWrittenOff {
		return
	}
	if inv.IsPaid() {
		inv.Status = InvoiceStatusPaid
	} else {
		inv.Status = InvoiceStatusPartiallyPaid
	}
}

// MarkPendingInsurance moves the invoice to PENDING_INSURANCE when a claim is submitted.
// It reports whether the status changed.
func (inv *Invoice) MarkPendingInsurance() bool {
	if inv.Status == InvoiceStatusPendingPatient || inv.Status == InvoiceStatusPartiallyPaid {
		inv.Status = InvoiceStatusPendingInsurance
		return true
	}
	return false
}

// TransitionTo applies a manual status change.
func (inv *Invoice) TransitionTo(next InvoiceStatus) error {
	if !next.Valid() || !CanTransitionInvoice(inv.Status, next) {
		return ErrInvalidStatusTransition
	}
	inv.Status = next
	return nil
}

// CanTransitionInvoice reports whether a manual update from -> to is allowed.
func CanTransitionInvoice(from, to InvoiceStatus) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	switch to {
	case InvoiceStatusOverdue, InvoiceStatusCancelled, InvoiceStatusWrittenOff:
		return true
	case InvoiceStatusPendingPatient:
		return from == InvoiceStatusDraft || from == InvoiceStatusOverdue
	}
	return false
}

// HasMoneyPrecision reports whether v has at most two fractional digits.
func HasMoneyPrecision(v decimal.Decimal) bool {
	return v.Equal(v.Round(2))
}
