package response

import (
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"
)

const paymentProcessedDetail = "Payment processed successfully."

type PaymentResponse struct {
	ID            string    `json:"id"`
	InvoiceID     string    `json:"invoice_id,omitempty"`
	ClaimID       string    `json:"claim_id,omitempty"`
	PatientID     string    `json:"patient_id"`
	PaymentDate   time.Time `json:"payment_date"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		ClaimID:       p.ClaimID,
		PatientID:     p.PatientID,
		PaymentDate:   p.Date,
		Amount:        money(p.Amount),
		PaymentMethod: string(p.Method),
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Notes:         p.Notes,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

// PaymentReceiptResponse is the answer to POST /invoices/{id}/pay/.
type PaymentReceiptResponse struct {
	Detail           string `json:"detail"`
	PaymentID        string `json:"payment_id"`
	TransactionID    string `json:"transaction_id,omitempty"`
	AmountPaid       string `json:"amount_paid"`
	RemainingBalance string `json:"remaining_balance"`
	InvoiceStatus    string `json:"invoice_status"`
}

func FromPaymentReceipt(r usecase.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		Detail:           paymentProcessedDetail,
		PaymentID:        r.Payment.ID,
		TransactionID:    r.Payment.TransactionID,
		AmountPaid:       money(r.Payment.Amount),
		RemainingBalance: money(r.Invoice.AmountDue()),
		InvoiceStatus:    string(r.Invoice.Status),
	}
}
