package response

import (
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type InvoiceItemResponse struct {
	ID          string `json:"id"`
	ItemType    string `json:"item_type"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

type InvoiceResponse struct {
	ID                            string                `json:"id"`
	PatientID                     string                `json:"patient_id"`
	PatientName                   string                `json:"patient_name,omitempty"`
	InvoiceNumber                 string                `json:"invoice_number"`
	IssueDate                     string                `json:"issue_date"`
	DueDate                       string                `json:"due_date"`
	SubTotal                      string                `json:"sub_total_amount"`
	Tax                           string                `json:"tax_amount"`
	Discount                      string                `json:"discount_amount"`
	Total                         string                `json:"total_amount"`
	PaidByPatient                 string                `json:"amount_paid_by_patient"`
	PaidByInsurance               string                `json:"amount_paid_by_insurance"`
	AmountDue                     string                `json:"amount_due"`
	IsPaid                        bool                  `json:"is_paid"`
	Status                        string                `json:"status"`
	RelatedAppointmentID          string                `json:"related_appointment_id,omitempty"`
	RelatedPrescriptionDispenseID string                `json:"related_prescription_dispense_id,omitempty"`
	RelatedLabOrderID             string                `json:"related_lab_order_id,omitempty"`
	Items                         []InvoiceItemResponse `json:"items"`
	Payments                      []PaymentResponse     `json:"payments,omitempty"`
	Claims                        []ClaimResponse       `json:"claims,omitempty"`
	CreatedAt                     time.Time             `json:"created_at"`
	UpdatedAt                     time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:          it.ID,
			ItemType:    string(it.ItemType),
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money(it.UnitPrice),
			TotalPrice:  money(it.TotalPrice),
		})
	}
	return InvoiceResponse{
		ID:                            inv.ID,
		PatientID:                     inv.PatientID,
		InvoiceNumber:                 inv.InvoiceNumber,
		IssueDate:                     date(inv.IssueDate),
		DueDate:                       date(inv.DueDate),
		SubTotal:                      money(inv.SubTotal),
		Tax:                           money(inv.Tax),
		Discount:                      money(inv.Discount),
		Total:                         money(inv.Total),
		PaidByPatient:                 money(inv.PaidByPatient),
		PaidByInsurance:               money(inv.PaidByInsurance),
		AmountDue:                     money(inv.AmountDue()),
		IsPaid:                        inv.IsPaid(),
		Status:                        string(inv.Status),
		RelatedAppointmentID:          inv.RelatedAppointmentID,
		RelatedPrescriptionDispenseID: inv.RelatedPrescriptionDispenseID,
		RelatedLabOrderID:             inv.RelatedLabOrderID,
		Items:                         items,
		CreatedAt:                     inv.CreatedAt,
		UpdatedAt:                     inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

// FromInvoiceDetails renders the invoice detail view with payments, claims and the
// patient's display name when the user directory answered.
func FromInvoiceDetails(d usecase.InvoiceDetails) InvoiceResponse {
	res := FromInvoice(d.Invoice)
	res.PatientName = d.PatientName
	res.Payments = FromPayments(d.Payments)
	res.Claims = FromClaims(d.Claims)
	return res
}

// InvoiceCreatedResponse answers the internal invoice factory endpoints.
type InvoiceCreatedResponse struct {
	Detail        string `json:"detail"`
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
}

func NewInvoiceCreated(detail string, inv entities.Invoice) InvoiceCreatedResponse {
	return InvoiceCreatedResponse{Detail: detail, InvoiceID: inv.ID, InvoiceNumber: inv.InvoiceNumber}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
