package request

import (
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

type InvoiceItemRequest struct {
	ItemType    entities.InvoiceItemType `json:"item_type" binding:"required,invoice_item_type"`
	Description string                   `json:"description" binding:"required"`
	Quantity    *decimal.Decimal         `json:"quantity" binding:"required"`
	UnitPrice   *decimal.Decimal         `json:"unit_price" binding:"required"`
}

// CreateInvoiceRequest is the generic invoice creation payload used by billing staff.
// Item totals are always computed by the service; a total_price sent by the caller is ignored.
type CreateInvoiceRequest struct {
	PatientID                     ExternalID           `json:"patient_id" binding:"required"`
	Items                         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	RelatedAppointmentID          ExternalID           `json:"related_appointment_id"`
	RelatedPrescriptionDispenseID ExternalID           `json:"related_prescription_dispense_id"`
	RelatedLabOrderID             ExternalID           `json:"related_lab_order_id"`
	ServiceDescription            string               `json:"service_description"`
	Draft                         bool                 `json:"draft"`
}

func (r CreateInvoiceRequest) ToCommand() usecase.CreateInvoiceCommand {
	items := make([]usecase.InvoiceItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.InvoiceItemInput{
			ItemType:    it.ItemType,
			Description: strings.TrimSpace(it.Description),
			Quantity:    *it.Quantity,
			UnitPrice:   *it.UnitPrice,
		})
	}
	service := strings.TrimSpace(r.ServiceDescription)
	if service == "" && len(items) == 1 {
		service = items[0].Description
	}
	return usecase.CreateInvoiceCommand{
		PatientID:                     r.PatientID.String(),
		Items:                         items,
		RelatedAppointmentID:          r.RelatedAppointmentID.String(),
		RelatedPrescriptionDispenseID: r.RelatedPrescriptionDispenseID.String(),
		RelatedLabOrderID:             r.RelatedLabOrderID.String(),
		ServiceDescription:            service,
		Draft:                         r.Draft,
	}
}

// UpdateInvoiceStatusRequest drives the manual invoice transitions.
type UpdateInvoiceStatusRequest struct {
	Status entities.InvoiceStatus `json:"status" binding:"required,invoice_status"`
}
