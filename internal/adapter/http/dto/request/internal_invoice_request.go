package request

import (
	"errors"
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

const (
	defaultMedicationDescription = "Medication"
	defaultLabTestDescription    = "Laboratory Test"
	medicationService            = "Medication"
	labTestService               = "Laboratory Tests"
)

var (
	ErrMissingUnitPrice      = errors.New("unit_price or total_price is required")
	ErrInconsistentItemTotal = errors.New("total_price does not match quantity times unit_price")
)

// AppointmentInvoiceRequest is sent by the appointment service when a visit is billable.
type AppointmentInvoiceRequest struct {
	AppointmentID      ExternalID       `json:"appointment_id" binding:"required"`
	PatientID          ExternalID       `json:"patient_id" binding:"required"`
	DoctorID           ExternalID       `json:"doctor_id"`
	ServiceDescription string           `json:"service_description" binding:"required"`
	Amount             *decimal.Decimal `json:"amount" binding:"required"`
}

func (r AppointmentInvoiceRequest) ToCommand() usecase.CreateInvoiceCommand {
	description := strings.TrimSpace(r.ServiceDescription)
	return usecase.CreateInvoiceCommand{
		PatientID: r.PatientID.String(),
		Items: []usecase.InvoiceItemInput{{
			ItemType:    entities.InvoiceItemConsultation,
			Description: description,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   *r.Amount,
		}},
		RelatedAppointmentID: r.AppointmentID.String(),
		ServiceDescription:   description,
	}
}

type MedicationItemRequest struct {
	MedicationName string           `json:"medication_name"`
	Quantity       *decimal.Decimal `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unit_price"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
}

// MedicationInvoiceRequest is sent by the pharmacy when a prescription is dispensed.
type MedicationInvoiceRequest struct {
	DispenseLogID ExternalID              `json:"dispense_log_id" binding:"required"`
	PatientID     ExternalID              `json:"patient_id" binding:"required"`
	Items         []MedicationItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToCommand converts pharmacy lines into MEDICATION items. A line that only carries
// total_price gets its unit price derived from it, which must be exact to the cent.
func (r MedicationInvoiceRequest) ToCommand() (usecase.CreateInvoiceCommand, error) {
	items := make([]usecase.InvoiceItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		qty := decimal.NewFromInt(1)
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		unit, err := medicationUnitPrice(qty, it.UnitPrice, it.TotalPrice)
		if err != nil {
			return usecase.CreateInvoiceCommand{}, err
		}
		description := strings.TrimSpace(it.MedicationName)
		if description == "" {
			description = defaultMedicationDescription
		}
		items = append(items, usecase.InvoiceItemInput{
			ItemType:    entities.InvoiceItemMedication,
			Description: description,
			Quantity:    qty,
			UnitPrice:   unit,
		})
	}
	return usecase.CreateInvoiceCommand{
		PatientID:                     r.PatientID.String(),
		Items:                         items,
		RelatedPrescriptionDispenseID: r.DispenseLogID.String(),
		ServiceDescription:            medicationService,
	}, nil
}

func medicationUnitPrice(qty decimal.Decimal, unit, total *decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case unit != nil && total != nil:
		if !qty.Mul(*unit).Equal(*total) {
			return decimal.Zero, ErrInconsistentItemTotal
		}
		return *unit, nil
	case unit != nil:
		return *unit, nil
	case total != nil:
		if !qty.IsPositive() {
			// quantity is rejected by invoice validation
			return decimal.Zero, nil
		}
		derived := total.Div(qty)
		if !derived.Mul(qty).Equal(*total) || !entities.HasMoneyPrecision(derived) {
			return decimal.Zero, ErrInconsistentItemTotal
		}
		return derived, nil
	default:
		return decimal.Zero, ErrMissingUnitPrice
	}
}

type LabTestItemRequest struct {
	TestName string           `json:"test_name"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
}

// LabTestInvoiceRequest is sent by the laboratory when an order is placed.
type LabTestInvoiceRequest struct {
	LabOrderID ExternalID           `json:"lab_order_id" binding:"required"`
	PatientID  ExternalID           `json:"patient_id" binding:"required"`
	Items      []LabTestItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r LabTestInvoiceRequest) ToCommand() usecase.CreateInvoiceCommand {
	items := make([]usecase.InvoiceItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		description := strings.TrimSpace(it.TestName)
		if description == "" {
			description = defaultLabTestDescription
		}
		items = append(items, usecase.InvoiceItemInput{
			ItemType:    entities.InvoiceItemLabTest,
			Description: description,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   *it.Price,
		})
	}
	return usecase.CreateInvoiceCommand{
		PatientID:          r.PatientID.String(),
		Items:              items,
		RelatedLabOrderID:  r.LabOrderID.String(),
		ServiceDescription: labTestService,
	}
}
