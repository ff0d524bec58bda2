package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidPatientID     = errors.New("invalid patient_id")
	ErrInvalidInvoiceItems  = errors.New("invalid invoice items")
	ErrInvalidInvoiceTotal  = errors.New("invoice total must be greater than zero")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")

	ErrInvoiceNumberUnavailable = errors.New("could not allocate a unique invoice number")
)

// InvoiceItemInput is one requested line; its total is always computed.
type InvoiceItemInput struct {
	ItemType    entities.InvoiceItemType
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// CreateInvoiceCommand is what the invoice factory endpoints translate into.
type CreateInvoiceCommand struct {
	PatientID                     string
	Items                         []InvoiceItemInput
	RelatedAppointmentID          string
	RelatedPrescriptionDispenseID string
	RelatedLabOrderID             string
	ServiceDescription            string
	Draft                         bool
}

// InvoiceDetails is an invoice together with its payments, claims and patient name.
type InvoiceDetails struct {
	Invoice     entities.Invoice
	Payments    []entities.Payment
	Claims      []entities.InsuranceClaim
	PatientName string
}

// IInvoiceUseCase exposes invoice ledger operations.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetDetails(ctx context.Context, id string) (InvoiceDetails, error)
	List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	deps Dependencies
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(deps Dependencies) *InvoiceUseCase {
	return &InvoiceUseCase{deps: deps.withDefaults()}
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	log := u.deps.Log
	patientID := strings.TrimSpace(cmd.PatientID)
	if patientID == "" {
		return entities.Invoice{}, ErrInvalidPatientID
	}
	if len(cmd.Items) == 0 {
		return entities.Invoice{}, ErrInvalidInvoiceItems
	}

	items := make([]entities.InvoiceItem, 0, len(cmd.Items))
	for _, in := range cmd.Items {
		if !in.ItemType.Valid() || strings.TrimSpace(in.Description) == "" {
			return entities.Invoice{}, ErrInvalidInvoiceItems
		}
		if !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() {
			return entities.Invoice{}, ErrInvalidInvoiceItems
		}
		if !entities.HasMoneyPrecision(in.Quantity) || !entities.HasMoneyPrecision(in.UnitPrice) {
			return entities.Invoice{}, entities.ErrInvalidMoneyPrecision
		}
		items = append(items, entities.InvoiceItem{
			ID:          uuid.NewString(),
			ItemType:    in.ItemType,
			Description: strings.TrimSpace(in.Description),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		})
	}

	now := u.deps.Now()
	issue := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	inv := entities.Invoice{
		ID:                            uuid.NewString(),
		PatientID:                     patientID,
		IssueDate:                     issue,
		DueDate:                       issue.AddDate(0, 0, u.deps.DueDays),
		PaidByPatient:                 decimal.Zero,
		PaidByInsurance:               decimal.Zero,
		Status:                        entities.InvoiceStatusPendingPatient,
		RelatedAppointmentID:          strings.TrimSpace(cmd.RelatedAppointmentID),
		RelatedPrescriptionDispenseID: strings.TrimSpace(cmd.RelatedPrescriptionDispenseID),
		RelatedLabOrderID:             strings.TrimSpace(cmd.RelatedLabOrderID),
		Items:                         items,
		CreatedAt:                     now,
		UpdatedAt:                     now,
	}
	if cmd.Draft {
		inv.Status = entities.InvoiceStatusDraft
	}
	inv.RecalculateTotals()
	if !inv.Total.IsPositive() {
		return entities.Invoice{}, ErrInvalidInvoiceTotal
	}

	created, err := u.createNumbered(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Info("[invoice][usecase] invoice created",
		zap.String("invoice_id", created.ID),
		zap.String("invoice_number", created.InvoiceNumber),
		zap.String("total", created.Total.StringFixed(2)),
		zap.String("status", string(created.Status)),
	)

	service := strings.TrimSpace(cmd.ServiceDescription)
	if service == "" && len(created.Items) > 0 {
		service = created.Items[0].Description
	}
	u.deps.notify(ctx, entities.Notification{
		Type:        entities.NotificationInvoiceGenerated,
		RecipientID: created.PatientID,
		Data: map[string]string{
			"invoice_number": created.InvoiceNumber,
			"amount":         created.Total.StringFixed(2),
			"due_date":       created.DueDate.Format("2006-01-02"),
			"service":        service,
		},
	})
	return created, nil
}

// createNumbered takes the next number from the sequence and inserts the invoice. A
// number that is already stored (the counter was reset or switched) is skipped.
func (u *InvoiceUseCase) createNumbered(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	log := u.deps.Log
	for attempt := 0; attempt < maxInvoiceNumberAttempts; attempt++ {
		seq, err := u.deps.Sequence.Next(ctx, inv.IssueDate)
		if err != nil {
			log.Error("[invoice][usecase] invoice number sequence failed", zap.String("patient_id", inv.PatientID), zap.Error(err))
			return entities.Invoice{}, err
		}
		inv.InvoiceNumber = FormatInvoiceNumber(inv.IssueDate, seq)

		created, err := u.deps.Invoices.Create(ctx, inv)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateInvoiceNumber) {
			log.Error("[invoice][usecase] repository create failed", zap.String("invoice_number", inv.InvoiceNumber), zap.Error(err))
			return entities.Invoice{}, err
		}
		log.Warn("[invoice][usecase] invoice number already issued, taking the next one",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Int("attempt", attempt+1),
		)
	}
	return entities.Invoice{}, ErrInvoiceNumberUnavailable
}

// FormatInvoiceNumber renders INV-YYYYMMDD-NNNN.
func FormatInvoiceNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", day.Format("20060102"), seq)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.deps.Invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) GetDetails(ctx context.Context, id string) (InvoiceDetails, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return InvoiceDetails{}, err
	}
	payments, err := u.deps.Payments.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return InvoiceDetails{}, err
	}
	claims, err := u.deps.Claims.List(ctx, inv.ID)
	if err != nil {
		return InvoiceDetails{}, err
	}

	details := InvoiceDetails{Invoice: inv, Payments: payments, Claims: claims}
	if u.deps.Users != nil {
		user, err := u.deps.Users.GetUser(ctx, inv.PatientID)
		if err != nil {
			u.deps.Log.Warn("[invoice][usecase] patient lookup failed", zap.String("patient_id", inv.PatientID), zap.Error(err))
		} else {
			details.PatientName = strings.TrimSpace(user.FirstName + " " + user.LastName)
		}
	}
	return details, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, filter interfaces.InvoiceFilter) ([]entities.Invoice, error) {
	filter.PatientID = strings.TrimSpace(filter.PatientID)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidInvoiceStatus
	}
	return u.deps.Invoices.List(ctx, filter)
}

// UpdateStatus applies a manual status change (OVERDUE, CANCELLED, WRITTEN_OFF,
// DRAFT -> PENDING_PATIENT).
func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	var updated entities.Invoice
	err := u.deps.withInvoiceLease(ctx, id, func() error {
		w, err := u.deps.commitWithRetry(ctx, func(int) (interfaces.LedgerWrite, error) {
			inv, err := u.GetByID(ctx, id)
			if err != nil {
				return interfaces.LedgerWrite{}, err
			}
			if err := inv.TransitionTo(status); err != nil {
				return interfaces.LedgerWrite{}, err
			}
			inv.UpdatedAt = u.deps.Now()
			return interfaces.LedgerWrite{Invoice: &inv}, nil
		})
		if err != nil {
			return err
		}
		updated = *w.Invoice
		return nil
	})
	if err != nil {
		u.deps.Log.Info("[invoice][usecase] status update refused", zap.String("invoice_id", id), zap.String("status", string(status)), zap.Error(err))
		return entities.Invoice{}, err
	}
	u.deps.Log.Info("[invoice][usecase] status updated", zap.String("invoice_id", id), zap.String("status", string(updated.Status)))
	return updated, nil
}
