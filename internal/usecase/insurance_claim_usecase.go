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
	ErrClaimNotFound         = errors.New("insurance claim not found")
	ErrInvalidClaimID        = errors.New("invalid insurance claim id")
	ErrInvalidClaimAmount    = errors.New("claim_amount must be greater than zero")
	ErrInvalidClaimStatus    = errors.New("invalid insurance claim status")
	ErrInvalidResolvedAmount = errors.New("approved and rejected amounts must be between zero and claim_amount")
	ErrPolicyPatientMismatch = errors.New("insurance policy does not belong to the invoice patient")
	ErrPolicyInactive        = errors.New("insurance policy is not active")
	ErrPolicyExpired         = errors.New("insurance policy is expired")
	ErrInvoiceNotClaimable   = errors.New("invoice does not accept insurance claims")
)

// SubmitClaimCommand files a new claim against an invoice.
type SubmitClaimCommand struct {
	InvoiceID            string
	PolicyID             string
	ClaimAmount          decimal.Decimal
	HospitalNotes        string
	ClaimReferenceNumber string
}

// UpdateClaimCommand records the insurer's answer. Nil fields are left unchanged.
type UpdateClaimCommand struct {
	ClaimID              string
	Status               entities.ClaimStatus
	ApprovedAmount       *decimal.Decimal
	RejectedAmount       *decimal.Decimal
	InsurerNotes         *string
	HospitalNotes        *string
	ClaimReferenceNumber *string
}

// ClaimResult is the stored claim, the invoice after the operation and, when an
// approval paid out, the INSURANCE_PAYOUT payment.
type ClaimResult struct {
	Claim   entities.InsuranceClaim
	Invoice entities.Invoice
	Payout  *entities.Payment
}

// IInsuranceClaimUseCase reconciles insurance claims with invoices.

type IInsuranceClaimUseCase interface {
	Submit(ctx context.Context, cmd SubmitClaimCommand) (ClaimResult, error)
	Update(ctx context.Context, cmd UpdateClaimCommand) (ClaimResult, error)
	GetByID(ctx context.Context, id string) (entities.InsuranceClaim, error)
	List(ctx context.Context, invoiceID string) ([]entities.InsuranceClaim, error)
}

type InsuranceClaimUseCase struct {
	deps     Dependencies
	invoices *InvoiceUseCase
	policies *InsurancePolicyUseCase
}

var _ IInsuranceClaimUseCase = (*InsuranceClaimUseCase)(nil)

func NewInsuranceClaimUseCase(deps Dependencies) *InsuranceClaimUseCase {
	deps = deps.withDefaults()
	return &InsuranceClaimUseCase{
		deps:     deps,
		invoices: &InvoiceUseCase{deps: deps},
		policies: &InsurancePolicyUseCase{deps: deps},
	}
}

func (u *InsuranceClaimUseCase) Submit(ctx context.Context, cmd SubmitClaimCommand) (ClaimResult, error) {
	log := u.deps.Log
	invoiceID := strings.TrimSpace(cmd.InvoiceID)
	if invoiceID == "" {
		return ClaimResult{}, ErrInvalidInvoiceID
	}
	if !cmd.ClaimAmount.IsPositive() {
		return ClaimResult{}, ErrInvalidClaimAmount
	}
	if !entities.HasMoneyPrecision(cmd.ClaimAmount) {
		return ClaimResult{}, entities.ErrInvalidMoneyPrecision
	}

	policy, err := u.policies.GetByID(ctx, cmd.PolicyID)
	if err != nil {
		return ClaimResult{}, err
	}

	var result ClaimResult
	err = u.deps.withInvoiceLease(ctx, invoiceID, func() error {
		claimID := uuid.NewString()
		w, err := u.deps.commitWithRetry(ctx, func(int) (interfaces.LedgerWrite, error) {
			inv, err := u.invoices.GetByID(ctx, invoiceID)
			if err != nil {
				return interfaces.LedgerWrite{}, err
			}
			now := u.deps.Now()
			if err := checkClaimable(inv, policy, now); err != nil {
				return interfaces.LedgerWrite{}, err
			}
			claim := entities.InsuranceClaim{
				ID:                   claimID,
				InvoiceID:            inv.ID,
				PolicyID:             policy.ID,
				SubmissionDate:       now,
				ClaimAmount:          cmd.ClaimAmount,
				Status:               entities.ClaimStatusSubmitted,
				HospitalNotes:        strings.TrimSpace(cmd.HospitalNotes),
				ClaimReferenceNumber: strings.TrimSpace(cmd.ClaimReferenceNumber),
				CreatedAt:            now,
				UpdatedAt:            now,
			}
			// The invoice is always part of the write so its version guards the checks above.
			if inv.MarkPendingInsurance() {
				inv.UpdatedAt = now
			}
			return interfaces.LedgerWrite{Invoice: &inv, Claim: &claim, NewClaim: true}, nil
		})
		if errors.Is(err, interfaces.ErrPolicyMissing) {
			return ErrPolicyNotFound
		}
		if err != nil {
			return err
		}
		result = ClaimResult{Claim: *w.Claim, Invoice: *w.Invoice}
		return nil
	})
	if err != nil {
		log.Info("[claim][usecase] submit refused", zap.String("invoice_id", invoiceID), zap.String("policy_id", policy.ID), zap.Error(err))
		return ClaimResult{}, err
	}

	log.Info("[claim][usecase] claim submitted",
		zap.String("claim_id", result.Claim.ID),
		zap.String("invoice_id", invoiceID),
		zap.String("claim_amount", result.Claim.ClaimAmount.StringFixed(2)),
		zap.String("invoice_status", string(result.Invoice.Status)),
	)
	u.deps.notify(ctx, entities.Notification{
		Type:        entities.NotificationInsuranceClaimSubmitted,
		RecipientID: result.Invoice.PatientID,
		Data: map[string]string{
			"invoice_number":  result.Invoice.InvoiceNumber,
			"claim_amount":    result.Claim.ClaimAmount.StringFixed(2),
			"submission_date": result.Claim.SubmissionDate.Format("2006-01-02"),
			"provider_name":   policy.ProviderName,
		},
	})
	return result, nil
}

func checkClaimable(inv entities.Invoice, policy entities.InsurancePolicy, now time.Time) error {
	switch inv.Status {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled, entities.InvoiceStatusWrittenOff:
		return ErrInvoiceNotClaimable
	}
	if policy.PatientID != inv.PatientID {
		return ErrPolicyPatientMismatch
	}
	if !policy.IsActive {
		return ErrPolicyInactive
	}
	if policy.IsExpired(now) {
		return ErrPolicyExpired
	}
	return nil
}

// Update applies the insurer's decision. Moving a claim into APPROVED or
// PARTIALLY_APPROVED with a positive approved amount books a single INSURANCE_PAYOUT
// payment on the invoice in the same atomic write.
func (u *InsuranceClaimUseCase) Update(ctx context.Context, cmd UpdateClaimCommand) (ClaimResult, error) {
	log := u.deps.Log
	claimID := strings.TrimSpace(cmd.ClaimID)
	if claimID == "" {
		return ClaimResult{}, ErrInvalidClaimID
	}
	if !cmd.Status.Valid() {
		return ClaimResult{}, ErrInvalidClaimStatus
	}

	current, err := u.GetByID(ctx, claimID)
	if err != nil {
		return ClaimResult{}, err
	}

	var result ClaimResult
	err = u.deps.withInvoiceLease(ctx, current.InvoiceID, func() error {
		paymentID := uuid.NewString()
		w, err := u.deps.commitWithRetry(ctx, func(attempt int) (interfaces.LedgerWrite, error) {
			claim := current
			if attempt > 0 {
				fresh, err := u.GetByID(ctx, claimID)
				if err != nil {
					return interfaces.LedgerWrite{}, err
				}
				claim = fresh
			}
			previous := claim.Status
			if err := claim.TransitionTo(cmd.Status); err != nil {
				return interfaces.LedgerWrite{}, err
			}
			if err := applyClaimFields(&claim, cmd); err != nil {
				return interfaces.LedgerWrite{}, err
			}
			now := u.deps.Now()
			claim.UpdatedAt = now
			write := interfaces.LedgerWrite{Claim: &claim}

			if !payoutDue(previous, claim) {
				return write, nil
			}
			inv, err := u.invoices.GetByID(ctx, claim.InvoiceID)
			if err != nil {
				return interfaces.LedgerWrite{}, err
			}
			amount := *claim.ApprovedAmount
			inv.ApplyInsurancePayout(amount)
			inv.UpdatedAt = now
			payout := entities.Payment{
				ID:        paymentID,
				InvoiceID: inv.ID,
				ClaimID:   claim.ID,
				PatientID: inv.PatientID,
				Date:      now,
				Amount:    amount,
				Method:    entities.PaymentMethodInsurancePayout,
				Status:    entities.PaymentStatusSuccess,
				Notes:     fmt.Sprintf("Insurance payment for claim #%s", claim.ID),
				CreatedAt: now,
			}
			claim.PayoutPaymentID = payout.ID
			write.Invoice = &inv
			write.Payment = &payout
			return write, nil
		})
		if err != nil {
			return err
		}
		result = ClaimResult{Claim: *w.Claim, Payout: w.Payment}
		if w.Invoice != nil {
			result.Invoice = *w.Invoice
			return nil
		}
		result.Invoice, err = u.invoices.GetByID(ctx, current.InvoiceID)
		return err
	})
	if err != nil {
		log.Info("[claim][usecase] update refused", zap.String("claim_id", claimID), zap.String("status", string(cmd.Status)), zap.Error(err))
		return ClaimResult{}, err
	}

	log.Info("[claim][usecase] claim updated",
		zap.String("claim_id", claimID),
		zap.String("status", string(result.Claim.Status)),
		zap.Bool("payout", result.Payout != nil),
	)
	if result.Payout != nil {
		providerName := ""
		if policy, err := u.deps.Policies.GetByID(ctx, result.Claim.PolicyID); err == nil {
			providerName = policy.ProviderName
		}
		u.deps.notify(ctx, entities.Notification{
			Type:        entities.NotificationInsuranceClaimApproved,
			RecipientID: result.Invoice.PatientID,
			Data: map[string]string{
				"invoice_number":    result.Invoice.InvoiceNumber,
				"approved_amount":   result.Payout.Amount.StringFixed(2),
				"provider_name":     providerName,
				"remaining_balance": result.Invoice.AmountDue().StringFixed(2),
			},
		})
	}
	return result, nil
}

func applyClaimFields(claim *entities.InsuranceClaim, cmd UpdateClaimCommand) error {
	for _, amt := range []*decimal.Decimal{cmd.ApprovedAmount, cmd.RejectedAmount} {
		if amt == nil {
			continue
		}
		if amt.IsNegative() || amt.GreaterThan(claim.ClaimAmount) {
			return ErrInvalidResolvedAmount
		}
		if !entities.HasMoneyPrecision(*amt) {
			return entities.ErrInvalidMoneyPrecision
		}
	}
	if cmd.ApprovedAmount != nil {
		v := *cmd.ApprovedAmount
		claim.ApprovedAmount = &v
	}
	if cmd.RejectedAmount != nil {
		v := *cmd.RejectedAmount
		claim.RejectedAmount = &v
	}
	if cmd.InsurerNotes != nil {
		claim.InsurerNotes = strings.TrimSpace(*cmd.InsurerNotes)
	}
	if cmd.HospitalNotes != nil {
		claim.HospitalNotes = strings.TrimSpace(*cmd.HospitalNotes)
	}
	if cmd.ClaimReferenceNumber != nil {
		claim.ClaimReferenceNumber = strings.TrimSpace(*cmd.ClaimReferenceNumber)
	}
	return nil
}

// payoutDue reports whether the update moves the claim into an approved status and
// the claim has not paid out before.
func payoutDue(previous entities.ClaimStatus, claim entities.InsuranceClaim) bool {
	if previous == claim.Status || !claim.Status.Approved() {
		return false
	}
	if claim.PayoutPaymentID != "" || claim.ApprovedAmount == nil {
		return false
	}
	return claim.ApprovedAmount.IsPositive()
}

func (u *InsuranceClaimUseCase) GetByID(ctx context.Context, id string) (entities.InsuranceClaim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InsuranceClaim{}, ErrInvalidClaimID
	}

	c, err := u.deps.Claims.GetByID(ctx, id)
	if err != nil {
		return entities.InsuranceClaim{}, err
	}
	if c.ID == "" {
		return entities.InsuranceClaim{}, ErrClaimNotFound
	}
	return c, nil
}

// List returns the claims of one invoice, or every claim when invoiceID is empty.
func (u *InsuranceClaimUseCase) List(ctx context.Context, invoiceID string) ([]entities.InsuranceClaim, error) {
	return u.deps.Claims.List(ctx, strings.TrimSpace(invoiceID))
}
