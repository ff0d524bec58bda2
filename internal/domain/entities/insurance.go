package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidClaimTransition = errors.New("invalid insurance claim status transition")

// InsurancePolicy is a patient's insurance policy.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (patient_id-index): patient_id
//   - policy number uniqueness is kept by a marker item in the counters table
type InsurancePolicy struct {
	ID                  string         `json:"id"`
	PatientID           string         `json:"patient_id"`
	InsuranceProviderID string         `json:"insurance_provider_id,omitempty"`
	ProviderName        string         `json:"provider_name"`
	PolicyNumber        string         `json:"policy_number"`
	MemberID            string         `json:"member_id"`
	ValidFrom           time.Time      `json:"valid_from"`
	ValidTo             time.Time      `json:"valid_to"`
	CoverageDetails     map[string]any `json:"coverage_details_json"`
	IsActive            bool           `json:"is_active"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// IsExpired reports whether the policy validity ended before the given day.
func (p InsurancePolicy) IsExpired(now time.Time) bool {
	return truncateDay(now).After(truncateDay(p.ValidTo))
}

type ClaimStatus string

const (
	ClaimStatusSubmitted         ClaimStatus = "SUBMITTED"
	ClaimStatusProcessing        ClaimStatus = "PROCESSING"
	ClaimStatusAwaitingDocuments ClaimStatus = "AWAITING_DOCUMENTS"
	ClaimStatusApproved          ClaimStatus = "APPROVED"
	ClaimStatusPartiallyApproved ClaimStatus = "PARTIALLY_APPROVED"
	ClaimStatusRejected          ClaimStatus = "REJECTED"
	ClaimStatusPaidByInsurer     ClaimStatus = "PAID_BY_INSURER"
	ClaimStatusClosed            ClaimStatus = "CLOSED"
)

var claimTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusSubmitted:         {ClaimStatusProcessing, ClaimStatusAwaitingDocuments, ClaimStatusApproved, ClaimStatusPartiallyApproved, ClaimStatusRejected},
	ClaimStatusProcessing:        {ClaimStatusAwaitingDocuments, ClaimStatusApproved, ClaimStatusPartiallyApproved, ClaimStatusRejected},
	ClaimStatusAwaitingDocuments: {ClaimStatusProcessing, ClaimStatusApproved, ClaimStatusPartiallyApproved, ClaimStatusRejected},
	ClaimStatusApproved:          {ClaimStatusPaidByInsurer, ClaimStatusClosed},
	ClaimStatusPartiallyApproved: {ClaimStatusPaidByInsurer, ClaimStatusClosed},
	ClaimStatusRejected:          {ClaimStatusClosed},
	ClaimStatusPaidByInsurer:     {ClaimStatusClosed},
	ClaimStatusClosed:            nil,
}

func (s ClaimStatus) Valid() bool {
	_, ok := claimTransitions[s]
	return ok
}

// Approved reports APPROVED or PARTIALLY_APPROVED.
func (s ClaimStatus) Approved() bool {
	return s == ClaimStatusApproved || s == ClaimStatusPartiallyApproved
}

// CanTransitionClaim reports whether from -> to follows the claim lifecycle.
// Same-status updates are allowed; they only touch amounts and notes.
func CanTransitionClaim(from, to ClaimStatus) bool {
	if from == to {
		return to.Valid()
	}
	for _, next := range claimTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// InsuranceClaim requests reimbursement from a policy against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//   - GSI (policy_id-index): policy_id
//
// PayoutPaymentID is set once the approved amount was booked on the invoice, so a
// claim pays out at most once.
type InsuranceClaim struct {
	ID                   string           `json:"id"`
	InvoiceID            string           `json:"invoice_id"`
	PolicyID             string           `json:"insurance_policy"`
	SubmissionDate       time.Time        `json:"submission_date"`
	ClaimAmount          decimal.Decimal  `json:"claim_amount"`
	ApprovedAmount       *decimal.Decimal `json:"approved_amount,omitempty"`
	RejectedAmount       *decimal.Decimal `json:"rejected_amount,omitempty"`
	Status               ClaimStatus      `json:"status"`
	InsurerNotes         string           `json:"insurer_notes,omitempty"`
	HospitalNotes        string           `json:"hospital_notes,omitempty"`
	ClaimReferenceNumber string           `json:"claim_reference_number,omitempty"`
	PayoutPaymentID      string           `json:"payout_payment_id,omitempty"`
	Version              int64            `json:"version"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// TransitionTo moves the claim along its lifecycle.
func (c *InsuranceClaim) TransitionTo(next ClaimStatus) error {
	if !CanTransitionClaim(c.Status, next) {
		return ErrInvalidClaimTransition
	}
	c.Status = next
	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
