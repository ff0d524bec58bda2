package response

import (
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"
)

type ClaimResponse struct {
	ID                   string    `json:"id"`
	InvoiceID            string    `json:"invoice_id"`
	PolicyID             string    `json:"insurance_policy"`
	SubmissionDate       string    `json:"submission_date"`
	ClaimAmount          string    `json:"claim_amount"`
	ApprovedAmount       *string   `json:"approved_amount"`
	RejectedAmount       *string   `json:"rejected_amount"`
	Status               string    `json:"status"`
	InsurerNotes         string    `json:"insurer_notes"`
	HospitalNotes        string    `json:"hospital_notes"`
	ClaimReferenceNumber string    `json:"claim_reference_number"`
	PayoutPaymentID      string    `json:"payout_payment_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func FromClaim(c entities.InsuranceClaim) ClaimResponse {
	return ClaimResponse{
		ID:                   c.ID,
		InvoiceID:            c.InvoiceID,
		PolicyID:             c.PolicyID,
		SubmissionDate:       date(c.SubmissionDate),
		ClaimAmount:          money(c.ClaimAmount),
		ApprovedAmount:       optionalMoney(c.ApprovedAmount),
		RejectedAmount:       optionalMoney(c.RejectedAmount),
		Status:               string(c.Status),
		InsurerNotes:         c.InsurerNotes,
		HospitalNotes:        c.HospitalNotes,
		ClaimReferenceNumber: c.ClaimReferenceNumber,
		PayoutPaymentID:      c.PayoutPaymentID,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func FromClaims(claims []entities.InsuranceClaim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}

// ClaimResultResponse is a claim together with the invoice balance it left behind.
type ClaimResultResponse struct {
	ClaimResponse
	InvoiceStatus    string           `json:"invoice_status"`
	RemainingBalance string           `json:"remaining_balance"`
	Payout           *PaymentResponse `json:"payout,omitempty"`
}

func FromClaimResult(r usecase.ClaimResult) ClaimResultResponse {
	res := ClaimResultResponse{
		ClaimResponse:    FromClaim(r.Claim),
		InvoiceStatus:    string(r.Invoice.Status),
		RemainingBalance: money(r.Invoice.AmountDue()),
	}
	if r.Payout != nil {
		payout := FromPayment(*r.Payout)
		res.Payout = &payout
	}
	return res
}

type PolicyResponse struct {
	ID                  string         `json:"id"`
	PatientID           string         `json:"patient_id"`
	InsuranceProviderID string         `json:"insurance_provider_id,omitempty"`
	ProviderName        string         `json:"provider_name"`
	PolicyNumber        string         `json:"policy_number"`
	MemberID            string         `json:"member_id"`
	ValidFrom           string         `json:"valid_from"`
	ValidTo             string         `json:"valid_to"`
	CoverageDetails     map[string]any `json:"coverage_details_json"`
	IsActive            bool           `json:"is_active"`
	IsExpired           bool           `json:"is_expired"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// FromPolicy renders a policy; is_expired is evaluated against now.
func FromPolicy(p entities.InsurancePolicy, now time.Time) PolicyResponse {
	coverage := p.CoverageDetails
	if coverage == nil {
		coverage = map[string]any{}
	}
	return PolicyResponse{
		ID:                  p.ID,
		PatientID:           p.PatientID,
		InsuranceProviderID: p.InsuranceProviderID,
		ProviderName:        p.ProviderName,
		PolicyNumber:        p.PolicyNumber,
		MemberID:            p.MemberID,
		ValidFrom:           date(p.ValidFrom),
		ValidTo:             date(p.ValidTo),
		CoverageDetails:     coverage,
		IsActive:            p.IsActive,
		IsExpired:           p.IsExpired(now),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromPolicies(policies []entities.InsurancePolicy, now time.Time) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(policies))
	for _, p := range policies {
		out = append(out, FromPolicy(p, now))
	}
	return out
}
