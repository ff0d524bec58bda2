package request

import (
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

type SubmitClaimRequest struct {
	InvoiceID            string           `json:"invoice_id" binding:"required"`
	PolicyID             string           `json:"insurance_policy" binding:"required"`
	ClaimAmount          *decimal.Decimal `json:"claim_amount" binding:"required"`
	HospitalNotes        string           `json:"hospital_notes"`
	ClaimReferenceNumber string           `json:"claim_reference_number"`
}

func (r SubmitClaimRequest) ToCommand() usecase.SubmitClaimCommand {
	return usecase.SubmitClaimCommand{
		InvoiceID:            strings.TrimSpace(r.InvoiceID),
		PolicyID:             strings.TrimSpace(r.PolicyID),
		ClaimAmount:          *r.ClaimAmount,
		HospitalNotes:        strings.TrimSpace(r.HospitalNotes),
		ClaimReferenceNumber: strings.TrimSpace(r.ClaimReferenceNumber),
	}
}

// UpdateClaimRequest carries the insurer's answer. Omitted fields keep their value.
type UpdateClaimRequest struct {
	Status               entities.ClaimStatus `json:"status" binding:"required,claim_status"`
	ApprovedAmount       *decimal.Decimal     `json:"approved_amount"`
	RejectedAmount       *decimal.Decimal     `json:"rejected_amount"`
	InsurerNotes         *string              `json:"insurer_notes"`
	HospitalNotes        *string              `json:"hospital_notes"`
	ClaimReferenceNumber *string              `json:"claim_reference_number"`
}

func (r UpdateClaimRequest) ToCommand(claimID string) usecase.UpdateClaimCommand {
	return usecase.UpdateClaimCommand{
		ClaimID:              claimID,
		Status:               r.Status,
		ApprovedAmount:       r.ApprovedAmount,
		RejectedAmount:       r.RejectedAmount,
		InsurerNotes:         r.InsurerNotes,
		HospitalNotes:        r.HospitalNotes,
		ClaimReferenceNumber: r.ClaimReferenceNumber,
	}
}

// CreatePolicyRequest registers a policy. On the patient-scoped route the patient id
// comes from the path and overrides the body.
type CreatePolicyRequest struct {
	PatientID           ExternalID     `json:"patient_id"`
	InsuranceProviderID ExternalID     `json:"insurance_provider_id"`
	ProviderName        string         `json:"provider_name" binding:"required"`
	PolicyNumber        string         `json:"policy_number" binding:"required"`
	MemberID            string         `json:"member_id"`
	ValidFrom           string         `json:"valid_from" binding:"required"`
	ValidTo             string         `json:"valid_to" binding:"required"`
	CoverageDetails     map[string]any `json:"coverage_details_json"`
	IsActive            *bool          `json:"is_active"`
}

func (r CreatePolicyRequest) ToInput(patientID string) (usecase.PolicyInput, error) {
	from, err := parseDate(r.ValidFrom)
	if err != nil {
		return usecase.PolicyInput{}, err
	}
	to, err := parseDate(r.ValidTo)
	if err != nil {
		return usecase.PolicyInput{}, err
	}
	if strings.TrimSpace(patientID) == "" {
		patientID = r.PatientID.String()
	}
	return usecase.PolicyInput{
		PatientID:           patientID,
		InsuranceProviderID: r.InsuranceProviderID.String(),
		ProviderName:        r.ProviderName,
		PolicyNumber:        r.PolicyNumber,
		MemberID:            r.MemberID,
		ValidFrom:           from,
		ValidTo:             to,
		CoverageDetails:     r.CoverageDetails,
		IsActive:            r.IsActive,
	}, nil
}

// UpdatePolicyRequest is a partial update. Policy number and patient are immutable.
type UpdatePolicyRequest struct {
	InsuranceProviderID *ExternalID    `json:"insurance_provider_id"`
	ProviderName        *string        `json:"provider_name"`
	MemberID            *string        `json:"member_id"`
	ValidFrom           *string        `json:"valid_from"`
	ValidTo             *string        `json:"valid_to"`
	CoverageDetails     map[string]any `json:"coverage_details_json"`
	IsActive            *bool          `json:"is_active"`
}

func (r UpdatePolicyRequest) ToPatch() (usecase.PolicyPatch, error) {
	patch := usecase.PolicyPatch{
		ProviderName:    r.ProviderName,
		MemberID:        r.MemberID,
		CoverageDetails: r.CoverageDetails,
		IsActive:        r.IsActive,
	}
	if r.InsuranceProviderID != nil {
		id := r.InsuranceProviderID.String()
		patch.InsuranceProviderID = &id
	}
	if r.ValidFrom != nil {
		from, err := parseDate(*r.ValidFrom)
		if err != nil {
			return usecase.PolicyPatch{}, err
		}
		patch.ValidFrom = &from
	}
	if r.ValidTo != nil {
		to, err := parseDate(*r.ValidTo)
		if err != nil {
			return usecase.PolicyPatch{}, err
		}
		patch.ValidTo = &to
	}
	return patch, nil
}
