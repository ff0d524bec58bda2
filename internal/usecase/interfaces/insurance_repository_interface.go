package interfaces

import (
	"context"
	"errors"

	"billing_insurance/internal/domain/entities"
)

var (
	// ErrDuplicatePolicyNumber is returned when a policy number is already registered.
	ErrDuplicatePolicyNumber = errors.New("policy number already registered")
	// ErrPolicyReferenced is returned when deleting a policy that claims still point at.
	ErrPolicyReferenced = errors.New("policy is referenced by claims")
	// ErrPolicyMissing is returned when a claim is committed against a policy that no longer exists.
	ErrPolicyMissing = errors.New("policy does not exist")
)

// IInsurancePolicyRepository abstracts DynamoDB persistence for InsurancePolicy.
//
// Each policy row carries the number of claims filed against it; the ledger bumps it
// when a claim is inserted and Delete refuses while it is non-zero.

type IInsurancePolicyRepository interface {
	Create(ctx context.Context, p entities.InsurancePolicy) (entities.InsurancePolicy, error)
	GetByID(ctx context.Context, id string) (entities.InsurancePolicy, error)
	List(ctx context.Context, patientID string) ([]entities.InsurancePolicy, error)
	Update(ctx context.Context, p entities.InsurancePolicy) (entities.InsurancePolicy, error)
	Delete(ctx context.Context, id string) error
}

// IInsuranceClaimRepository reads claims. Claim writes go through ILedgerRepository.

type IInsuranceClaimRepository interface {
	GetByID(ctx context.Context, id string) (entities.InsuranceClaim, error)
	List(ctx context.Context, invoiceID string) ([]entities.InsuranceClaim, error)
	ExistsForPolicy(ctx context.Context, policyID string) (bool, error)
}
