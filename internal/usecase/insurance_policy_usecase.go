package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPolicyNotFound       = errors.New("insurance policy not found")
	ErrInvalidPolicyID      = errors.New("invalid insurance policy id")
	ErrInvalidPolicy        = errors.New("invalid insurance policy")
	ErrInvalidPolicyWindow  = errors.New("valid_to must not be before valid_from")
	ErrPolicyNumberConflict = errors.New("policy number already registered")
	ErrPolicyInUse          = errors.New("insurance policy is referenced by claims")
)

// PolicyInput carries the writable policy fields.
type PolicyInput struct {
	PatientID           string
	InsuranceProviderID string
	ProviderName        string
	PolicyNumber        string
	MemberID            string
	ValidFrom           time.Time
	ValidTo             time.Time
	CoverageDetails     map[string]any
	IsActive            *bool
}

// PolicyPatch is a partial update. The policy number and patient cannot change.
type PolicyPatch struct {
	InsuranceProviderID *string
	ProviderName        *string
	MemberID            *string
	ValidFrom           *time.Time
	ValidTo             *time.Time
	CoverageDetails     map[string]any
	IsActive            *bool
}

// IInsurancePolicyUseCase manages patient insurance policies.

type IInsurancePolicyUseCase interface {
	Create(ctx context.Context, in PolicyInput) (entities.InsurancePolicy, error)
	GetByID(ctx context.Context, id string) (entities.InsurancePolicy, error)
	List(ctx context.Context, patientID string) ([]entities.InsurancePolicy, error)
	Update(ctx context.Context, id string, patch PolicyPatch) (entities.InsurancePolicy, error)
	Delete(ctx context.Context, id string) error
}

type InsurancePolicyUseCase struct {
	deps Dependencies
}

var _ IInsurancePolicyUseCase = (*InsurancePolicyUseCase)(nil)

func NewInsurancePolicyUseCase(deps Dependencies) *InsurancePolicyUseCase {
	return &InsurancePolicyUseCase{deps: deps.withDefaults()}
}

func (u *InsurancePolicyUseCase) Create(ctx context.Context, in PolicyInput) (entities.InsurancePolicy, error) {
	p := entities.InsurancePolicy{
		ID:                  uuid.NewString(),
		PatientID:           strings.TrimSpace(in.PatientID),
		InsuranceProviderID: strings.TrimSpace(in.InsuranceProviderID),
		ProviderName:        strings.TrimSpace(in.ProviderName),
		PolicyNumber:        strings.TrimSpace(in.PolicyNumber),
		MemberID:            strings.TrimSpace(in.MemberID),
		ValidFrom:           in.ValidFrom.UTC(),
		ValidTo:             in.ValidTo.UTC(),
		CoverageDetails:     in.CoverageDetails,
		IsActive:            true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if p.PatientID == "" {
		return entities.InsurancePolicy{}, ErrInvalidPatientID
	}
	if p.ProviderName == "" || p.PolicyNumber == "" || p.ValidFrom.IsZero() || p.ValidTo.IsZero() {
		return entities.InsurancePolicy{}, ErrInvalidPolicy
	}
	if p.ValidTo.Before(p.ValidFrom) {
		return entities.InsurancePolicy{}, ErrInvalidPolicyWindow
	}
	if p.CoverageDetails == nil {
		p.CoverageDetails = map[string]any{}
	}
	now := u.deps.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.deps.Policies.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicatePolicyNumber) {
			return entities.InsurancePolicy{}, ErrPolicyNumberConflict
		}
		u.deps.Log.Error("[policy][usecase] repository create failed", zap.String("patient_id", p.PatientID), zap.Error(err))
		return entities.InsurancePolicy{}, err
	}
	u.deps.Log.Info("[policy][usecase] policy created", zap.String("policy_id", created.ID), zap.String("patient_id", created.PatientID))
	return created, nil
}

func (u *InsurancePolicyUseCase) GetByID(ctx context.Context, id string) (entities.InsurancePolicy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InsurancePolicy{}, ErrInvalidPolicyID
	}

	p, err := u.deps.Policies.GetByID(ctx, id)
	if err != nil {
		return entities.InsurancePolicy{}, err
	}
	if p.ID == "" {
		return entities.InsurancePolicy{}, ErrPolicyNotFound
	}
	return p, nil
}

// List returns the policies of one patient, or every policy when patientID is empty.
func (u *InsurancePolicyUseCase) List(ctx context.Context, patientID string) ([]entities.InsurancePolicy, error) {
	return u.deps.Policies.List(ctx, strings.TrimSpace(patientID))
}

func (u *InsurancePolicyUseCase) Update(ctx context.Context, id string, patch PolicyPatch) (entities.InsurancePolicy, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InsurancePolicy{}, err
	}

	if patch.InsuranceProviderID != nil {
		p.InsuranceProviderID = strings.TrimSpace(*patch.InsuranceProviderID)
	}
	if patch.ProviderName != nil {
		name := strings.TrimSpace(*patch.ProviderName)
		if name == "" {
			return entities.InsurancePolicy{}, ErrInvalidPolicy
		}
		p.ProviderName = name
	}
	if patch.MemberID != nil {
		p.MemberID = strings.TrimSpace(*patch.MemberID)
	}
	if patch.ValidFrom != nil {
		p.ValidFrom = patch.ValidFrom.UTC()
	}
	if patch.ValidTo != nil {
		p.ValidTo = patch.ValidTo.UTC()
	}
	if patch.CoverageDetails != nil {
		p.CoverageDetails = patch.CoverageDetails
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	if p.ValidTo.Before(p.ValidFrom) {
		return entities.InsurancePolicy{}, ErrInvalidPolicyWindow
	}
	p.UpdatedAt = u.deps.Now()

	updated, err := u.deps.Policies.Update(ctx, p)
	if err != nil {
		return entities.InsurancePolicy{}, err
	}
	if updated.ID == "" {
		return entities.InsurancePolicy{}, ErrPolicyNotFound
	}
	u.deps.Log.Info("[policy][usecase] policy updated", zap.String("policy_id", updated.ID))
	return updated, nil
}

// Delete removes a policy unless a claim still references it.
func (u *InsurancePolicyUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inUse, err := u.deps.Claims.ExistsForPolicy(ctx, p.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrPolicyInUse
	}
	// The index lags behind new claims; the repository refuses while the policy's
	// claim count is non-zero.
	if err := u.deps.Policies.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, interfaces.ErrPolicyReferenced) {
			return ErrPolicyInUse
		}
		return err
	}
	u.deps.Log.Info("[policy][usecase] policy deleted", zap.String("policy_id", p.ID))
	return nil
}
