package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"billing_insurance/internal/adapter/http/handlers/mocks"
	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func policyFixture() entities.InsurancePolicy {
	return entities.InsurancePolicy{
		ID:           "pol-1",
		PatientID:    "42",
		ProviderName: "Acme Health",
		PolicyNumber: "ACME-001",
		ValidFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:      time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:     true,
	}
}

func newPolicyHandler(uc usecase.IInsurancePolicyUseCase) *InsurancePolicyHandler {
	h := NewInsurancePolicyHandler(uc, zap.NewNop())
	h.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return h
}

func TestInsurancePolicyHandler_Create(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.POST("/insurance-policies/", h.CreatePolicy)

		w := doJSON(r, http.MethodPost, "/insurance-policies/", `{"patient_id": 42, "provider_name": "Acme", "policy_number": "A-1", "valid_from": "01/01/2024", "valid_to": "2024-12-31"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.POST("/insurance-policies/", h.CreatePolicy)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InsurancePolicy{}, usecase.ErrPolicyNumberConflict)

		w := doJSON(r, http.MethodPost, "/insurance-policies/", `{"patient_id": 42, "provider_name": "Acme", "policy_number": "A-1", "valid_from": "2024-01-01", "valid_to": "2024-12-31"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("patient route overrides body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.POST("/patients/:patient_id/insurance-policies/", h.CreatePatientPolicy)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.PolicyInput) (entities.InsurancePolicy, error) {
				if in.PatientID != "42" || in.CoverageDetails["copay"] != "10%" {
					t.Fatalf("unexpected input %+v", in)
				}
				return policyFixture(), nil
			},
		)

		w := doJSON(r, http.MethodPost, "/patients/42/insurance-policies/", `{"patient_id": 7, "provider_name": "Acme", "policy_number": "A-1", "valid_from": "2024-01-01", "valid_to": "2024-12-31", "coverage_details_json": {"copay": "10%"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["is_expired"] != true || body["valid_to"] != "2024-12-31" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestInsurancePolicyHandler_UpdateAndDelete(t *testing.T) {
	t.Run("patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.PATCH("/insurance-policies/:id/", h.UpdatePolicy)

		uc.EXPECT().Update(gomock.Any(), "pol-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch usecase.PolicyPatch) (entities.InsurancePolicy, error) {
				if patch.IsActive == nil || *patch.IsActive || patch.ValidTo != nil {
					t.Fatalf("unexpected patch %+v", patch)
				}
				p := policyFixture()
				p.IsActive = false
				return p, nil
			},
		)

		w := doJSON(r, http.MethodPatch, "/insurance-policies/pol-1/", `{"is_active": false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["is_active"] != false {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("delete referenced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.DELETE("/insurance-policies/:id/", h.DeletePolicy)

		uc.EXPECT().Delete(gomock.Any(), "pol-1").Return(usecase.ErrPolicyInUse)

		w := doJSON(r, http.MethodDelete, "/insurance-policies/pol-1/", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.DELETE("/insurance-policies/:id/", h.DeletePolicy)

		uc.EXPECT().Delete(gomock.Any(), "pol-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/insurance-policies/pol-1/", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("list patient policies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurancePolicyUseCase(ctrl)
		h := newPolicyHandler(uc)

		r := gin.New()
		r.GET("/patients/:patient_id/insurance-policies/", h.ListPatientPolicies)

		uc.EXPECT().List(gomock.Any(), "42").Return([]entities.InsurancePolicy{policyFixture()}, nil)

		w := doJSON(r, http.MethodGet, "/patients/42/insurance-policies/", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
