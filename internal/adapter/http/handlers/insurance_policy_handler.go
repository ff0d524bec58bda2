package handlers

import (
	"net/http"
	"time"

	request "billing_insurance/internal/adapter/http/dto/request"
	response "billing_insurance/internal/adapter/http/dto/response"
	"billing_insurance/internal/usecase"
	"billing_insurance/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InsurancePolicyHandler manages the policies patients bill their insurers through.

type InsurancePolicyHandler struct {
	usecase usecase.IInsurancePolicyUseCase
	log     *zap.Logger
	now     func() time.Time
}

func NewInsurancePolicyHandler(uc usecase.IInsurancePolicyUseCase, log *zap.Logger) *InsurancePolicyHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsurancePolicyHandler{usecase: uc, log: log, now: time.Now}
}

// CreatePolicy godoc
// @Summary      Register an insurance policy
// @Tags         insurance-policies
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePolicyRequest  true  "Policy"
// @Success      201      {object}  response.PolicyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-policies/ [post]
func (h *InsurancePolicyHandler) CreatePolicy(c *gin.Context) {
	h.create(c, "")
}

// CreatePatientPolicy godoc
// @Summary      Register an insurance policy for a patient
// @Tags         insurance-policies
// @Accept       json
// @Produce      json
// @Param        patient_id  path      string                       true  "Patient id"
// @Param        payload     body      request.CreatePolicyRequest  true  "Policy"
// @Success      201         {object}  response.PolicyResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /patients/{patient_id}/insurance-policies/ [post]
func (h *InsurancePolicyHandler) CreatePatientPolicy(c *gin.Context) {
	h.create(c, c.Param("patient_id"))
}

func (h *InsurancePolicyHandler) create(c *gin.Context, patientID string) {
	var payload request.CreatePolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[policy][handler] invalid payload", zap.Error(err))
		respondBindError(c, err)
		return
	}
	in, err := payload.ToInput(patientID)
	if err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Info("[policy][handler] create failed", zap.String("patient_id", in.PatientID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPolicy(p, h.now()))
}

// ListPolicies godoc
// @Summary      List insurance policies
// @Tags         insurance-policies
// @Produce      json
// @Param        patient_id  query     string  false  "Patient id"
// @Success      200         {array}   response.PolicyResponse
// @Security     Bearer
// @Router       /insurance-policies/ [get]
func (h *InsurancePolicyHandler) ListPolicies(c *gin.Context) {
	h.list(c, c.Query("patient_id"))
}

// ListPatientPolicies godoc
// @Summary      List the insurance policies of a patient
// @Tags         insurance-policies
// @Produce      json
// @Param        patient_id  path      string  true  "Patient id"
// @Success      200         {array}   response.PolicyResponse
// @Security     Bearer
// @Router       /patients/{patient_id}/insurance-policies/ [get]
func (h *InsurancePolicyHandler) ListPatientPolicies(c *gin.Context) {
	h.list(c, c.Param("patient_id"))
}

func (h *InsurancePolicyHandler) list(c *gin.Context, patientID string) {
	policies, err := h.usecase.List(c.Request.Context(), patientID)
	if err != nil {
		h.log.Warn("[policy][handler] list failed", zap.String("patient_id", patientID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(policies, h.now()))
}

// GetPolicy godoc
// @Summary      Get an insurance policy
// @Tags         insurance-policies
// @Produce      json
// @Param        id   path      string  true  "Policy id"
// @Success      200  {object}  response.PolicyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-policies/{id}/ [get]
func (h *InsurancePolicyHandler) GetPolicy(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(p, h.now()))
}

// UpdatePolicy godoc
// @Summary      Update an insurance policy
// @Tags         insurance-policies
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Policy id"
// @Param        payload  body      request.UpdatePolicyRequest  true  "Fields to change"
// @Success      200      {object}  response.PolicyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-policies/{id}/ [patch]
func (h *InsurancePolicyHandler) UpdatePolicy(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.log.Info("[policy][handler] update failed", zap.String("policy_id", id), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(p, h.now()))
}

// DeletePolicy godoc
// @Summary      Delete an insurance policy
// @Description  Policies referenced by claims cannot be deleted.
// @Tags         insurance-policies
// @Param        id   path  string  true  "Policy id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-policies/{id}/ [delete]
func (h *InsurancePolicyHandler) DeletePolicy(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.log.Info("[policy][handler] delete failed", zap.String("policy_id", id), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
