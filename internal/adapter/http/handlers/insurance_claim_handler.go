package handlers

import (
	"net/http"

	request "billing_insurance/internal/adapter/http/dto/request"
	response "billing_insurance/internal/adapter/http/dto/response"
	"billing_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InsuranceClaimHandler handles claim submission and the insurer's answers.

type InsuranceClaimHandler struct {
	usecase usecase.IInsuranceClaimUseCase
	log     *zap.Logger
}

func NewInsuranceClaimHandler(uc usecase.IInsuranceClaimUseCase, log *zap.Logger) *InsuranceClaimHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsuranceClaimHandler{usecase: uc, log: log}
}

// SubmitClaim godoc
// @Summary      Submit an insurance claim for an invoice
// @Tags         insurance-claims
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SubmitClaimRequest  true  "Claim"
// @Success      201      {object}  response.ClaimResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-claims/ [post]
func (h *InsuranceClaimHandler) SubmitClaim(c *gin.Context) {
	var payload request.SubmitClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[claim][handler] invalid payload", zap.Error(err))
		respondBindError(c, err)
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.log.Info("[claim][handler] submit failed", zap.String("invoice_id", payload.InvoiceID), zap.String("policy_id", payload.PolicyID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClaimResult(res))
}

// UpdateClaim godoc
// @Summary      Record the insurer's answer to a claim
// @Description  Moving a claim into APPROVED or PARTIALLY_APPROVED books the approved amount on the invoice once.
// @Tags         insurance-claims
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Claim id"
// @Param        payload  body      request.UpdateClaimRequest  true  "Claim update"
// @Success      200      {object}  response.ClaimResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-claims/{id}/ [patch]
func (h *InsuranceClaimHandler) UpdateClaim(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[claim][handler] invalid payload", zap.String("claim_id", id), zap.Error(err))
		respondBindError(c, err)
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), payload.ToCommand(id))
	if err != nil {
		h.log.Info("[claim][handler] update failed", zap.String("claim_id", id), zap.String("status", string(payload.Status)), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaimResult(res))
}

// ListClaims godoc
// @Summary      List insurance claims
// @Tags         insurance-claims
// @Produce      json
// @Param        invoice_id  query     string  false  "Invoice id"
// @Success      200         {array}   response.ClaimResponse
// @Security     Bearer
// @Router       /insurance-claims/ [get]
func (h *InsuranceClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.usecase.List(c.Request.Context(), c.Query("invoice_id"))
	if err != nil {
		h.log.Warn("[claim][handler] list failed", zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}

// GetClaim godoc
// @Summary      Get an insurance claim
// @Tags         insurance-claims
// @Produce      json
// @Param        id   path      string  true  "Claim id"
// @Success      200  {object}  response.ClaimResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /insurance-claims/{id}/ [get]
func (h *InsuranceClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}
