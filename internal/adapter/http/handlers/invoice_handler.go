package handlers

import (
	"net/http"

	request "billing_insurance/internal/adapter/http/dto/request"
	response "billing_insurance/internal/adapter/http/dto/response"
	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"
	"billing_insurance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves the invoice ledger to billing staff and patients.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, log *zap.Logger) *InvoiceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, log: log}
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateInvoiceRequest  true  "Invoice"
// @Success      201      {object}  response.InvoiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/ [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[invoice][handler] invalid payload", zap.Error(err))
		respondBindError(c, err)
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.log.Warn("[invoice][handler] create failed", zap.String("patient_id", payload.PatientID.String()), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        patient_id  query     string  false  "Patient id"
// @Param        status      query     string  false  "Invoice status"
// @Success      200         {array}   response.InvoiceResponse
// @Security     Bearer
// @Router       /invoices/ [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	h.list(c, interfaces.InvoiceFilter{
		PatientID: c.Query("patient_id"),
		Status:    entities.InvoiceStatus(c.Query("status")),
	})
}

// ListPatientInvoices godoc
// @Summary      List the invoices of a patient
// @Tags         invoices
// @Produce      json
// @Param        patient_id  path      string  true   "Patient id"
// @Param        status      query     string  false  "Invoice status"
// @Success      200         {array}   response.InvoiceResponse
// @Security     Bearer
// @Router       /patients/{patient_id}/invoices/ [get]
func (h *InvoiceHandler) ListPatientInvoices(c *gin.Context) {
	h.list(c, interfaces.InvoiceFilter{
		PatientID: c.Param("patient_id"),
		Status:    entities.InvoiceStatus(c.Query("status")),
	})
}

func (h *InvoiceHandler) list(c *gin.Context, filter interfaces.InvoiceFilter) {
	invoices, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Warn("[invoice][handler] list failed", zap.String("patient_id", filter.PatientID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary      Get an invoice with its items, payments and claims
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {object}  response.InvoiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/ [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id := c.Param("id")
	details, err := h.usecase.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.log.Info("[invoice][handler] get failed", zap.String("invoice_id", id), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceDetails(details))
}

// UpdateInvoiceStatus godoc
// @Summary      Change an invoice status manually
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                              true  "Invoice id"
// @Param        payload  body      request.UpdateInvoiceStatusRequest  true  "New status"
// @Success      200      {object}  response.InvoiceResponse
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/ [patch]
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status)
	if err != nil {
		h.log.Info("[invoice][handler] status update failed", zap.String("invoice_id", id), zap.String("status", string(payload.Status)), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}
