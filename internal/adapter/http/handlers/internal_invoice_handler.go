package handlers

import (
	"net/http"

	request "billing_insurance/internal/adapter/http/dto/request"
	response "billing_insurance/internal/adapter/http/dto/response"
	"billing_insurance/internal/usecase"
	"billing_insurance/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	appointmentInvoiceDetail = "Invoice created successfully for appointment."
	medicationInvoiceDetail  = "Invoice created successfully for medication."
	labTestInvoiceDetail     = "Invoice created successfully for lab tests."
)

// InternalInvoiceHandler receives invoice requests from the appointment, pharmacy and
// laboratory services.

type InternalInvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     *zap.Logger
}

func NewInternalInvoiceHandler(uc usecase.IInvoiceUseCase, log *zap.Logger) *InternalInvoiceHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InternalInvoiceHandler{usecase: uc, log: log}
}

// CreateForAppointment godoc
// @Summary      Create the invoice of a completed appointment
// @Tags         internal
// @Accept       json
// @Produce      json
// @Param        payload  body      request.AppointmentInvoiceRequest  true  "Appointment"
// @Success      201      {object}  response.InvoiceCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /billing/internal/create-invoice-for-appointment/ [post]
func (h *InternalInvoiceHandler) CreateForAppointment(c *gin.Context) {
	var payload request.AppointmentInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[invoice][internal] invalid appointment payload", zap.Error(err))
		respondBindError(c, err)
		return
	}
	h.create(c, "appointment", appointmentInvoiceDetail, payload.ToCommand())
}

// CreateForMedication godoc
// @Summary      Create the invoice of a prescription dispense
// @Tags         internal
// @Accept       json
// @Produce      json
// @Param        payload  body      request.MedicationInvoiceRequest  true  "Dispense"
// @Success      201      {object}  response.InvoiceCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /billing/internal/create-invoice-for-medication/ [post]
func (h *InternalInvoiceHandler) CreateForMedication(c *gin.Context) {
	var payload request.MedicationInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[invoice][internal] invalid medication payload", zap.Error(err))
		respondBindError(c, err)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		respondError(c, pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest))
		return
	}
	h.create(c, "medication", medicationInvoiceDetail, cmd)
}

// CreateForLabTest godoc
// @Summary      Create the invoice of a lab order
// @Tags         internal
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LabTestInvoiceRequest  true  "Lab order"
// @Success      201      {object}  response.InvoiceCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /billing/internal/create-invoice-for-labtest/ [post]
func (h *InternalInvoiceHandler) CreateForLabTest(c *gin.Context) {
	var payload request.LabTestInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[invoice][internal] invalid lab test payload", zap.Error(err))
		respondBindError(c, err)
		return
	}
	h.create(c, "labtest", labTestInvoiceDetail, payload.ToCommand())
}

func (h *InternalInvoiceHandler) create(c *gin.Context, source, detail string, cmd usecase.CreateInvoiceCommand) {
	inv, err := h.usecase.CreateInvoice(c.Request.Context(), cmd)
	if err != nil {
		h.log.Warn("[invoice][internal] create failed", zap.String("source", source), zap.String("patient_id", cmd.PatientID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	h.log.Info("[invoice][internal] invoice created", zap.String("source", source), zap.String("invoice_id", inv.ID), zap.String("invoice_number", inv.InvoiceNumber))
	c.JSON(http.StatusCreated, response.NewInvoiceCreated(detail, inv))
}
