package handlers

import (
	"net/http"

	request "billing_insurance/internal/adapter/http/dto/request"
	response "billing_insurance/internal/adapter/http/dto/response"
	"billing_insurance/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles patient payments against invoices.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, log: log}
}

// PayInvoice godoc
// @Summary      Pay an invoice
// @Description  Records a patient payment. With gateway_payload (or mp_payload) the amount is charged through Mercado Pago first.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Invoice id"
// @Param        payload  body      request.PayInvoiceRequest  true  "Payment"
// @Success      200      {object}  response.PaymentReceiptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      402      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/pay/ [post]
func (h *PaymentHandler) PayInvoice(c *gin.Context) {
	invoiceID := c.Param("id")
	h.log.Info("[payment][handler] pay start", zap.String("invoice_id", invoiceID))

	var payload request.PayInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[payment][handler] invalid payload", zap.String("invoice_id", invoiceID), zap.Error(err))
		respondBindError(c, err)
		return
	}

	receipt, err := h.usecase.ApplyPayment(c.Request.Context(), payload.ToCommand(invoiceID))
	if err != nil {
		h.log.Info("[payment][handler] pay failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	h.log.Info("[payment][handler] pay success",
		zap.String("invoice_id", invoiceID),
		zap.String("payment_id", receipt.Payment.ID),
		zap.String("invoice_status", string(receipt.Invoice.Status)),
	)
	c.JSON(http.StatusOK, response.FromPaymentReceipt(receipt))
}

// ListInvoicePayments godoc
// @Summary      List the payments of an invoice
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Invoice id"
// @Success      200  {array}   response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/payments/ [get]
func (h *PaymentHandler) ListInvoicePayments(c *gin.Context) {
	invoiceID := c.Param("id")
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.log.Info("[payment][handler] list failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payments/{id}/ [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")
	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, mapBillingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}
