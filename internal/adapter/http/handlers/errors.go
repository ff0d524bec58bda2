package handlers

import (
	"errors"
	"net/http"

	"billing_insurance/internal/adapter/http/validation"
	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"
	"billing_insurance/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// validationErrors are answered with 400 and the error text as message.
var validationErrors = []error{
	usecase.ErrInvalidInvoiceID,
	usecase.ErrInvalidPatientID,
	usecase.ErrInvalidInvoiceItems,
	usecase.ErrInvalidInvoiceTotal,
	usecase.ErrInvalidInvoiceStatus,
	usecase.ErrInvalidPaymentID,
	usecase.ErrInvalidPaymentMethod,
	usecase.ErrInvalidGatewayPayload,
	usecase.ErrInvalidPolicyID,
	usecase.ErrInvalidPolicy,
	usecase.ErrInvalidPolicyWindow,
	usecase.ErrInvalidClaimID,
	usecase.ErrInvalidClaimAmount,
	usecase.ErrInvalidClaimStatus,
	usecase.ErrInvalidResolvedAmount,
	usecase.ErrPolicyPatientMismatch,
	usecase.ErrPolicyInactive,
	usecase.ErrPolicyExpired,
	usecase.ErrInvoiceNotClaimable,
	entities.ErrInvalidPaymentAmount,
	entities.ErrPaymentExceedsBalance,
	entities.ErrInvoiceAlreadyPaid,
	entities.ErrInvoiceClosed,
	entities.ErrInvalidMoneyPrecision,
}

func mapBillingError(err error) *pkg.AppError {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return pkg.NewDomainError("VALIDATION_ERROR", target.Error(), err, http.StatusBadRequest)
		}
	}

	switch {
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Insurance policy not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Insurance claim not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invoice status transition not allowed", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidClaimTransition):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_TRANSITION", "Insurance claim status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate), errors.Is(err, usecase.ErrInvoiceBusy):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "Invoice is being updated, retry the request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceNumberUnavailable):
		return pkg.NewDomainError("INVOICE_NUMBER_CONFLICT", "Could not allocate an invoice number, retry the request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNumberConflict):
		return pkg.NewDomainErrorSimple("POLICY_NUMBER_CONFLICT", "Policy number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyInUse):
		return pkg.NewDomainErrorSimple("POLICY_IN_USE", "Insurance policy is referenced by claims", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment declined by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// respondBindError answers a payload that failed JSON decoding or binding rules.
func respondBindError(c *gin.Context, err error) {
	respondError(c, errInvalidRequest.WithMessage(validation.FirstErrorMessage(err)))
}
