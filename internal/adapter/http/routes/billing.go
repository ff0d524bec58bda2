package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathInvoices        = "/invoices"
	PathPayments        = "/payments"
	PathPatients        = "/patients"
	PathInternalBilling = "/billing/internal"
	PathInsurancePolicy = "/insurance-policies"
	PathInsuranceClaims = "/insurance-claims"
)

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/", h.Invoices.ListInvoices)
		invoices.POST("/", h.Invoices.CreateInvoice)
		invoices.GET("/:id/", h.Invoices.GetInvoice)
		invoices.PATCH("/:id/", h.Invoices.UpdateInvoiceStatus)
		invoices.POST("/:id/pay/", h.Payments.PayInvoice)
		invoices.GET("/:id/payments/", h.Payments.ListInvoicePayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id/", h.Payments.GetPayment)
	}

	patients := rg.Group(PathPatients)
	{
		patients.GET("/:patient_id/invoices/", h.Invoices.ListPatientInvoices)
	}

	// Called by the appointment, pharmacy and laboratory services.
	internal := rg.Group(PathInternalBilling)
	{
		internal.POST("/create-invoice-for-appointment/", h.InternalInvoices.CreateForAppointment)
		internal.POST("/create-invoice-for-medication/", h.InternalInvoices.CreateForMedication)
		internal.POST("/create-invoice-for-labtest/", h.InternalInvoices.CreateForLabTest)
	}
}

func addInsuranceRoutes(rg *gin.RouterGroup, h Handlers) {
	policies := rg.Group(PathInsurancePolicy)
	{
		policies.GET("/", h.Policies.ListPolicies)
		policies.POST("/", h.Policies.CreatePolicy)
		policies.GET("/:id/", h.Policies.GetPolicy)
		policies.PATCH("/:id/", h.Policies.UpdatePolicy)
		policies.DELETE("/:id/", h.Policies.DeletePolicy)
	}

	patients := rg.Group(PathPatients)
	{
		patients.GET("/:patient_id/insurance-policies/", h.Policies.ListPatientPolicies)
		patients.POST("/:patient_id/insurance-policies/", h.Policies.CreatePatientPolicy)
	}

	claims := rg.Group(PathInsuranceClaims)
	{
		claims.GET("/", h.Claims.ListClaims)
		claims.POST("/", h.Claims.SubmitClaim)
		claims.GET("/:id/", h.Claims.GetClaim)
		claims.PATCH("/:id/", h.Claims.UpdateClaim)
	}
}
