package routes

import (
	"net/http"

	_ "billing_insurance/docs" // swagger spec
	"billing_insurance/internal/adapter/http/handlers"
	"billing_insurance/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Invoices         *handlers.InvoiceHandler
	InternalInvoices *handlers.InternalInvoiceHandler
	Payments         *handlers.PaymentHandler
	Policies         *handlers.InsurancePolicyHandler
	Claims           *handlers.InsuranceClaimHandler
}

// NewRouter builds the gin engine. A nil identity provider disables authentication.
func NewRouter(h Handlers, idp middleware.IdentityProvider, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(&router.RouterGroup)

	api := router.Group("/", middleware.Auth(idp, log))
	addBillingRoutes(api, h)
	addInsuranceRoutes(api, h)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
