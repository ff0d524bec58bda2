package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing_insurance/internal/adapter/http/handlers"
	"billing_insurance/internal/adapter/http/handlers/mocks"
	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/domain/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type staticProvider struct{}

func (staticProvider) Resolve(_ context.Context, _ string) (identity.Identity, error) {
	return identity.Identity{UserID: "1"}, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	invoices := mocks.NewMockIInvoiceUseCase(ctrl)
	log := zap.NewNop()
	h := Handlers{
		Invoices:         handlers.NewInvoiceHandler(invoices, log),
		InternalInvoices: handlers.NewInternalInvoiceHandler(invoices, log),
		Payments:         handlers.NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl), log),
		Policies:         handlers.NewInsurancePolicyHandler(mocks.NewMockIInsurancePolicyUseCase(ctrl), log),
		Claims:           handlers.NewInsuranceClaimHandler(mocks.NewMockIInsuranceClaimUseCase(ctrl), log),
	}
	return NewRouter(h, staticProvider{}, log), invoices
}

func TestNewRouter(t *testing.T) {
	t.Run("ping is public", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("api requires a token", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("authenticated request reaches the handler", func(t *testing.T) {
		r, invoices := newTestRouter(t)
		invoices.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Invoice{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/patients/42/invoices/", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("trailing slash redirect", func(t *testing.T) {
		r, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusMovedPermanently {
			t.Fatalf("expected 301, got %d", w.Code)
		}
	})
}
