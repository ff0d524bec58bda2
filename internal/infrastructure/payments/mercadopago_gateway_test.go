package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestMercadoPagoGateway_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway(MercadoPagoOptions{Mock: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":40,"external_reference":"inv-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected mock result id=%q status=%q", id, status)
	}
	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["external_reference"] != "inv-1" || resp["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock response %+v", resp)
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(MercadoPagoOptions{}, zap.NewNop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("sdk success", func(t *testing.T) {
		creator := &fakeCreator{resp: &payment.Response{ID: 123, Status: "approved"}}
		g := &MercadoPagoGateway{client: creator, opts: MercadoPagoOptions{AccessToken: "APP_USR-1"}, log: zap.NewNop()}

		id, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":40,"payer":{"email":"buyer@example.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "123" || status != "approved" {
			t.Fatalf("unexpected result id=%q status=%q", id, status)
		}
		if creator.got.TransactionAmount != 40 || creator.got.Payer == nil || creator.got.Payer.Email != "buyer@example.com" {
			t.Fatalf("unexpected sdk request %+v", creator.got)
		}
	})

	t.Run("sdk failure", func(t *testing.T) {
		creator := &fakeCreator{err: errors.New(`{"status":400,"error":"bad_request"}`)}
		g := &MercadoPagoGateway{client: creator, log: zap.NewNop()}

		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{}, log: zap.NewNop()}
		if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMercadoPagoGateway_PayerNormalization(t *testing.T) {
	tests := []struct {
		name      string
		opts      MercadoPagoOptions
		payer     map[string]any
		wantEmail string
		wantID    bool
	}{
		{
			name:      "sandbox fallback email",
			opts:      MercadoPagoOptions{AccessToken: "TEST-123"},
			payer:     map[string]any{},
			wantEmail: sandboxPayerEmail,
		},
		{
			name:      "configured test email wins",
			opts:      MercadoPagoOptions{AccessToken: "TEST-123", TestPayerEmail: "qa@example.com"},
			payer:     map[string]any{},
			wantEmail: "qa@example.com",
		},
		{
			name:   "production keeps payer id",
			opts:   MercadoPagoOptions{AccessToken: "APP_USR-1"},
			payer:  map[string]any{"id": "999"},
			wantID: true,
		},
		{
			name:      "sandbox user id mapped to email",
			opts:      MercadoPagoOptions{AccessToken: "TEST-123", TestPayerEmail: "qa@example.com", TestPayerUserID: "999"},
			payer:     map[string]any{"id": "999"},
			wantEmail: "qa@example.com",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &MercadoPagoGateway{opts: tc.opts, log: zap.NewNop()}
			m := map[string]any{"payer": tc.payer}
			g.normalizeSandboxPayerFromUserID(m)
			g.ensurePayerDefaults(m)

			payer := m["payer"].(map[string]any)
			if payer["type"] != "customer" {
				t.Fatalf("expected payer type customer, got %v", payer["type"])
			}
			if email, _ := payer["email"].(string); email != tc.wantEmail {
				t.Fatalf("expected email %q, got %q", tc.wantEmail, email)
			}
			if _, hasID := payer["id"]; hasID != tc.wantID {
				t.Fatalf("expected payer id present=%v, got %v", tc.wantID, hasID)
			}
		})
	}
}
