package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"billing_insurance/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// sandboxPayerEmail is the fallback test buyer Mercado Pago documents for TEST- tokens.
const sandboxPayerEmail = "test_user_br@testuser.com"

// MercadoPagoOptions configures the gateway. TestPayerEmail and TestPayerUserID only
// apply to sandbox (TEST-) access tokens.
type MercadoPagoOptions struct {
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
	Mock            bool
}

// paymentCreator is the part of payment.Client the gateway calls.
type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client   paymentCreator
	opts     MercadoPagoOptions
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts MercadoPagoOptions, log *zap.Logger) (*MercadoPagoGateway, error) {
	if opts.Mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{opts: opts, mockMode: true, log: log}, nil
	}

	if opts.AccessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), opts: opts, log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	reqMap := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &reqMap); err != nil {
			g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
			return "", "", nil, err
		}
	}
	g.normalizeSandboxPayerFromUserID(reqMap)
	g.ensurePayerDefaults(reqMap)

	if g.mockMode {
		return g.mockCreate(reqMap)
	}

	if g.client == nil {
		g.log.Warn("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	normalized, err := json.Marshal(reqMap)
	if err != nil {
		return "", "", nil, err
	}
	var req payment.Request
	if err := json.Unmarshal(normalized, &req); err != nil {
		g.log.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return "", "", nil, err
	}

	g.log.Info("[payment][gateway] create start", zap.Int("payload_len", len(normalized)))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return "", "", nil, err
	}
	providerID := fmt.Sprintf("%d", resp.ID)
	g.log.Info("[payment][gateway] create success",
		zap.String("provider_payment_id", providerID),
		zap.String("provider_status", resp.Status),
	)

	return providerID, resp.Status, b, nil
}

// mockCreate approves every charge and echoes the request back as the provider response.
func (g *MercadoPagoGateway) mockCreate(resp map[string]any) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] mock response marshal failed", zap.Error(err))
		return "", "", nil, err
	}

	g.log.Info("[payment][gateway] mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}

func (g *MercadoPagoGateway) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(g.opts.AccessToken), "TEST-")
}

// ensurePayerDefaults sets payer.type and, when neither payer.id nor payer.email is
// present, the configured or documented sandbox buyer email.
func (g *MercadoPagoGateway) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(g.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if g.sandbox() {
		payer["email"] = sandboxPayerEmail
	}
}

// normalizeSandboxPayerFromUserID swaps the configured sandbox buyer's user id for its
// email, which is what the sandbox accepts.
func (g *MercadoPagoGateway) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !g.sandbox() {
		return
	}

	configuredUserID := strings.TrimSpace(g.opts.TestPayerUserID)
	configuredEmail := strings.TrimSpace(g.opts.TestPayerEmail)
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	g.log.Info("[payment][gateway] mapped sandbox payer user_id to payer.email")
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}
