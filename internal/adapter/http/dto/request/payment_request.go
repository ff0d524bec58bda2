package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

// PayInvoiceRequest records a patient payment. When a gateway payload is present the
// amount is charged through Mercado Pago first. `mp_payload` is accepted as an alias of
// `gateway_payload` and is stored as-is (raw JSON) to support varying provider schemas.
type PayInvoiceRequest struct {
	Amount         *decimal.Decimal       `json:"amount" binding:"required"`
	PaymentMethod  entities.PaymentMethod `json:"payment_method" binding:"required,payment_method"`
	TransactionID  string                 `json:"transaction_id"`
	Notes          string                 `json:"notes"`
	GatewayPayload json.RawMessage        `json:"gateway_payload"`
	MPPayload      json.RawMessage        `json:"mp_payload"`
}

// ResolveGatewayPayload returns the provider payload, or nil when none was sent.
func (r PayInvoiceRequest) ResolveGatewayPayload() json.RawMessage {
	for _, raw := range []json.RawMessage{r.GatewayPayload, r.MPPayload} {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}
		return trimmed
	}
	return nil
}

func (r PayInvoiceRequest) ToCommand(invoiceID string) usecase.ApplyPaymentCommand {
	return usecase.ApplyPaymentCommand{
		InvoiceID:      invoiceID,
		Amount:         *r.Amount,
		Method:         r.PaymentMethod,
		TransactionID:  strings.TrimSpace(r.TransactionID),
		Notes:          strings.TrimSpace(r.Notes),
		GatewayPayload: r.ResolveGatewayPayload(),
	}
}
