package response

import (
	"encoding/json"
	"testing"
	"time"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase"

	"github.com/shopspring/decimal"
)

func invoiceFixture() entities.Invoice {
	return entities.Invoice{
		ID:            "inv-1",
		PatientID:     "42",
		InvoiceNumber: "INV-20240115-0001",
		IssueDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		SubTotal:      decimal.RequireFromString("200"),
		Total:         decimal.RequireFromString("200"),
		PaidByPatient: decimal.RequireFromString("50.5"),
		Status:        entities.InvoiceStatusPartiallyPaid,
		Items: []entities.InvoiceItem{{
			ID:          "it-1",
			ItemType:    entities.InvoiceItemConsultation,
			Description: "Consultation",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.RequireFromString("200"),
			TotalPrice:  decimal.RequireFromString("200"),
		}},
	}
}

func TestFromInvoice(t *testing.T) {
	res := FromInvoice(invoiceFixture())

	if res.Total != "200.00" || res.PaidByPatient != "50.50" || res.AmountDue != "149.50" || res.Tax != "0.00" {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.IsPaid || res.Status != "PARTIALLY_PAID" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.IssueDate != "2024-01-15" || res.DueDate != "2024-02-14" {
		t.Fatalf("unexpected dates: %s %s", res.IssueDate, res.DueDate)
	}
	if len(res.Items) != 1 || res.Items[0].UnitPrice != "200.00" || res.Items[0].Quantity != "1" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
}

func TestFromInvoiceDetails(t *testing.T) {
	approved := decimal.RequireFromString("80")
	res := FromInvoiceDetails(usecase.InvoiceDetails{
		Invoice:     invoiceFixture(),
		PatientName: "Ada Lovelace",
		Payments:    []entities.Payment{{ID: "pay-1", Amount: decimal.RequireFromString("50.5"), Method: entities.PaymentMethodCash}},
		Claims:      []entities.InsuranceClaim{{ID: "cl-1", ClaimAmount: decimal.RequireFromString("100"), ApprovedAmount: &approved}},
	})

	if res.PatientName != "Ada Lovelace" || len(res.Payments) != 1 || len(res.Claims) != 1 {
		t.Fatalf("unexpected details: %+v", res)
	}
	if res.Claims[0].ApprovedAmount == nil || *res.Claims[0].ApprovedAmount != "80.00" || res.Claims[0].RejectedAmount != nil {
		t.Fatalf("unexpected claim amounts: %+v", res.Claims[0])
	}
}

func TestFromPaymentReceipt(t *testing.T) {
	inv := invoiceFixture()
	res := FromPaymentReceipt(usecase.PaymentReceipt{
		Payment: entities.Payment{ID: "pay-1", Amount: decimal.RequireFromString("50.5")},
		Invoice: inv,
	})

	if res.Detail != "Payment processed successfully." || res.AmountPaid != "50.50" || res.RemainingBalance != "149.50" || res.InvoiceStatus != "PARTIALLY_PAID" {
		t.Fatalf("unexpected receipt: %+v", res)
	}
}

func TestFromClaimResult(t *testing.T) {
	inv := invoiceFixture()
	inv.PaidByInsurance = decimal.RequireFromString("149.5")
	inv.Status = entities.InvoiceStatusPaid
	payout := entities.Payment{ID: "pay-2", Method: entities.PaymentMethodInsurancePayout, Amount: decimal.RequireFromString("149.5")}

	res := FromClaimResult(usecase.ClaimResult{
		Claim:   entities.InsuranceClaim{ID: "cl-1", Status: entities.ClaimStatusApproved, PayoutPaymentID: "pay-2"},
		Invoice: inv,
		Payout:  &payout,
	})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["id"] != "cl-1" || body["invoice_status"] != "PAID" || body["remaining_balance"] != "0.00" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["payout"].(map[string]any); !ok {
		t.Fatalf("expected payout object, got %v", body["payout"])
	}
}

func TestFromPolicy(t *testing.T) {
	p := entities.InsurancePolicy{
		ID:        "pol-1",
		ValidFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	res := FromPolicy(p, time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))
	if res.IsExpired || res.ValidTo != "2024-12-31" || res.CoverageDetails == nil {
		t.Fatalf("unexpected policy on last valid day: %+v", res)
	}

	res = FromPolicy(p, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if !res.IsExpired {
		t.Fatalf("expected policy to be expired")
	}
}
