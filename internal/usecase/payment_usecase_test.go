package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"
	mock_interfaces "billing_insurance/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func commitOK(_ context.Context, _ interfaces.LedgerWrite) error { return nil }

func TestPaymentUseCase_ApplyPayment_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewPaymentUseCase(Dependencies{})
		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: " ", Amount: dec("1"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc := NewPaymentUseCase(Dependencies{})
		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("1"), Method: "CHEQUE"})
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("invalid gateway payload", func(t *testing.T) {
		uc := NewPaymentUseCase(Dependencies{})
		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("1"), Method: entities.PaymentMethodCreditCard, GatewayPayload: json.RawMessage(`{`)})
		if !errors.Is(err, ErrInvalidGatewayPayload) {
			t.Fatalf("expected ErrInvalidGatewayPayload, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("1"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ApplyPayment_RejectsWithoutWriting(t *testing.T) {
	cases := []struct {
		name    string
		invoice entities.Invoice
		amount  string
		want    error
	}{
		{name: "overpayment", invoice: invoiceFixture("100", entities.InvoiceStatusPendingPatient), amount: "100.01", want: entities.ErrPaymentExceedsBalance},
		{name: "zero amount", invoice: invoiceFixture("100", entities.InvoiceStatusPendingPatient), amount: "0", want: entities.ErrInvalidPaymentAmount},
		{name: "cancelled invoice", invoice: invoiceFixture("100", entities.InvoiceStatusCancelled), amount: "10", want: entities.ErrInvoiceClosed},
		{name: "paid invoice", invoice: func() entities.Invoice {
			inv := invoiceFixture("100", entities.InvoiceStatusPaid)
			inv.PaidByPatient = dec("100")
			return inv
		}(), amount: "10", want: entities.ErrInvoiceAlreadyPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m, deps := newTestMocks(ctrl)
			uc := NewPaymentUseCase(deps)

			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(tc.invoice, nil)

			_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec(tc.amount), Method: entities.PaymentMethodCash})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_ApplyPayment_PartialThenFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, deps := newTestMocks(ctrl)
	uc := NewPaymentUseCase(deps)

	stored := invoiceFixture("100.00", entities.InvoiceStatusPendingPatient)
	m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").DoAndReturn(
		func(context.Context, string) (entities.Invoice, error) { return stored, nil },
	).Times(2)
	m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w interfaces.LedgerWrite) error {
			if w.Invoice == nil || w.Payment == nil {
				t.Fatalf("payment and invoice must be written together")
			}
			if w.Invoice.Version != stored.Version {
				t.Fatalf("write must carry the read version")
			}
			if w.Payment.InvoiceID != "inv-1" || w.Payment.PatientID != "42" || w.Payment.Status != entities.PaymentStatusSuccess {
				t.Fatalf("unexpected payment: %+v", w.Payment)
			}
			stored = *w.Invoice
			stored.Version++
			return nil
		},
	).Times(2)
	m.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n entities.Notification) error {
			if n.Type != entities.NotificationPaymentSuccessful || n.Data["payment_date"] != "2024-03-15" {
				t.Fatalf("unexpected notification %+v", n)
			}
			return nil
		},
	).Times(2)

	first, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40.00"), Method: entities.PaymentMethodCash})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Invoice.Status != entities.InvoiceStatusPartiallyPaid || !first.Invoice.AmountDue().Equal(dec("60")) {
		t.Fatalf("unexpected state after 40: status=%s due=%s", first.Invoice.Status, first.Invoice.AmountDue())
	}
	if first.Invoice.Version != 2 {
		t.Fatalf("expected version 2, got %d", first.Invoice.Version)
	}

	second, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("60.00"), Method: entities.PaymentMethodBankTransfer, TransactionID: "tx-9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Invoice.Status != entities.InvoiceStatusPaid || !second.Invoice.AmountDue().IsZero() {
		t.Fatalf("unexpected state after 60: status=%s due=%s", second.Invoice.Status, second.Invoice.AmountDue())
	}
	if second.Payment.TransactionID != "tx-9" || second.Payment.Method != entities.PaymentMethodBankTransfer {
		t.Fatalf("unexpected payment %+v", second.Payment)
	}
}

func TestPaymentUseCase_ApplyPayment_Concurrency(t *testing.T) {
	t.Run("retries from fresh state after a version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		deps.Notifier = nil
		uc := NewPaymentUseCase(deps)

		fresh := invoiceFixture("100", entities.InvoiceStatusPartiallyPaid)
		fresh.PaidByPatient = dec("50")
		fresh.Version = 2
		gomock.InOrder(
			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil),
			m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentModification),
			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(fresh, nil),
			m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, w interfaces.LedgerWrite) error {
					if w.Invoice.Version != 2 || !w.Invoice.PaidByPatient.Equal(dec("90")) {
						t.Fatalf("retry must apply on fresh state, got version=%d paid=%s", w.Invoice.Version, w.Invoice.PaidByPatient)
					}
					return nil
				},
			),
		)

		res, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCash})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Invoice.AmountDue().Equal(dec("10")) {
			t.Fatalf("expected due 10, got %s", res.Invoice.AmountDue())
		}
	})

	t.Run("retry revalidates against fresh state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		fresh := invoiceFixture("100", entities.InvoiceStatusPartiallyPaid)
		fresh.PaidByPatient = dec("80")
		gomock.InOrder(
			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil),
			m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentModification),
			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(fresh, nil),
		)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, entities.ErrPaymentExceedsBalance) {
			t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil).Times(maxLedgerAttempts)
		m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentModification).Times(maxLedgerAttempts)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("lease held elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, deps := newTestMocks(ctrl)
		locker := mock_interfaces.NewMockIInvoiceLocker(ctrl)
		deps.Locker = locker
		uc := NewPaymentUseCase(deps)

		locker.EXPECT().TryLock(gomock.Any(), "inv-1", gomock.Any()).Return(false, "", nil)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCash})
		if !errors.Is(err, ErrInvoiceBusy) {
			t.Fatalf("expected ErrInvoiceBusy, got %v", err)
		}
	})

	t.Run("lease released after success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		deps.Notifier = nil
		locker := mock_interfaces.NewMockIInvoiceLocker(ctrl)
		deps.Locker = locker
		uc := NewPaymentUseCase(deps)

		locker.EXPECT().TryLock(gomock.Any(), "inv-1", gomock.Any()).Return(true, "tok-1", nil)
		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)
		m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(commitOK)
		locker.EXPECT().Unlock(gomock.Any(), "inv-1", "tok-1").Return(nil)

		if _, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCash}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_ApplyPayment_Gateway(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1,"payer":{"email":"x@test.com"}}`)

	t.Run("approved charge is recorded with provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		deps.Notifier = nil
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, raw json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(raw, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 40.5 || req["external_reference"] != "inv-1" {
					t.Fatalf("amount and reference must be forced, got %v", req)
				}
				if req["description"] != "Invoice INV-20240315-0001" {
					t.Fatalf("unexpected description %v", req["description"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			},
		)
		m.ledger.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(commitOK)

		res, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40.50"), Method: entities.PaymentMethodCreditCard, TransactionID: "ignored", GatewayPayload: payload})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Payment.TransactionID != "mp-1" {
			t.Fatalf("expected provider id as transaction id, got %s", res.Payment.TransactionID)
		}
	})

	t.Run("declined charge records nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", nil, nil)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCreditCard, GatewayPayload: payload})
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		deps.Gateway = nil
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)

		_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCreditCard, GatewayPayload: payload})
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	mapping := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}
	for _, tc := range mapping {
		t.Run("error mapping "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m, deps := newTestMocks(ctrl)
			uc := NewPaymentUseCase(deps)

			m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.ApplyPayment(context.Background(), ApplyPaymentCommand{InvoiceID: "inv-1", Amount: dec("40"), Method: entities.PaymentMethodCreditCard, GatewayPayload: payload})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentUseCase(Dependencies{})
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		m.payments.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by invoice requires the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, deps := newTestMocks(ctrl)
		uc := NewPaymentUseCase(deps)

		m.invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(invoiceFixture("100", entities.InvoiceStatusPendingPatient), nil)
		m.payments.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.Payment{{ID: "p-1"}, {ID: "p-2"}}, nil)

		res, err := uc.ListByInvoiceID(context.Background(), "inv-1")
		if err != nil || len(res) != 2 {
			t.Fatalf("unexpected result %v %v", res, err)
		}
	})
}
