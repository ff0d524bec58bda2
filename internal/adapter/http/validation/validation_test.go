package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Method string   `json:"payment_method" binding:"required,payment_method"`
	Status string   `json:"status" binding:"omitempty,claim_status"`
	Items  []string `json:"items" binding:"required,min=2"`
}

func TestRegisterIsIdempotent(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := Register(); err != nil {
		t.Fatalf("second register: %v", err)
	}
}

func TestFirstErrorMessage(t *testing.T) {
	if err := Register(); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name  string
		input sample
		want  string
	}{
		{
			name:  "missing field uses json name",
			input: sample{Items: []string{"a", "b"}},
			want:  "payment_method is required",
		},
		{
			name:  "unknown payment method",
			input: sample{Method: "CHEQUE", Items: []string{"a", "b"}},
			want:  "payment_method must be one of CREDIT_CARD, CASH, BANK_TRANSFER, INSURANCE_PAYOUT, VOUCHER",
		},
		{
			name:  "unknown claim status",
			input: sample{Method: "CASH", Status: "LOST", Items: []string{"a", "b"}},
			want:  "status must be a valid insurance claim status",
		},
		{
			name:  "min carries its parameter",
			input: sample{Method: "CASH", Items: []string{"a"}},
			want:  "items must have at least 2 entries",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.input)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if got := FirstErrorMessage(err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	valid := sample{Method: "VOUCHER", Status: "APPROVED", Items: []string{"a", "b"}}
	if err := binding.Validator.ValidateStruct(valid); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
}

func TestFirstErrorMessageNonValidationError(t *testing.T) {
	if got := FirstErrorMessage(errors.New("unexpected EOF")); got != "Invalid request body" {
		t.Fatalf("unexpected message %q", got)
	}
}
