package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"billing_insurance/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

var customMessages = map[string]string{
	"required":          "is required",
	"min":               "must have at least %s entries",
	"payment_method":    "must be one of CREDIT_CARD, CASH, BANK_TRANSFER, INSURANCE_PAYOUT, VOUCHER",
	"claim_status":      "must be a valid insurance claim status",
	"invoice_status":    "must be a valid invoice status",
	"invoice_item_type": "must be one of CONSULTATION, MEDICATION, LAB_TEST, OTHER_SERVICE",
}

// Register installs the billing rules on gin's binding validator. Safe to call more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding validator is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)

		rules := map[string]validator.Func{
			"payment_method":    validatePaymentMethod,
			"claim_status":      validateClaimStatus,
			"invoice_status":    validateInvoiceStatus,
			"invoice_item_type": validateInvoiceItemType,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return entities.PaymentMethod(fl.Field().String()).Valid()
}

func validateClaimStatus(fl validator.FieldLevel) bool {
	return entities.ClaimStatus(fl.Field().String()).Valid()
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	return entities.InvoiceStatus(fl.Field().String()).Valid()
}

func validateInvoiceItemType(fl validator.FieldLevel) bool {
	return entities.InvoiceItemType(fl.Field().String()).Valid()
}

// FirstErrorMessage turns a binding error into a short client-facing message.
func FirstErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	first := verrs[0]
	msg, ok := customMessages[first.Tag()]
	if !ok {
		msg = "is invalid"
	}
	if strings.Contains(msg, "%s") {
		msg = strings.Replace(msg, "%s", first.Param(), 1)
	}
	return first.Field() + " " + msg
}
