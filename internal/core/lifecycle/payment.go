package lifecycle

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	maxPaymentReferenceLength = 100
	maxPaymentNotesLength     = 1000
)

// maxPaymentAmount is the largest amount that fits the int64 minor-unit column.
var maxPaymentAmount = decimal.NewFromInt(math.MaxInt64)

// paymentDateLayouts are the ISO-8601 shapes accepted for a payment date.
var paymentDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	domain.DateLayout,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PaymentValidation is the per-field outcome of ValidatePaymentDetails.
type PaymentValidation struct {
	IsValid bool              `json:"isValid"`
	Errors  map[string]string `json:"errors"`
}

// ValidatePaymentDetails checks every field and reports all violations at once.
func ValidatePaymentDetails(details domain.PaymentDetails) PaymentValidation {
	errs := map[string]string{}

	if details.PaymentDate != nil && *details.PaymentDate != "" {
		if _, err := parsePaymentDate(*details.PaymentDate); err != nil {
			errs["paymentDate"] = "Invalid payment date"
		}
	}

	if err := validate.Struct(details); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				errs[fe.Field()] = fieldMessage(fe)
			}
		} else {
			errs["paymentDetails"] = err.Error()
		}
	}

	if details.PaymentAmount != nil {
		amount := *details.PaymentAmount
		switch {
		case !amount.IsInteger():
			errs["paymentAmount"] = "Payment amount must be a whole number of minor units"
		case amount.IsNegative():
			errs["paymentAmount"] = "Payment amount must be a non-negative integer"
		case amount.GreaterThan(maxPaymentAmount):
			errs["paymentAmount"] = fmt.Sprintf("Payment amount must not exceed %d minor units", int64(math.MaxInt64))
		}
	}

	return PaymentValidation{IsValid: len(errs) == 0, Errors: errs}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "paymentMethod":
		return "Invalid payment method. Must be one of: cash, bank_transfer, card, cheque, other"
	case "paymentReference":
		return fmt.Sprintf("Payment reference must be %d characters or less", maxPaymentReferenceLength)
	case "notes":
		return fmt.Sprintf("Notes must be %d characters or less", maxPaymentNotesLength)
	}
	return fmt.Sprintf("failed '%s' validation", fe.Tag())
}

func parsePaymentDate(s string) (time.Time, error) {
	for _, layout := range paymentDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised payment date %q", s)
}
