package lifecycle_test

import (
	"math"
	"strings"
	"testing"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/core/lifecycle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValidatePaymentDetails(t *testing.T) {
	tests := []struct {
		name       string
		details    domain.PaymentDetails
		wantFields []string
	}{
		{
			name:    "empty details are valid",
			details: domain.PaymentDetails{},
		},
		{
			name: "all fields valid",
			details: domain.PaymentDetails{
				PaymentDate:      ptr("2025-04-06"),
				PaymentMethod:    ptr(domain.PaymentMethodCheque),
				PaymentReference: ptr(strings.Repeat("r", 100)),
				PaymentAmount:    ptr(decimal.Zero),
				Notes:            ptr(strings.Repeat("n", 1000)),
			},
		},
		{
			name:       "unparseable date",
			details:    domain.PaymentDetails{PaymentDate: ptr("30/04/2025")},
			wantFields: []string{"paymentDate"},
		},
		{
			name:       "impossible calendar date",
			details:    domain.PaymentDetails{PaymentDate: ptr("2025-02-30")},
			wantFields: []string{"paymentDate"},
		},
		{
			name:       "unknown method",
			details:    domain.PaymentDetails{PaymentMethod: ptr(domain.PaymentMethod("paypal"))},
			wantFields: []string{"paymentMethod"},
		},
		{
			name:       "reference too long",
			details:    domain.PaymentDetails{PaymentReference: ptr(strings.Repeat("r", 101))},
			wantFields: []string{"paymentReference"},
		},
		{
			name:       "negative amount",
			details:    domain.PaymentDetails{PaymentAmount: ptr(decimal.NewFromInt(-1))},
			wantFields: []string{"paymentAmount"},
		},
		{
			name:       "fractional minor units",
			details:    domain.PaymentDetails{PaymentAmount: ptr(decimal.RequireFromString("99.5"))},
			wantFields: []string{"paymentAmount"},
		},
		{
			name:    "largest int64 amount",
			details: domain.PaymentDetails{PaymentAmount: ptr(decimal.NewFromInt(math.MaxInt64))},
		},
		{
			name:       "amount beyond int64",
			details:    domain.PaymentDetails{PaymentAmount: ptr(decimal.RequireFromString("18446744073709551615"))},
			wantFields: []string{"paymentAmount"},
		},
		{
			name:    "minute precision date time",
			details: domain.PaymentDetails{PaymentDate: ptr("2025-04-05T10:00")},
		},
		{
			name:    "minute precision with offset",
			details: domain.PaymentDetails{PaymentDate: ptr("2025-04-05T10:00+01:00")},
		},
		{
			name:       "notes too long",
			details:    domain.PaymentDetails{Notes: ptr(strings.Repeat("n", 1001))},
			wantFields: []string{"notes"},
		},
		{
			name: "every violation reported together",
			details: domain.PaymentDetails{
				PaymentDate:      ptr("yesterday"),
				PaymentMethod:    ptr(domain.PaymentMethod("barter")),
				PaymentReference: ptr(strings.Repeat("r", 101)),
				PaymentAmount:    ptr(decimal.NewFromFloat(-0.5)),
				Notes:            ptr(strings.Repeat("n", 1001)),
			},
			wantFields: []string{"paymentDate", "paymentMethod", "paymentReference", "paymentAmount", "notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lifecycle.ValidatePaymentDetails(tt.details)

			assert.Equal(t, len(tt.wantFields) == 0, got.IsValid)
			assert.Len(t, got.Errors, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, got.Errors, f)
			}
		})
	}
}
