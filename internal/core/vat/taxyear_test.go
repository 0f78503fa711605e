package vat_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTaxYearForDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-04-05", "2024-25"},
		{"2025-04-06", "2025-26"},
		{"2025-01-01", "2024-25"},
		{"2025-03-31", "2024-25"},
		{"2025-12-31", "2025-26"},
		{"2000-04-05", "1999-00"},
		{"1999-04-06", "1999-00"},
		{"2099-05-01", "2099-00"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, vat.TaxYearForDate(date(tt.date)))
		})
	}
}

func TestTaxYearDates(t *testing.T) {
	p, err := vat.TaxYearDates("2024-25")
	require.NoError(t, err)
	assert.Equal(t, "2024-04-06", p.StartDate.Format(domain.DateLayout))
	assert.Equal(t, "2025-04-05", p.EndDate.Format(domain.DateLayout))
	assert.Equal(t, "2024-25", p.TaxYear)

	for _, bad := range []string{"2024", "2024-26", "24-25", "2024/25", ""} {
		_, err := vat.TaxYearDates(bad)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidTaxYear), bad)
	}
}

func TestTaxYearRoundTripContainsDate(t *testing.T) {
	d := date("2019-01-01")
	end := date("2027-12-31")
	for ; !d.After(end); d = d.AddDate(0, 0, 1) {
		p, err := vat.TaxYearDates(vat.TaxYearForDate(d))
		require.NoError(t, err)
		if !p.Contains(d) {
			t.Fatalf("tax year %s (%s..%s) does not contain %s", p.TaxYear,
				p.StartDate.Format(domain.DateLayout), p.EndDate.Format(domain.DateLayout), d.Format(domain.DateLayout))
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid range", "2025-01-01", "2025-03-31", false},
		{"single day", "2025-04-05", "2025-04-05", false},
		{"reversed", "2025-03-31", "2025-01-01", true},
		{"bad format", "2025/01/01", "2025-03-31", true},
		{"no zero padding", "2025-1-1", "2025-03-31", true},
		{"impossible date", "2025-02-29", "2025-03-31", true},
		{"timestamp not date", "2025-01-01T00:00:00Z", "2025-03-31", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := vat.ValidateDateRange(tt.start, tt.end)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrInvalidDateRange))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPeriod_LabelsTaxYearOfStart(t *testing.T) {
	p, err := vat.NewPeriod("2025-04-06", "2025-07-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-26", p.TaxYear)
}

func TestMonthPeriod(t *testing.T) {
	tests := []struct {
		year, month int
		wantEnd     string
	}{
		{2024, 2, "2024-02-29"},
		{2025, 2, "2025-02-28"},
		{2100, 2, "2100-02-28"},
		{2000, 2, "2000-02-29"},
		{2025, 4, "2025-04-30"},
		{2025, 12, "2025-12-31"},
	}
	for _, tt := range tests {
		p, err := vat.MonthPeriod(tt.year, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.wantEnd, p.EndDate.Format(domain.DateLayout))
		assert.Equal(t, 1, p.StartDate.Day())
	}

	_, err := vat.MonthPeriod(2025, 13)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDateRange))
}

func TestQuarterPeriod(t *testing.T) {
	tests := []struct {
		quarter    int
		start, end string
	}{
		{1, "2025-01-01", "2025-03-31"},
		{2, "2025-04-01", "2025-06-30"},
		{3, "2025-07-01", "2025-09-30"},
		{4, "2025-10-01", "2025-12-31"},
	}
	for _, tt := range tests {
		p, err := vat.QuarterPeriod(2025, tt.quarter)
		require.NoError(t, err)
		assert.Equal(t, tt.start, p.StartDate.Format(domain.DateLayout))
		assert.Equal(t, tt.end, p.EndDate.Format(domain.DateLayout))
	}

	for _, q := range []int{0, 5, -1} {
		_, err := vat.QuarterPeriod(2025, q)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidQuarter), q)
	}
}
