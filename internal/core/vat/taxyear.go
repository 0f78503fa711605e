// Package vat holds the UK VAT period arithmetic and the in-memory aggregation
// that turns a ledger snapshot into per-rate, per-month and per-category figures.
package vat

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

var (
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	taxYearPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
)

// UK tax years run 6 April to 5 April.
const (
	taxYearStartMonth = time.April
	taxYearStartDay   = 6
)

// TaxYearForDate returns the UK tax year label (YYYY-YY) containing t.
// 5 April belongs to the tax year that is ending, 6 April starts the next one.
func TaxYearForDate(t time.Time) string {
	year := t.Year()
	if t.Month() < taxYearStartMonth || (t.Month() == taxYearStartMonth && t.Day() < taxYearStartDay) {
		return fmt.Sprintf("%d-%02d", year-1, year%100)
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// TaxYearDates returns the period covered by a YYYY-YY label.
func TaxYearDates(taxYear string) (domain.VatPeriod, error) {
	m := taxYearPattern.FindStringSubmatch(taxYear)
	if m == nil {
		return domain.VatPeriod{}, apperrors.NewDomainError(apperrors.CodeInvalidTaxYear,
			"Invalid tax year '%s'. Use YYYY-YY, e.g. 2025-26", taxYear)
	}
	startYear, _ := strconv.Atoi(m[1])
	endSuffix, _ := strconv.Atoi(m[2])
	if (startYear+1)%100 != endSuffix {
		return domain.VatPeriod{}, apperrors.NewDomainError(apperrors.CodeInvalidTaxYear,
			"Invalid tax year '%s'. The second part must be the year after %d", taxYear, startYear)
	}
	return domain.VatPeriod{
		StartDate: time.Date(startYear, taxYearStartMonth, taxYearStartDay, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(startYear+1, taxYearStartMonth, taxYearStartDay-1, 0, 0, 0, 0, time.UTC),
		TaxYear:   taxYear,
	}, nil
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, apperrors.NewDomainError(apperrors.CodeInvalidDateRange,
			"Invalid date format '%s'. Use YYYY-MM-DD", s)
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, apperrors.NewDomainError(apperrors.CodeInvalidDateRange, "Invalid date '%s'", s)
	}
	return t, nil
}

// ValidateDateRange checks both dates are valid YYYY-MM-DD dates and start <= end.
func ValidateDateRange(start, end string) error {
	_, err := NewPeriod(start, end)
	return err
}

// NewPeriod validates a date range and labels it with the tax year of its start date.
func NewPeriod(start, end string) (domain.VatPeriod, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return domain.VatPeriod{}, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return domain.VatPeriod{}, err
	}
	if startDate.After(endDate) {
		return domain.VatPeriod{}, apperrors.NewDomainError(apperrors.CodeInvalidDateRange,
			"Start date %s must be before or equal to end date %s", start, end)
	}
	return periodOf(startDate, endDate), nil
}

// MonthPeriod covers one calendar month, ending on its real last day (29 February in leap years).
func MonthPeriod(year, month int) (domain.VatPeriod, error) {
	if month < 1 || month > 12 {
		return domain.VatPeriod{}, apperrors.NewDomainError(apperrors.CodeInvalidDateRange,
			"Invalid month %d. Must be between 1 and 12", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return periodOf(start, end), nil
}

// QuarterPeriod maps quarter 1-4 to Jan-Mar, Apr-Jun, Jul-Sep and Oct-Dec of year.
func QuarterPeriod(year, quarter int) (domain.VatPeriod, error) {
	if quarter < 1 || quarter > 4 {
		return domain.VatPeriod{}, apperrors.NewDomainError(apperrors.CodeInvalidQuarter,
			"Invalid quarter %d. Must be between 1 and 4", quarter)
	}
	firstMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, firstMonth+3, 0, 0, 0, 0, 0, time.UTC)
	return periodOf(start, end), nil
}

func periodOf(start, end time.Time) domain.VatPeriod {
	return domain.VatPeriod{StartDate: start, EndDate: end, TaxYear: TaxYearForDate(start)}
}
