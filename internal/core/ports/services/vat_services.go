package services

import (
	"context"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// VatReportService builds VAT figures for a user from the ledger.
// Dates are YYYY-MM-DD strings; invalid input returns an *apperrors.DomainError.
type VatReportService interface {
	GetOutputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error)
	GetInputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error)
	GetVatTotals(ctx context.Context, userID, startDate, endDate string) (*domain.VatTotals, error)
	GetMonthlyVatSummary(ctx context.Context, userID, startDate, endDate string) ([]domain.MonthlyVatSummary, error)
	GetVatByCategory(ctx context.Context, userID, startDate, endDate string, typ domain.TransactionType) ([]domain.CategoryVatBreakdown, error)

	GenerateVatSummaryReport(ctx context.Context, userID, startDate, endDate string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error)
	GenerateVatSummaryForTaxYear(ctx context.Context, userID, taxYear string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error)
	GenerateVatSummaryForMonth(ctx context.Context, userID string, year, month int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error)
	GenerateVatSummaryForQuarter(ctx context.Context, userID string, year, quarter int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error)
}
