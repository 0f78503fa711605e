package dto

import (
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
)

// VatRangeQuery is the inclusive YYYY-MM-DD range shared by the VAT endpoints.
type VatRangeQuery struct {
	StartDate string `form:"startDate" binding:"required" example:"2025-04-01"`
	EndDate   string `form:"endDate" binding:"required" example:"2025-06-30"`
}

// VatCategoryQuery narrows the category breakdown to income or expense.
type VatCategoryQuery struct {
	VatRangeQuery
	Type string `form:"type" binding:"required,oneof=income expense" example:"expense"`
}

// VatReportOptionsQuery toggles the optional report sections. Monthly defaults to on.
type VatReportOptionsQuery struct {
	IncludeMonthly    *bool `form:"includeMonthly"`
	IncludeCategories bool  `form:"includeCategories"`
}

// ToOptions applies the query on top of the default report options.
func (q VatReportOptionsQuery) ToOptions() domain.VatReportOptions {
	opts := domain.DefaultVatReportOptions()
	if q.IncludeMonthly != nil {
		opts.IncludeMonthly = *q.IncludeMonthly
	}
	opts.IncludeCategories = q.IncludeCategories
	return opts
}

// VatPeriodResponse renders a period with calendar dates.
type VatPeriodResponse struct {
	StartDate string `json:"startDate" example:"2025-04-01"`
	EndDate   string `json:"endDate" example:"2025-06-30"`
	TaxYear   string `json:"taxYear" example:"2025-26"`
}

// ToVatPeriodResponse formats a period's dates as YYYY-MM-DD.
func ToVatPeriodResponse(p domain.VatPeriod) VatPeriodResponse {
	return VatPeriodResponse{
		StartDate: p.StartDate.Format(domain.DateLayout),
		EndDate:   p.EndDate.Format(domain.DateLayout),
		TaxYear:   p.TaxYear,
	}
}

// TaxYearLookupResponse answers which tax year a date falls in.
type TaxYearLookupResponse struct {
	Date string `json:"date" example:"2025-04-05"`
	VatPeriodResponse
}

// VatSummaryReportResponse is the API view of a VAT summary report.
type VatSummaryReportResponse struct {
	ReportID          string                     `json:"reportID"`
	GeneratedAt       time.Time                  `json:"generatedAt"`
	Period            VatPeriodResponse          `json:"period"`
	OutputVat         domain.VatSection          `json:"outputVat"`
	InputVat          domain.VatSection          `json:"inputVat"`
	NetPosition       domain.NetVatPosition      `json:"netPosition"`
	NetPositionText   string                     `json:"netPositionText"`
	TransactionCounts domain.TransactionCounts   `json:"transactionCounts"`
	MonthlyBreakdown  []domain.MonthlyVatSummary `json:"monthlyBreakdown"`
	CategoryBreakdown *domain.CategoryBreakdown  `json:"categoryBreakdown,omitempty"`
}

// ToVatSummaryReportResponse converts a report, picking locale for the net position sentence.
func ToVatSummaryReportResponse(r *domain.VatSummaryReport, locale string) VatSummaryReportResponse {
	return VatSummaryReportResponse{
		ReportID:          r.ReportID,
		GeneratedAt:       r.GeneratedAt,
		Period:            ToVatPeriodResponse(r.Period),
		OutputVat:         r.OutputVat,
		InputVat:          r.InputVat,
		NetPosition:       r.NetPosition,
		NetPositionText:   r.NetPosition.Description[locale],
		TransactionCounts: r.TransactionCounts,
		MonthlyBreakdown:  r.MonthlyBreakdown,
		CategoryBreakdown: r.CategoryBreakdown,
	}
}

// VatRatesResponse lists output and input VAT per rate for a range.
type VatRatesResponse struct {
	StartDate string                    `json:"startDate"`
	EndDate   string                    `json:"endDate"`
	Output    []domain.VatRateBreakdown `json:"output"`
	Input     []domain.VatRateBreakdown `json:"input"`
}

// VatMonthlyResponse lists per-month VAT for a range.
type VatMonthlyResponse struct {
	StartDate string                     `json:"startDate"`
	EndDate   string                     `json:"endDate"`
	Months    []domain.MonthlyVatSummary `json:"months"`
}

// VatCategoriesResponse lists per-category VAT for one transaction type.
type VatCategoriesResponse struct {
	StartDate  string                        `json:"startDate"`
	EndDate    string                        `json:"endDate"`
	Type       string                        `json:"type"`
	Categories []domain.CategoryVatBreakdown `json:"categories"`
}
