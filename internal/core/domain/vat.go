package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical UK VAT rates in basis points.
const (
	VatRateStandard int64 = 2000
	VatRateReduced  int64 = 500
	VatRateZero     int64 = 0
)

// VatPeriod is an inclusive date range plus the UK tax year label of its start date.
type VatPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	TaxYear   string    `json:"taxYear"`
}

// Contains reports whether the calendar date of t falls inside the period.
func (p VatPeriod) Contains(t time.Time) bool {
	d := t.Format(DateLayout)
	return d >= p.StartDate.Format(DateLayout) && d <= p.EndDate.Format(DateLayout)
}

// VatRateBreakdown aggregates entries sharing one VAT rate.
type VatRateBreakdown struct {
	VatRate          int64           `json:"vatRate"`
	VatRatePercent   decimal.Decimal `json:"vatRatePercent"`
	RateName         LocalizedText   `json:"rateName,omitempty"`
	TransactionCount int             `json:"transactionCount"`
	NetAmount        int64           `json:"netAmount"`
	VatAmount        int64           `json:"vatAmount"`
	GrossAmount      int64           `json:"grossAmount"`
}

// VatTotalsLine is a totals bucket without per-rate detail.
type VatTotalsLine struct {
	TransactionCount int   `json:"transactionCount"`
	NetAmount        int64 `json:"netAmount"`
	VatAmount        int64 `json:"vatAmount"`
	GrossAmount      int64 `json:"grossAmount"`
}

// VatTotals holds output (income) and input (expense) totals.
type VatTotals struct {
	Output VatTotalsLine `json:"output"`
	Input  VatTotalsLine `json:"input"`
}

// MonthlyVatSummary is one calendar month of the period.
type MonthlyVatSummary struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Label        string `json:"label"` // YYYY-MM
	OutputVat    int64  `json:"outputVat"`
	InputVat     int64  `json:"inputVat"`
	NetVat       int64  `json:"netVat"`
	IsRefundDue  bool   `json:"isRefundDue"`
	IncomeCount  int    `json:"incomeCount"`
	ExpenseCount int    `json:"expenseCount"`
}

// CategoryVatBreakdown aggregates entries of one category. CategoryID is nil for uncategorized entries.
type CategoryVatBreakdown struct {
	CategoryID            *string `json:"categoryID"`
	CategoryCode          string  `json:"categoryCode"`
	CategoryName          string  `json:"categoryName"`
	CategoryNameLocalized string  `json:"categoryNameLocalized"`
	TransactionCount      int     `json:"transactionCount"`
	NetAmount             int64   `json:"netAmount"`
	VatAmount             int64   `json:"vatAmount"`
	GrossAmount           int64   `json:"grossAmount"`
}

// VatSection is one side (output or input) of the summary report.
type VatSection struct {
	ByRate []VatRateBreakdown `json:"byRate"`
	Totals VatTotalsLine      `json:"totals"`
}

// NetVatPosition is output VAT minus input VAT; negative means HMRC owes a refund.
type NetVatPosition struct {
	OutputVat   int64         `json:"outputVat"`
	InputVat    int64         `json:"inputVat"`
	NetVat      int64         `json:"netVat"`
	IsRefundDue bool          `json:"isRefundDue"`
	Description LocalizedText `json:"description"`
}

// TransactionCounts counts the entries that contributed to the report.
type TransactionCounts struct {
	Income  int `json:"income"`
	Expense int `json:"expense"`
	Total   int `json:"total"`
}

// CategoryBreakdown splits the category view by transaction type.
type CategoryBreakdown struct {
	Income  []CategoryVatBreakdown `json:"income"`
	Expense []CategoryVatBreakdown `json:"expense"`
}

// VatSummaryReport is the full VAT summary for a period.
type VatSummaryReport struct {
	ReportID          string              `json:"reportID"`
	GeneratedAt       time.Time           `json:"generatedAt"`
	Period            VatPeriod           `json:"period"`
	OutputVat         VatSection          `json:"outputVat"`
	InputVat          VatSection          `json:"inputVat"`
	NetPosition       NetVatPosition      `json:"netPosition"`
	TransactionCounts TransactionCounts   `json:"transactionCounts"`
	// MonthlyBreakdown is null when not requested and [] when requested but empty.
	MonthlyBreakdown  []MonthlyVatSummary `json:"monthlyBreakdown"`
	CategoryBreakdown *CategoryBreakdown  `json:"categoryBreakdown,omitempty"`
}

// VatReportOptions toggles the optional report sections.
type VatReportOptions struct {
	IncludeMonthly    bool
	IncludeCategories bool
}

// DefaultVatReportOptions has the monthly breakdown on and the category breakdown off.
func DefaultVatReportOptions() VatReportOptions {
	return VatReportOptions{IncludeMonthly: true}
}
