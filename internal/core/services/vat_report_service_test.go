package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/core/services"
	"github.com/SscSPs/uk_books_app/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VatReportServiceTestSuite struct {
	suite.Suite
	ledger     *MockLedgerQuery
	categories *MockCategoryDirectory
	metrics    *obs.Metrics
	clock      time.Time
	service    portssvc.VatReportService
}

func (suite *VatReportServiceTestSuite) SetupTest() {
	suite.ledger = new(MockLedgerQuery)
	suite.categories = new(MockCategoryDirectory)
	suite.metrics = obs.NewMetrics(prometheus.NewRegistry())
	suite.clock = time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	suite.service = services.NewVatReportService(suite.ledger, suite.categories,
		services.WithVatMetrics(suite.metrics),
		services.WithVatClock(func() time.Time { return suite.clock }),
	)
}

func TestVatReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VatReportServiceTestSuite))
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func ledgerEntry(id string, typ domain.TransactionType, date string, net, rate, vatAmount int64, category *string) domain.LedgerEntry {
	return domain.LedgerEntry{
		TransactionID:   id,
		UserID:          "user-1",
		Type:            typ,
		Status:          domain.TransactionStatusActive,
		TransactionDate: day(date),
		Amount:          net,
		VatRate:         rate,
		VatAmount:       vatAmount,
		TotalAmount:     net + vatAmount,
		CategoryID:      category,
	}
}

// quarterLedger is the Q2 2025 example: 2250 output VAT against 1700 input VAT.
func quarterLedger() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		ledgerEntry("t-1", domain.TransactionTypeIncome, "2025-04-10", 10000, 2000, 2000, strPtr("sales")),
		ledgerEntry("t-2", domain.TransactionTypeIncome, "2025-05-02", 5000, 500, 250, strPtr("sales")),
		ledgerEntry("t-3", domain.TransactionTypeExpense, "2025-04-20", 8000, 2000, 1600, strPtr("equipment")),
		ledgerEntry("t-4", domain.TransactionTypeExpense, "2025-06-30", 2000, 500, 100, nil),
	}
}

func filterFor(start, end string, typ *domain.TransactionType) any {
	return mock.MatchedBy(func(f domain.LedgerFilter) bool {
		typeMatches := (typ == nil && f.Type == nil) || (typ != nil && f.Type != nil && *typ == *f.Type)
		return f.UserID == "user-1" &&
			f.DateFrom.Format(domain.DateLayout) == start &&
			f.DateTo.Format(domain.DateLayout) == end &&
			len(f.ExcludedStatuses) == 1 && f.ExcludedStatuses[0] == domain.TransactionStatusVoid &&
			typeMatches
	})
}

func (suite *VatReportServiceTestSuite) TestGenerateVatSummaryForQuarter() {
	ctx := context.Background()
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", nil)).Return(quarterLedger(), nil).Once()

	report, err := suite.service.GenerateVatSummaryForQuarter(ctx, "user-1", 2025, 2, domain.DefaultVatReportOptions())

	suite.Require().NoError(err)
	suite.Len(report.ReportID, 26)
	suite.Equal(suite.clock, report.GeneratedAt)
	suite.Equal("2025-26", report.Period.TaxYear)

	suite.Equal(int64(2250), report.NetPosition.OutputVat)
	suite.Equal(int64(1700), report.NetPosition.InputVat)
	suite.Equal(int64(550), report.NetPosition.NetVat)
	suite.False(report.NetPosition.IsRefundDue)
	suite.Equal("VAT payable to HMRC: £5.50", report.NetPosition.Description["en"])
	suite.Equal("HMRC'ye ödenecek KDV: £5.50", report.NetPosition.Description["tr"])

	suite.Require().Len(report.OutputVat.ByRate, 2)
	suite.Equal(int64(2000), report.OutputVat.ByRate[0].VatRate)
	suite.Equal("Standard Rate (20%)", report.OutputVat.ByRate[0].RateName["en"])
	suite.Equal("Reduced Rate (5%)", report.OutputVat.ByRate[1].RateName["en"])
	suite.Equal(int64(2250), report.OutputVat.Totals.VatAmount)
	suite.Equal(int64(1700), report.InputVat.Totals.VatAmount)

	suite.Equal(domain.TransactionCounts{Income: 2, Expense: 2, Total: 4}, report.TransactionCounts)
	suite.Len(report.MonthlyBreakdown, 3)
	suite.Nil(report.CategoryBreakdown)

	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.VatReports.WithLabelValues(services.PeriodQuarter)))
	suite.ledger.AssertExpectations(suite.T())
	suite.categories.AssertNotCalled(suite.T(), "ListCategories", mock.Anything, mock.Anything)
}

func (suite *VatReportServiceTestSuite) TestGenerateVatSummaryReport_WithCategories() {
	ctx := context.Background()
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", nil)).Return(quarterLedger(), nil).Once()
	suite.categories.On("ListCategories", ctx, "user-1").Return([]domain.Category{
		{CategoryID: "sales", Code: "SALES", Name: "Sales", NameLocalized: "Satışlar", Type: domain.TransactionTypeIncome},
		{CategoryID: "equipment", Code: "EQP", Name: "Equipment", NameLocalized: "Ekipman", Type: domain.TransactionTypeExpense},
	}, nil).Once()

	report, err := suite.service.GenerateVatSummaryReport(ctx, "user-1", "2025-04-01", "2025-06-30",
		domain.VatReportOptions{IncludeCategories: true})

	suite.Require().NoError(err)
	suite.Nil(report.MonthlyBreakdown)
	suite.Require().NotNil(report.CategoryBreakdown)
	suite.Require().Len(report.CategoryBreakdown.Income, 1)
	suite.Equal("Sales", report.CategoryBreakdown.Income[0].CategoryName)
	suite.Equal(int64(2250), report.CategoryBreakdown.Income[0].VatAmount)

	expense := report.CategoryBreakdown.Expense
	suite.Require().Len(expense, 2)
	suite.Equal("Equipment", expense[0].CategoryName)
	suite.Nil(expense[1].CategoryID)
	suite.Equal("uncategorized", expense[1].CategoryCode)
	suite.Equal("Uncategorized", expense[1].CategoryName)
	suite.Equal("Kategorisiz", expense[1].CategoryNameLocalized)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.VatReports.WithLabelValues(services.PeriodRange)))
}

func (suite *VatReportServiceTestSuite) TestGenerateVatSummaryReport_RefundAndCustomRate() {
	ctx := context.Background()
	suite.ledger.On("QueryLedger", ctx, mock.Anything).Return([]domain.LedgerEntry{
		ledgerEntry("t-1", domain.TransactionTypeIncome, "2025-01-15", 1000, 1750, 175, nil),
		ledgerEntry("t-2", domain.TransactionTypeExpense, "2025-01-20", 10000, 2000, 2000, nil),
	}, nil).Once()

	report, err := suite.service.GenerateVatSummaryForMonth(ctx, "user-1", 2025, 1, domain.DefaultVatReportOptions())

	suite.Require().NoError(err)
	suite.Equal(int64(-1825), report.NetPosition.NetVat)
	suite.True(report.NetPosition.IsRefundDue)
	suite.Equal("VAT refund due from HMRC: £18.25", report.NetPosition.Description["en"])
	suite.Equal("Custom Rate (17.5%)", report.OutputVat.ByRate[0].RateName["en"])
	suite.Equal("Özel Oran (%17.5)", report.OutputVat.ByRate[0].RateName["tr"])
	suite.Equal("2024-25", report.Period.TaxYear)
}

func (suite *VatReportServiceTestSuite) TestGenerateVatSummaryForTaxYear_Empty() {
	ctx := context.Background()
	suite.ledger.On("QueryLedger", ctx, filterFor("2024-04-06", "2025-04-05", nil)).Return([]domain.LedgerEntry{}, nil).Once()

	report, err := suite.service.GenerateVatSummaryForTaxYear(ctx, "user-1", "2024-25", domain.DefaultVatReportOptions())

	suite.Require().NoError(err)
	suite.Equal(int64(0), report.NetPosition.NetVat)
	suite.False(report.NetPosition.IsRefundDue)
	suite.Equal("No VAT payable or refundable for this period", report.NetPosition.Description["en"])
	suite.Empty(report.OutputVat.ByRate)
	suite.Equal(domain.TransactionCounts{}, report.TransactionCounts)
	suite.NotNil(report.MonthlyBreakdown)
	suite.Empty(report.MonthlyBreakdown)
}

func (suite *VatReportServiceTestSuite) TestInvalidPeriodsNeverQueryTheLedger() {
	ctx := context.Background()
	opts := domain.DefaultVatReportOptions()

	_, err := suite.service.GenerateVatSummaryReport(ctx, "user-1", "2025-06-30", "2025-04-01", opts)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GenerateVatSummaryForQuarter(ctx, "user-1", 2025, 5, opts)
	suite.ErrorIs(err, apperrors.ErrInvalidQuarter)

	_, err = suite.service.GenerateVatSummaryForTaxYear(ctx, "user-1", "2024-26", opts)
	suite.ErrorIs(err, apperrors.ErrInvalidTaxYear)

	_, err = suite.service.GenerateVatSummaryForMonth(ctx, "user-1", 2025, 0, opts)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)

	_, err = suite.service.GetVatTotals(ctx, "user-1", "01/04/2025", "2025-06-30")
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)

	suite.ledger.AssertNotCalled(suite.T(), "QueryLedger", mock.Anything, mock.Anything)
}

func (suite *VatReportServiceTestSuite) TestGetOutputAndInputVatByRate() {
	ctx := context.Background()
	income := domain.TransactionTypeIncome
	expense := domain.TransactionTypeExpense
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", &income)).Return(quarterLedger()[:2], nil).Once()
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", &expense)).Return(quarterLedger()[2:], nil).Once()

	output, err := suite.service.GetOutputVatByRate(ctx, "user-1", "2025-04-01", "2025-06-30")
	suite.Require().NoError(err)
	suite.Require().Len(output, 2)
	suite.Equal(int64(12000), output[0].GrossAmount)

	input, err := suite.service.GetInputVatByRate(ctx, "user-1", "2025-04-01", "2025-06-30")
	suite.Require().NoError(err)
	suite.Require().Len(input, 2)
	suite.Equal(int64(1600), input[0].VatAmount)
	suite.Equal("Reduced Rate (5%)", input[1].RateName["en"])

	suite.ledger.AssertExpectations(suite.T())
}

func (suite *VatReportServiceTestSuite) TestGetVatTotalsAndMonthlySummary() {
	ctx := context.Background()
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", nil)).Return(quarterLedger(), nil).Twice()

	totals, err := suite.service.GetVatTotals(ctx, "user-1", "2025-04-01", "2025-06-30")
	suite.Require().NoError(err)
	suite.Equal(int64(2250), totals.Output.VatAmount)
	suite.Equal(int64(1700), totals.Input.VatAmount)

	months, err := suite.service.GetMonthlyVatSummary(ctx, "user-1", "2025-04-01", "2025-06-30")
	suite.Require().NoError(err)
	suite.Require().Len(months, 3)
	suite.Equal("2025-04", months[0].Label)
	suite.Equal(int64(400), months[0].NetVat)
}

func (suite *VatReportServiceTestSuite) TestGetVatByCategory() {
	ctx := context.Background()
	expense := domain.TransactionTypeExpense
	suite.ledger.On("QueryLedger", ctx, filterFor("2025-04-01", "2025-06-30", &expense)).Return(quarterLedger()[2:], nil).Once()
	suite.categories.On("ListCategories", ctx, "user-1").Return([]domain.Category{}, nil).Once()

	rows, err := suite.service.GetVatByCategory(ctx, "user-1", "2025-04-01", "2025-06-30", expense)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	// "equipment" is unknown to the directory so it gets the fallback label but keeps its id.
	suite.Require().NotNil(rows[0].CategoryID)
	suite.Equal("equipment", *rows[0].CategoryID)
	suite.Equal("Uncategorized", rows[0].CategoryName)

	_, err = suite.service.GetVatByCategory(ctx, "user-1", "2025-04-01", "2025-06-30", domain.TransactionType("transfer"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VatReportServiceTestSuite) TestRepositoryErrorsPropagate() {
	ctx := context.Background()
	boom := errors.New("connection refused")
	suite.ledger.On("QueryLedger", ctx, mock.Anything).Return(nil, boom).Once()

	_, err := suite.service.GenerateVatSummaryForQuarter(ctx, "user-1", 2025, 2, domain.DefaultVatReportOptions())
	suite.ErrorIs(err, boom)
	suite.Equal(0.0, testutil.ToFloat64(suite.metrics.VatReports.WithLabelValues(services.PeriodQuarter)))

	suite.ledger.On("QueryLedger", ctx, mock.Anything).Return(quarterLedger(), nil).Once()
	suite.categories.On("ListCategories", ctx, "user-1").Return(nil, boom).Once()

	_, err = suite.service.GenerateVatSummaryForQuarter(ctx, "user-1", 2025, 2, domain.VatReportOptions{IncludeCategories: true})
	suite.ErrorIs(err, boom)
}
