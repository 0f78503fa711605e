package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/uk_books_app/internal/apperrors"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/SscSPs/uk_books_app/internal/ids"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/SscSPs/uk_books_app/internal/obs"
)

// Period kinds recorded on books_vat_reports_total.
const (
	PeriodRange   = "range"
	PeriodTaxYear = "tax_year"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
)

const uncategorizedCode = "uncategorized"

type vatReportService struct {
	BaseService
	ledger     portsrepo.LedgerQuery
	categories portsrepo.CategoryDirectory
	localizer  localization.Localizer
	metrics    *obs.Metrics
	now        func() time.Time
}

// VatReportServiceOption is a functional option for configuring the VAT report service
type VatReportServiceOption func(*vatReportService)

// WithVatLocalizer overrides the bundled catalog used for rate names and net position sentences.
func WithVatLocalizer(l localization.Localizer) VatReportServiceOption {
	return func(s *vatReportService) {
		if l != nil {
			s.localizer = l
		}
	}
}

// WithVatMetrics counts generated reports.
func WithVatMetrics(m *obs.Metrics) VatReportServiceOption {
	return func(s *vatReportService) {
		s.metrics = m
	}
}

// WithVatClock sets the clock used for generatedAt and report ids.
func WithVatClock(now func() time.Time) VatReportServiceOption {
	return func(s *vatReportService) {
		s.now = now
	}
}

// NewVatReportService creates a new VAT report service with the provided options
func NewVatReportService(ledger portsrepo.LedgerQuery, categories portsrepo.CategoryDirectory, options ...VatReportServiceOption) portssvc.VatReportService {
	svc := &vatReportService{
		ledger:     ledger,
		categories: categories,
		localizer:  localization.Default(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VatReportService = (*vatReportService)(nil)

// load fetches the non-void entries of a period. typ narrows the query to one transaction type.
func (s *vatReportService) load(ctx context.Context, userID string, period domain.VatPeriod, typ *domain.TransactionType) ([]domain.LedgerEntry, error) {
	entries, err := s.ledger.QueryLedger(ctx, domain.LedgerFilter{
		UserID:           userID,
		Type:             typ,
		ExcludedStatuses: []domain.TransactionStatus{domain.TransactionStatusVoid},
		DateFrom:         period.StartDate,
		DateTo:           period.EndDate,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to query ledger",
			slog.String("user_id", userID),
			slog.String("start_date", period.StartDate.Format(domain.DateLayout)),
			slog.String("end_date", period.EndDate.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	return entries, nil
}

func (s *vatReportService) byRate(ctx context.Context, userID, startDate, endDate string, typ domain.TransactionType) ([]domain.VatRateBreakdown, error) {
	period, err := vat.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, userID, period, &typ)
	if err != nil {
		return nil, err
	}
	return s.nameRates(vat.ByRate(entries, period, typ)), nil
}

// GetOutputVatByRate groups VAT charged on sales by rate.
func (s *vatReportService) GetOutputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error) {
	return s.byRate(ctx, userID, startDate, endDate, domain.TransactionTypeIncome)
}

// GetInputVatByRate groups VAT paid on purchases by rate.
func (s *vatReportService) GetInputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error) {
	return s.byRate(ctx, userID, startDate, endDate, domain.TransactionTypeExpense)
}

// GetVatTotals sums output and input VAT over the range.
func (s *vatReportService) GetVatTotals(ctx context.Context, userID, startDate, endDate string) (*domain.VatTotals, error) {
	period, err := vat.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, userID, period, nil)
	if err != nil {
		return nil, err
	}
	totals := vat.Totals(entries, period)
	return &totals, nil
}

// GetMonthlyVatSummary returns one row per calendar month that has entries.
func (s *vatReportService) GetMonthlyVatSummary(ctx context.Context, userID, startDate, endDate string) ([]domain.MonthlyVatSummary, error) {
	period, err := vat.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, userID, period, nil)
	if err != nil {
		return nil, err
	}
	return vat.MonthlySummary(entries, period), nil
}

// GetVatByCategory groups one transaction type by category, largest VAT first.
func (s *vatReportService) GetVatByCategory(ctx context.Context, userID, startDate, endDate string, typ domain.TransactionType) ([]domain.CategoryVatBreakdown, error) {
	if typ != domain.TransactionTypeIncome && typ != domain.TransactionTypeExpense {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, typ)
	}
	period, err := vat.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	entries, err := s.load(ctx, userID, period, &typ)
	if err != nil {
		return nil, err
	}
	directory, fallback, err := s.categoryDirectory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return vat.ByCategory(entries, period, typ, directory, fallback), nil
}

// GenerateVatSummaryReport builds the full summary for an explicit date range.
func (s *vatReportService) GenerateVatSummaryReport(ctx context.Context, userID, startDate, endDate string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	period, err := vat.NewPeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, userID, period, opts, PeriodRange)
}

// GenerateVatSummaryForTaxYear builds the summary for a YYYY-YY tax year.
func (s *vatReportService) GenerateVatSummaryForTaxYear(ctx context.Context, userID, taxYear string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	period, err := vat.TaxYearDates(taxYear)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, userID, period, opts, PeriodTaxYear)
}

// GenerateVatSummaryForMonth builds the summary for one calendar month.
func (s *vatReportService) GenerateVatSummaryForMonth(ctx context.Context, userID string, year, month int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	period, err := vat.MonthPeriod(year, month)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, userID, period, opts, PeriodMonth)
}

// GenerateVatSummaryForQuarter builds the summary for calendar quarter 1-4.
func (s *vatReportService) GenerateVatSummaryForQuarter(ctx context.Context, userID string, year, quarter int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	period, err := vat.QuarterPeriod(year, quarter)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, userID, period, opts, PeriodQuarter)
}

func (s *vatReportService) generate(ctx context.Context, userID string, period domain.VatPeriod, opts domain.VatReportOptions, kind string) (*domain.VatSummaryReport, error) {
	// One snapshot feeds every section so the figures agree with each other.
	entries, err := s.load(ctx, userID, period, nil)
	if err != nil {
		return nil, err
	}

	totals := vat.Totals(entries, period)
	generatedAt := s.now()
	report := &domain.VatSummaryReport{
		ReportID:    ids.NewAt(generatedAt),
		GeneratedAt: generatedAt,
		Period:      period,
		OutputVat: domain.VatSection{
			ByRate: s.nameRates(vat.OutputByRate(entries, period)),
			Totals: totals.Output,
		},
		InputVat: domain.VatSection{
			ByRate: s.nameRates(vat.InputByRate(entries, period)),
			Totals: totals.Input,
		},
		NetPosition: s.netPosition(totals),
		TransactionCounts: domain.TransactionCounts{
			Income:  totals.Output.TransactionCount,
			Expense: totals.Input.TransactionCount,
			Total:   totals.Output.TransactionCount + totals.Input.TransactionCount,
		},
	}

	if opts.IncludeMonthly {
		report.MonthlyBreakdown = vat.MonthlySummary(entries, period)
	}
	if opts.IncludeCategories {
		directory, fallback, err := s.categoryDirectory(ctx, userID)
		if err != nil {
			return nil, err
		}
		report.CategoryBreakdown = &domain.CategoryBreakdown{
			Income:  vat.ByCategory(entries, period, domain.TransactionTypeIncome, directory, fallback),
			Expense: vat.ByCategory(entries, period, domain.TransactionTypeExpense, directory, fallback),
		}
	}

	s.metrics.ObserveVatReport(kind)
	s.LogInfo(ctx, "VAT summary report generated",
		slog.String("report_id", report.ReportID),
		slog.String("user_id", userID),
		slog.String("period", kind),
		slog.String("start_date", period.StartDate.Format(domain.DateLayout)),
		slog.String("end_date", period.EndDate.Format(domain.DateLayout)),
		slog.Int("transactions", report.TransactionCounts.Total))
	return report, nil
}

func (s *vatReportService) nameRates(rates []domain.VatRateBreakdown) []domain.VatRateBreakdown {
	for i := range rates {
		rates[i].RateName = s.rateName(rates[i].VatRate)
	}
	return rates
}

func (s *vatReportService) rateName(basisPoints int64) domain.LocalizedText {
	switch basisPoints {
	case domain.VatRateStandard:
		return s.localizer.Localized(localization.VatRateStandard)
	case domain.VatRateReduced:
		return s.localizer.Localized(localization.VatRateReduced)
	case domain.VatRateZero:
		return s.localizer.Localized(localization.VatRateZero)
	default:
		return s.localizer.Localized(localization.VatRateCustom, vat.RatePercent(basisPoints).String())
	}
}

func (s *vatReportService) netPosition(totals domain.VatTotals) domain.NetVatPosition {
	net := totals.Output.VatAmount - totals.Input.VatAmount
	pos := domain.NetVatPosition{
		OutputVat:   totals.Output.VatAmount,
		InputVat:    totals.Input.VatAmount,
		NetVat:      net,
		IsRefundDue: net < 0,
	}
	switch {
	case net > 0:
		pos.Description = s.localizer.Localized(localization.VatNetPayable, vat.FormatMinorUnits(net))
	case net < 0:
		pos.Description = s.localizer.Localized(localization.VatNetRefundDue, vat.FormatMinorUnits(-net))
	default:
		pos.Description = s.localizer.Localized(localization.VatNetNil)
	}
	return pos
}

// categoryDirectory loads the user's categories keyed by id, plus the label for uncategorized entries.
func (s *vatReportService) categoryDirectory(ctx context.Context, userID string) (map[string]domain.Category, domain.Category, error) {
	names := s.localizer.Localized(localization.CategoryUncategorized)
	fallback := domain.Category{
		Code:          uncategorizedCode,
		Name:          names[localization.LocaleEnglish],
		NameLocalized: names[localization.LocaleTurkish],
	}

	categories, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("user_id", userID))
		return nil, fallback, fmt.Errorf("failed to list categories: %w", err)
	}
	directory := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		directory[c.CategoryID] = c
	}
	return directory, fallback, nil
}
