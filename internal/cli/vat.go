package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/uk_books_app/internal/analytics"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/core/services"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/SscSPs/uk_books_app/internal/dto"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/spf13/cobra"
)

func newVatCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vat",
		Short: "UK VAT periods and reports",
	}
	cmd.AddCommand(newTaxYearCommand(), newVatReportCommand(rt))
	return cmd
}

func newTaxYearCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "tax-year",
		Short: "Print the UK tax year containing a date",
		Example: `  books_backend vat tax-year --date 2025-04-05
  books_backend vat tax-year`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().UTC().Format(domain.DateLayout)
			}
			parsed, err := vat.ParseDate(date)
			if err != nil {
				return err
			}
			period, err := vat.TaxYearDates(vat.TaxYearForDate(parsed))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.TaxYearLookupResponse{
				Date:              date,
				VatPeriodResponse: dto.ToVatPeriodResponse(period),
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), today when omitted")
	return cmd
}

// reportFlags selects exactly one period: a tax year, an explicit range, or a year with a quarter or month.
type reportFlags struct {
	userID            string
	taxYear           string
	startDate         string
	endDate           string
	year              int
	quarter           int
	month             int
	includeMonthly    bool
	includeCategories bool
	locale            string
}

func (f reportFlags) validate() error {
	if f.userID == "" {
		return fmt.Errorf("--user is required")
	}
	selected := 0
	if f.taxYear != "" {
		selected++
	}
	if f.startDate != "" || f.endDate != "" {
		selected++
	}
	if f.quarter != 0 || f.month != 0 {
		selected++
		if f.year == 0 {
			return fmt.Errorf("--year is required with --quarter or --month")
		}
		if f.quarter != 0 && f.month != 0 {
			return fmt.Errorf("use either --quarter or --month, not both")
		}
	}
	if selected != 1 {
		return fmt.Errorf("select exactly one period: --tax-year, --start/--end, or --year with --quarter or --month")
	}
	return nil
}

func generateReport(ctx context.Context, svc portssvc.VatReportService, f reportFlags) (*domain.VatSummaryReport, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	opts := domain.VatReportOptions{IncludeMonthly: f.includeMonthly, IncludeCategories: f.includeCategories}
	switch {
	case f.taxYear != "":
		return svc.GenerateVatSummaryForTaxYear(ctx, f.userID, f.taxYear, opts)
	case f.quarter != 0:
		return svc.GenerateVatSummaryForQuarter(ctx, f.userID, f.year, f.quarter, opts)
	case f.month != 0:
		return svc.GenerateVatSummaryForMonth(ctx, f.userID, f.year, f.month, opts)
	default:
		return svc.GenerateVatSummaryReport(ctx, f.userID, f.startDate, f.endDate, opts)
	}
}

func newVatReportCommand(rt *runtime) *cobra.Command {
	var f reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a VAT summary report as JSON",
		Example: `  books_backend vat report --user 7d0c... --tax-year 2025-26
  books_backend vat report --user 7d0c... --year 2025 --quarter 2 --categories
  books_backend vat report --user 7d0c... --start 2025-04-01 --end 2025-04-30 --locale tr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			if f.locale == "" {
				f.locale = rt.cfg.DefaultLocale.String()
			}

			st, err := openStores(cmd.Context(), rt.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			svc := services.NewServiceContainer(st.repositories(), localization.Default(), nil, analytics.Noop{}).VatReport
			report, err := generateReport(cmd.Context(), svc, f)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToVatSummaryReportResponse(report, f.locale))
		},
	}
	cmd.Flags().StringVar(&f.userID, "user", "", "User id whose ledger is reported")
	cmd.Flags().StringVar(&f.taxYear, "tax-year", "", "Tax year (YYYY-YY)")
	cmd.Flags().StringVar(&f.startDate, "start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.endDate, "end", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.year, "year", 0, "Calendar year for --quarter or --month")
	cmd.Flags().IntVar(&f.quarter, "quarter", 0, "Calendar quarter 1-4")
	cmd.Flags().IntVar(&f.month, "month", 0, "Calendar month 1-12")
	cmd.Flags().BoolVar(&f.includeMonthly, "monthly", true, "Include the monthly breakdown")
	cmd.Flags().BoolVar(&f.includeCategories, "categories", false, "Include the category breakdown")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale for netPositionText (en, tr), DEFAULT_LOCALE when omitted")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
