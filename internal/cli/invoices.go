package cli

import (
	"time"

	"github.com/SscSPs/uk_books_app/internal/analytics"
	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/core/services"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/spf13/cobra"
)

func newInvoicesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Invoice maintenance",
	}
	cmd.AddCommand(newMarkOverdueCommand(rt))
	return cmd
}

func newMarkOverdueCommand(rt *runtime) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "mark-overdue",
		Short: "Move pending invoices past their due date to overdue",
		Long: `Applies the mark_overdue event to every pending invoice whose due date is
before --as-of. Invoices changed concurrently are reported as conflicts and
left for the next run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asOf == "" {
				asOf = time.Now().UTC().Format(domain.DateLayout)
			}
			date, err := vat.ParseDate(asOf)
			if err != nil {
				return err
			}

			st, err := openStores(cmd.Context(), rt.cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			tracker := analytics.NewPosthogTracker(rt.cfg.PosthogAPIKey, rt.cfg.PosthogEndpoint, rt.logger)
			defer tracker.Close()

			svc := services.NewServiceContainer(st.repositories(), localization.Default(), nil, tracker).Invoice
			result, err := svc.MarkOverdue(cmd.Context(), date)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Cut-off date (YYYY-MM-DD), today when omitted")
	return cmd
}
