package services

import (
	"github.com/SscSPs/uk_books_app/internal/analytics"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/SscSPs/uk_books_app/internal/obs"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, localizer localization.Localizer, metrics *obs.Metrics, tracker analytics.Tracker) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice: NewInvoiceService(repos.InvoiceRepo,
			WithInvoiceLocalizer(localizer),
			WithInvoiceMetrics(metrics),
			WithInvoiceTracker(tracker),
		),
		VatReport: NewVatReportService(repos.LedgerRepo, repos.CategoryRepo,
			WithVatLocalizer(localizer),
			WithVatMetrics(metrics),
		),
	}
}
