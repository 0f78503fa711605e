package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoice(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetTransitions(ctx context.Context, userID, invoiceID string) (*portssvc.InvoiceTransitions, error) {
	args := m.Called(ctx, userID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.InvoiceTransitions), args.Error(1)
}

func (m *MockInvoiceService) ChangeStatus(ctx context.Context, userID, invoiceID string, target domain.InvoiceStatus, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, target, expectedUpdatedAt, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ApplyEvent(ctx context.Context, userID, invoiceID string, event domain.InvoiceEvent, expectedUpdatedAt *time.Time, details *domain.PaymentDetails) (*domain.Invoice, error) {
	args := m.Called(ctx, userID, invoiceID, event, expectedUpdatedAt, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) MarkOverdue(ctx context.Context, asOf time.Time) (*portssvc.OverdueSweepResult, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.OverdueSweepResult), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock VatReportService ---
type MockVatReportService struct {
	mock.Mock
}

func (m *MockVatReportService) GetOutputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatRateBreakdown), args.Error(1)
}

func (m *MockVatReportService) GetInputVatByRate(ctx context.Context, userID, startDate, endDate string) ([]domain.VatRateBreakdown, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VatRateBreakdown), args.Error(1)
}

func (m *MockVatReportService) GetVatTotals(ctx context.Context, userID, startDate, endDate string) (*domain.VatTotals, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatTotals), args.Error(1)
}

func (m *MockVatReportService) GetMonthlyVatSummary(ctx context.Context, userID, startDate, endDate string) ([]domain.MonthlyVatSummary, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyVatSummary), args.Error(1)
}

func (m *MockVatReportService) GetVatByCategory(ctx context.Context, userID, startDate, endDate string, typ domain.TransactionType) ([]domain.CategoryVatBreakdown, error) {
	args := m.Called(ctx, userID, startDate, endDate, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryVatBreakdown), args.Error(1)
}

func (m *MockVatReportService) GenerateVatSummaryReport(ctx context.Context, userID, startDate, endDate string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	args := m.Called(ctx, userID, startDate, endDate, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummaryReport), args.Error(1)
}

func (m *MockVatReportService) GenerateVatSummaryForTaxYear(ctx context.Context, userID, taxYear string, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	args := m.Called(ctx, userID, taxYear, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummaryReport), args.Error(1)
}

func (m *MockVatReportService) GenerateVatSummaryForMonth(ctx context.Context, userID string, year, month int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	args := m.Called(ctx, userID, year, month, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummaryReport), args.Error(1)
}

func (m *MockVatReportService) GenerateVatSummaryForQuarter(ctx context.Context, userID string, year, quarter int, opts domain.VatReportOptions) (*domain.VatSummaryReport, error) {
	args := m.Called(ctx, userID, year, quarter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VatSummaryReport), args.Error(1)
}

var _ portssvc.VatReportService = (*MockVatReportService)(nil)
