package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portsrepo "github.com/SscSPs/uk_books_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListOverdueCandidates(ctx context.Context, asOf time.Time, limit int) ([]domain.Invoice, error) {
	args := m.Called(ctx, asOf, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ApplyStatusChange(ctx context.Context, invoiceID string, expectedUpdatedAt time.Time, change domain.StatusChange) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, expectedUpdatedAt, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock LedgerQuery ---
type MockLedgerQuery struct {
	mock.Mock
}

func (m *MockLedgerQuery) QueryLedger(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portsrepo.LedgerQuery = (*MockLedgerQuery)(nil)

// --- Mock CategoryDirectory ---
type MockCategoryDirectory struct {
	mock.Mock
}

func (m *MockCategoryDirectory) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portsrepo.CategoryDirectory = (*MockCategoryDirectory)(nil)

// --- Mock Tracker ---
type MockTracker struct {
	mock.Mock
}

func (m *MockTracker) Track(distinctID, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}
