package vat_test

import (
	"testing"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(typ domain.TransactionType, day string, net, rate, vatAmount int64, category *string) domain.LedgerEntry {
	return domain.LedgerEntry{
		TransactionID:   string(typ) + day,
		Type:            typ,
		Status:          domain.TransactionStatusActive,
		TransactionDate: date(day),
		Amount:          net,
		VatRate:         rate,
		VatAmount:       vatAmount,
		TotalAmount:     net + vatAmount,
		CategoryID:      category,
	}
}

func strPtr(s string) *string { return &s }

func quarterTwo(t *testing.T) domain.VatPeriod {
	t.Helper()
	p, err := vat.QuarterPeriod(2025, 2)
	require.NoError(t, err)
	return p
}

func sampleLedger() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		entry(domain.TransactionTypeIncome, "2025-04-10", 10000, 2000, 2000, strPtr("sales")),
		entry(domain.TransactionTypeIncome, "2025-05-02", 5000, 500, 250, strPtr("energy")),
		entry(domain.TransactionTypeExpense, "2025-04-20", 8000, 2000, 1600, strPtr("equipment")),
		entry(domain.TransactionTypeExpense, "2025-06-30", 2000, 500, 100, nil),
	}
}

func TestByRate_OrdersHighestRateFirst(t *testing.T) {
	p := quarterTwo(t)
	ledger := append(sampleLedger(), entry(domain.TransactionTypeIncome, "2025-04-11", 3000, 0, 0, nil))

	got := vat.OutputByRate(ledger, p)

	require.Len(t, got, 3)
	assert.Equal(t, []int64{2000, 500, 0}, []int64{got[0].VatRate, got[1].VatRate, got[2].VatRate})
	assert.True(t, decimal.NewFromInt(20).Equal(got[0].VatRatePercent))
	assert.Equal(t, 1, got[0].TransactionCount)
	for _, b := range got {
		assert.Equal(t, b.GrossAmount, b.NetAmount+b.VatAmount)
	}
}

func TestRatePercent_CustomRate(t *testing.T) {
	assert.Equal(t, "17.5", vat.RatePercent(1750).String())
	assert.Equal(t, "0", vat.RatePercent(0).String())
}

func TestTotals_SpecExample(t *testing.T) {
	totals := vat.Totals(sampleLedger(), quarterTwo(t))

	assert.Equal(t, int64(2250), totals.Output.VatAmount)
	assert.Equal(t, int64(15000), totals.Output.NetAmount)
	assert.Equal(t, int64(17250), totals.Output.GrossAmount)
	assert.Equal(t, 2, totals.Output.TransactionCount)
	assert.Equal(t, int64(1700), totals.Input.VatAmount)
	assert.Equal(t, 2, totals.Input.TransactionCount)

	assert.Equal(t, vat.SumRates(vat.OutputByRate(sampleLedger(), quarterTwo(t))), totals.Output)
	assert.Equal(t, vat.SumRates(vat.InputByRate(sampleLedger(), quarterTwo(t))), totals.Input)
}

func TestAggregates_ExcludeVoidAndOutOfRange(t *testing.T) {
	p := quarterTwo(t)
	void := entry(domain.TransactionTypeIncome, "2025-04-15", 90000, 2000, 18000, nil)
	void.Status = domain.TransactionStatusVoid
	ledger := append(sampleLedger(),
		void,
		entry(domain.TransactionTypeIncome, "2025-03-31", 1000, 2000, 200, nil),
		entry(domain.TransactionTypeExpense, "2025-07-01", 1000, 2000, 200, nil),
	)

	totals := vat.Totals(ledger, p)
	assert.Equal(t, int64(2250), totals.Output.VatAmount)
	assert.Equal(t, int64(1700), totals.Input.VatAmount)

	for _, m := range vat.MonthlySummary(ledger, p) {
		assert.NotEqual(t, "2025-03", m.Label)
		assert.NotEqual(t, "2025-07", m.Label)
	}
	for _, c := range vat.ByCategory(ledger, p, domain.TransactionTypeIncome, nil, domain.Category{Name: "Uncategorized"}) {
		assert.NotEqual(t, int64(18000), c.VatAmount)
	}
}

func TestEmptyLedger(t *testing.T) {
	p := quarterTwo(t)

	assert.Equal(t, domain.VatTotals{}, vat.Totals(nil, p))
	assert.Empty(t, vat.OutputByRate(nil, p))
	assert.NotNil(t, vat.OutputByRate(nil, p))
	assert.Empty(t, vat.MonthlySummary(nil, p))
}

func TestMonthlySummary(t *testing.T) {
	ledger := append(sampleLedger(), entry(domain.TransactionTypeExpense, "2025-05-20", 20000, 2000, 4000, nil))

	got := vat.MonthlySummary(ledger, quarterTwo(t))

	require.Len(t, got, 3)
	assert.Equal(t, "2025-04", got[0].Label)
	assert.Equal(t, int64(2000-1600), got[0].NetVat)
	assert.False(t, got[0].IsRefundDue)
	assert.Equal(t, 1, got[0].IncomeCount)
	assert.Equal(t, 1, got[0].ExpenseCount)

	assert.Equal(t, "2025-05", got[1].Label)
	assert.Equal(t, 2025, got[1].Year)
	assert.Equal(t, 5, got[1].Month)
	assert.Equal(t, int64(250-4000), got[1].NetVat)
	assert.True(t, got[1].IsRefundDue)

	assert.Equal(t, "2025-06", got[2].Label)
	assert.Equal(t, int64(-100), got[2].NetVat)
}

func TestByCategory(t *testing.T) {
	directory := map[string]domain.Category{
		"equipment": {CategoryID: "equipment", Code: "EQP", Name: "Equipment", NameLocalized: "Ekipman"},
	}
	fallback := domain.Category{Code: "uncategorized", Name: "Uncategorized", NameLocalized: "Kategorisiz"}
	ledger := append(sampleLedger(),
		entry(domain.TransactionTypeExpense, "2025-05-01", 1000, 2000, 200, strPtr("equipment")),
		entry(domain.TransactionTypeExpense, "2025-05-03", 500, 2000, 100, strPtr("deleted-category")),
	)

	got := vat.ByCategory(ledger, quarterTwo(t), domain.TransactionTypeExpense, directory, fallback)

	require.Len(t, got, 3)
	assert.Equal(t, "Equipment", got[0].CategoryName)
	assert.Equal(t, "Ekipman", got[0].CategoryNameLocalized)
	assert.Equal(t, int64(1800), got[0].VatAmount)
	assert.Equal(t, 2, got[0].TransactionCount)

	// Ties on VAT amount fall back to name, then id.
	assert.Equal(t, int64(100), got[1].VatAmount)
	assert.Equal(t, int64(100), got[2].VatAmount)
	assert.Equal(t, "Kategorisiz", got[1].CategoryNameLocalized)
	assert.Equal(t, "Uncategorized", got[2].CategoryName)
	assert.Nil(t, got[1].CategoryID)
	require.NotNil(t, got[2].CategoryID)
	assert.Equal(t, "deleted-category", *got[2].CategoryID)
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "5.50", vat.FormatMinorUnits(550))
	assert.Equal(t, "0.00", vat.FormatMinorUnits(0))
	assert.Equal(t, "1234.05", vat.FormatMinorUnits(123405))
}
