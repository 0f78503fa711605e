package vat

import (
	"cmp"
	"slices"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatePercent converts basis points to a percentage (2000 -> 20, 1750 -> 17.5).
func RatePercent(basisPoints int64) decimal.Decimal {
	return decimal.New(basisPoints, -2)
}

// counts reports whether e belongs in an aggregate over period. typ may be nil for both types.
func counts(e domain.LedgerEntry, period domain.VatPeriod, typ *domain.TransactionType) bool {
	if e.Status == domain.TransactionStatusVoid {
		return false
	}
	if typ != nil && e.Type != *typ {
		return false
	}
	return period.Contains(e.TransactionDate)
}

// ByRate groups entries of one type by VAT rate, highest rate first.
func ByRate(entries []domain.LedgerEntry, period domain.VatPeriod, typ domain.TransactionType) []domain.VatRateBreakdown {
	buckets := map[int64]*domain.VatRateBreakdown{}
	for _, e := range entries {
		if !counts(e, period, &typ) {
			continue
		}
		b, ok := buckets[e.VatRate]
		if !ok {
			b = &domain.VatRateBreakdown{VatRate: e.VatRate, VatRatePercent: RatePercent(e.VatRate)}
			buckets[e.VatRate] = b
		}
		b.TransactionCount++
		b.NetAmount += e.Amount
		b.VatAmount += e.VatAmount
		b.GrossAmount += e.TotalAmount
	}

	out := make([]domain.VatRateBreakdown, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b domain.VatRateBreakdown) int {
		return cmp.Compare(b.VatRate, a.VatRate)
	})
	return out
}

// OutputByRate is ByRate over income (VAT charged on sales).
func OutputByRate(entries []domain.LedgerEntry, period domain.VatPeriod) []domain.VatRateBreakdown {
	return ByRate(entries, period, domain.TransactionTypeIncome)
}

// InputByRate is ByRate over expenses (VAT paid on purchases).
func InputByRate(entries []domain.LedgerEntry, period domain.VatPeriod) []domain.VatRateBreakdown {
	return ByRate(entries, period, domain.TransactionTypeExpense)
}

// Totals sums output and input in a single pass.
func Totals(entries []domain.LedgerEntry, period domain.VatPeriod) domain.VatTotals {
	var totals domain.VatTotals
	for _, e := range entries {
		if !counts(e, period, nil) {
			continue
		}
		line := &totals.Input
		if e.Type == domain.TransactionTypeIncome {
			line = &totals.Output
		} else if e.Type != domain.TransactionTypeExpense {
			continue
		}
		line.TransactionCount++
		line.NetAmount += e.Amount
		line.VatAmount += e.VatAmount
		line.GrossAmount += e.TotalAmount
	}
	return totals
}

// SumRates totals a per-rate breakdown.
func SumRates(rates []domain.VatRateBreakdown) domain.VatTotalsLine {
	var line domain.VatTotalsLine
	for _, r := range rates {
		line.TransactionCount += r.TransactionCount
		line.NetAmount += r.NetAmount
		line.VatAmount += r.VatAmount
		line.GrossAmount += r.GrossAmount
	}
	return line
}

// MonthlySummary groups entries by calendar month, oldest first. Months without entries are omitted.
func MonthlySummary(entries []domain.LedgerEntry, period domain.VatPeriod) []domain.MonthlyVatSummary {
	buckets := map[string]*domain.MonthlyVatSummary{}
	for _, e := range entries {
		if !counts(e, period, nil) {
			continue
		}
		if e.Type != domain.TransactionTypeIncome && e.Type != domain.TransactionTypeExpense {
			continue
		}
		label := e.TransactionDate.Format("2006-01")
		m, ok := buckets[label]
		if !ok {
			m = &domain.MonthlyVatSummary{
				Year:  e.TransactionDate.Year(),
				Month: int(e.TransactionDate.Month()),
				Label: label,
			}
			buckets[label] = m
		}
		if e.Type == domain.TransactionTypeIncome {
			m.OutputVat += e.VatAmount
			m.IncomeCount++
		} else {
			m.InputVat += e.VatAmount
			m.ExpenseCount++
		}
	}

	out := make([]domain.MonthlyVatSummary, 0, len(buckets))
	for _, m := range buckets {
		m.NetVat = m.OutputVat - m.InputVat
		m.IsRefundDue = m.NetVat < 0
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b domain.MonthlyVatSummary) int {
		return cmp.Compare(a.Label, b.Label)
	})
	return out
}

// ByCategory groups entries of one type by category, largest VAT first.
// Entries with no category, or a category missing from directory, carry the fallback labels.
func ByCategory(entries []domain.LedgerEntry, period domain.VatPeriod, typ domain.TransactionType, directory map[string]domain.Category, fallback domain.Category) []domain.CategoryVatBreakdown {
	const uncategorizedKey = "\x00uncategorized"

	buckets := map[string]*domain.CategoryVatBreakdown{}
	for _, e := range entries {
		if !counts(e, period, &typ) {
			continue
		}
		key := uncategorizedKey
		if e.CategoryID != nil {
			key = *e.CategoryID
		}
		b, ok := buckets[key]
		if !ok {
			b = newCategoryBucket(e.CategoryID, directory, fallback)
			buckets[key] = b
		}
		b.TransactionCount++
		b.NetAmount += e.Amount
		b.VatAmount += e.VatAmount
		b.GrossAmount += e.TotalAmount
	}

	out := make([]domain.CategoryVatBreakdown, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b domain.CategoryVatBreakdown) int {
		if c := cmp.Compare(b.VatAmount, a.VatAmount); c != 0 {
			return c
		}
		if c := cmp.Compare(a.CategoryName, b.CategoryName); c != 0 {
			return c
		}
		return cmp.Compare(categoryKey(a.CategoryID), categoryKey(b.CategoryID))
	})
	return out
}

func newCategoryBucket(id *string, directory map[string]domain.Category, fallback domain.Category) *domain.CategoryVatBreakdown {
	b := &domain.CategoryVatBreakdown{
		CategoryCode:          fallback.Code,
		CategoryName:          fallback.Name,
		CategoryNameLocalized: fallback.NameLocalized,
	}
	if id == nil {
		return b
	}
	idCopy := *id
	b.CategoryID = &idCopy
	if c, ok := directory[idCopy]; ok {
		b.CategoryCode = c.Code
		b.CategoryName = c.Name
		b.CategoryNameLocalized = c.NameLocalized
	}
	return b
}

func categoryKey(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}

// FormatMinorUnits renders pence as pounds with two decimals, e.g. 550 -> "5.50".
func FormatMinorUnits(amount int64) string {
	return decimal.New(amount, -2).StringFixed(2)
}

