package accounting_test

import (
	"testing"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func datedAcct(name, category string, balance int64, date time.Time) domain.Account {
	return domain.Account{
		AccountName: name,
		Category:    category,
		Balance:     decimal.NewFromInt(balance),
		Date:        date,
	}
}

func TestSumByCategory_DateWindowScenario(t *testing.T) {
	window := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	accounts := []domain.Account{
		datedAcct("Service Revenue", domain.CategoryRevenue, 100, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		datedAcct("Interest Revenue", domain.CategoryRevenue, 200, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		datedAcct("Old Revenue", domain.CategoryRevenue, 50, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := accounting.SumByCategory(accounts, &window, domain.CategoryRevenue)

	assert.True(t, got.Equal(decimal.NewFromInt(300)), "got %s", got)
}

func TestSumByCategory_InclusiveBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	window := domain.DateRange{Start: start, End: end}

	accounts := []domain.Account{
		datedAcct("On start", domain.CategoryRevenue, 10, start),
		datedAcct("On end", domain.CategoryRevenue, 20, end),
		datedAcct("Just after", domain.CategoryRevenue, 40, end.Add(time.Nanosecond)),
	}

	got := accounting.SumByCategory(accounts, &window, domain.CategoryRevenue)

	assert.True(t, got.Equal(decimal.NewFromInt(30)), "got %s", got)
}

func TestSum_PermutationInvariant(t *testing.T) {
	base := []domain.Account{
		datedAcct("A", domain.CategoryExpenses, 17, time.Time{}),
		datedAcct("B", domain.CategoryExpenses, 23, time.Time{}),
		datedAcct("C", domain.CategoryExpenses, 41, time.Time{}),
		datedAcct("D", domain.CategoryExpenses, 59, time.Time{}),
	}
	permuted := []domain.Account{base[2], base[0], base[3], base[1]}

	all := func(domain.Account) bool { return true }
	assert.True(t, accounting.Sum(base, nil, all).Equal(accounting.Sum(permuted, nil, all)))
}

func TestSumByAccountName_IgnoresDateField(t *testing.T) {
	// Name-keyed sums trust the fetch that produced the set; a record's Date
	// never excludes it here.
	accounts := []domain.Account{
		datedAcct(domain.OwnersCapitalAccountName, domain.CategoryEquity, 1000, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)),
		datedAcct(domain.OwnersCapitalAccountName, domain.CategoryEquity, 500, time.Time{}),
		datedAcct("Owner's Drawings", domain.CategoryEquity, 999, time.Time{}),
	}

	got := accounting.SumByAccountName(accounts, domain.OwnersCapitalAccountName)

	assert.True(t, got.Equal(decimal.NewFromInt(1500)), "got %s", got)
}

func TestNegatedSumByAccountName(t *testing.T) {
	accounts := []domain.Account{
		datedAcct(domain.CashDividendsAccountName, domain.CategoryEquity, 250, time.Time{}),
		datedAcct(domain.CashDividendsAccountName, domain.CategoryEquity, 150, time.Time{}),
	}

	got := accounting.NegatedSumByAccountName(accounts, domain.CashDividendsAccountName)

	assert.True(t, got.Equal(decimal.NewFromInt(-400)), "got %s", got)
}

func TestSum_EmptyInputIsZero(t *testing.T) {
	got := accounting.Sum(nil, nil, func(domain.Account) bool { return true })
	assert.True(t, got.IsZero())
}
