package accounting_test

import (
	"testing"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acct(number, name, category string, balance int64) domain.Account {
	return domain.Account{
		AccountID:     number,
		AccountNumber: number,
		AccountName:   name,
		Category:      category,
		Balance:       decimal.NewFromInt(balance),
		Active:        true,
	}
}

func TestApply_NoActivePredicates_ReturnsInputUnchanged(t *testing.T) {
	accounts := []domain.Account{
		acct("1110", "Cash", domain.CategoryAssets, 100),
		acct("6100", "Service Revenue", domain.CategoryRevenue, 500),
	}

	got := accounting.AccountFilter{}.Apply(accounts)

	assert.Equal(t, accounts, got)
}

func TestApply_BucketScenario(t *testing.T) {
	accounts := []domain.Account{
		acct("1500", "Inventory", domain.CategoryAssets, 100),
		acct("3500", "Notes Payable", domain.CategoryLiabilities, 50),
	}

	got := accounting.FilterByNumberRange(accounts, 1000, 1999)

	require.Len(t, got, 1)
	assert.Equal(t, "1500", got[0].AccountNumber)
}

func TestBucketFor_ExclusivePlacement(t *testing.T) {
	// Every numeric account number lands in at most one bucket; numbers in
	// the gaps land in none.
	cases := []struct {
		number string
		bucket string
		placed bool
	}{
		{"1000", domain.CategoryAssets, true},
		{"1999", domain.CategoryAssets, true},
		{"2500", "", false},
		{"3000", domain.CategoryLiabilities, true},
		{"4999", "", false},
		{"5500", domain.CategoryEquity, true},
		{"6999", domain.CategoryRevenue, true},
		{"7000", domain.CategoryExpenses, true},
		{"8000", "", false},
		{"not-a-number", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		bucket, ok := accounting.BucketFor(tc.number)
		assert.Equal(t, tc.placed, ok, "number %q", tc.number)
		if tc.placed {
			assert.Equal(t, tc.bucket, bucket.Name, "number %q", tc.number)
		}

		// Cross-check: membership across all declared buckets is exclusive.
		hits := 0
		for _, b := range accounting.Buckets {
			if len(accounting.FilterByNumberRange([]domain.Account{acct(tc.number, "X", "", 0)}, b.Start, b.End)) > 0 {
				hits++
			}
		}
		if tc.placed {
			assert.Equal(t, 1, hits, "number %q", tc.number)
		} else {
			assert.Zero(t, hits, "number %q", tc.number)
		}
	}
}

func TestApply_CategoryFilter_CaseInsensitiveToggleSet(t *testing.T) {
	accounts := []domain.Account{
		acct("1110", "Cash", "Assets", 100),
		acct("3110", "Accounts Payable", "Liabilities", 50),
		acct("5110", "Owner's Capital", "equity", 900),
	}

	selected := accounting.DefaultCategories()
	selected = accounting.ToggleCategory(selected, domain.CategoryLiabilities) // deselect

	got := accounting.AccountFilter{
		Mode:       accounting.FilterCategory,
		Categories: selected,
	}.Apply(accounts)

	require.Len(t, got, 2)
	assert.Equal(t, "Cash", got[0].AccountName)
	assert.Equal(t, "Owner's Capital", got[1].AccountName)

	// Toggling back on restores the full set without disturbing the rest.
	selected = accounting.ToggleCategory(selected, domain.CategoryLiabilities)
	got = accounting.AccountFilter{Mode: accounting.FilterCategory, Categories: selected}.Apply(accounts)
	assert.Len(t, got, 3)
}

func TestApply_SubcategorySubstringMatch(t *testing.T) {
	accounts := []domain.Account{
		{AccountNumber: "1110", AccountName: "Cash", SubCategory: "Current Assets"},
		{AccountNumber: "1710", AccountName: "Equipment", SubCategory: "Fixed Assets"},
	}

	got := accounting.AccountFilter{
		Mode:        accounting.FilterSubcategory,
		Subcategory: "current",
	}.Apply(accounts)

	require.Len(t, got, 1)
	assert.Equal(t, "Cash", got[0].AccountName)
}

func TestApply_NormalSideExactMatch(t *testing.T) {
	accounts := []domain.Account{
		{AccountNumber: "1110", AccountName: "Cash", NormalSide: domain.DebitSide},
		{AccountNumber: "3110", AccountName: "Accounts Payable", NormalSide: domain.CreditSide},
	}

	got := accounting.AccountFilter{
		Mode:       accounting.FilterNormalSide,
		NormalSide: domain.CreditSide,
	}.Apply(accounts)

	require.Len(t, got, 1)
	assert.Equal(t, "Accounts Payable", got[0].AccountName)
}

func TestApply_BalanceBounds(t *testing.T) {
	accounts := []domain.Account{
		acct("1110", "Petty Cash", domain.CategoryAssets, 50),
		acct("1120", "Cash", domain.CategoryAssets, 500),
		acct("1130", "Savings", domain.CategoryAssets, 5000),
	}

	t.Run("both bounds, currency formatting stripped", func(t *testing.T) {
		got := accounting.AccountFilter{
			Mode:    accounting.FilterBalance,
			Balance: accounting.BalanceBounds{Min: "$100", Max: "1,000.00"},
		}.Apply(accounts)
		require.Len(t, got, 1)
		assert.Equal(t, "Cash", got[0].AccountName)
	})

	t.Run("unset min is unbounded", func(t *testing.T) {
		got := accounting.AccountFilter{
			Mode:    accounting.FilterBalance,
			Balance: accounting.BalanceBounds{Max: "500"},
		}.Apply(accounts)
		assert.Len(t, got, 2)
	})

	t.Run("unset max is unbounded", func(t *testing.T) {
		got := accounting.AccountFilter{
			Mode:    accounting.FilterBalance,
			Balance: accounting.BalanceBounds{Min: "500"},
		}.Apply(accounts)
		assert.Len(t, got, 2)
	})

	t.Run("both unset keeps everything", func(t *testing.T) {
		got := accounting.AccountFilter{Mode: accounting.FilterBalance}.Apply(accounts)
		assert.Len(t, got, 3)
	})
}

func TestApply_DateFilter_EndOfDayInclusive(t *testing.T) {
	endDay := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	accounts := []domain.Account{
		{AccountNumber: "1110", AccountName: "Early", CreationDate: time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC)},
		{AccountNumber: "1120", AccountName: "LastDayEvening", CreationDate: time.Date(2024, 3, 31, 18, 30, 0, 0, time.UTC)},
		{AccountNumber: "1130", AccountName: "After", CreationDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := accounting.AccountFilter{
		Mode: accounting.FilterDate,
		Created: domain.DateRange{
			Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   endDay,
		},
	}.Apply(accounts)

	// The date-only upper bound covers the whole of March 31st.
	require.Len(t, got, 1)
	assert.Equal(t, "LastDayEvening", got[0].AccountName)
}

func TestApply_SearchTerm(t *testing.T) {
	accounts := []domain.Account{
		acct("1110", "Cash", domain.CategoryAssets, 100),
		acct("6110", "Service Revenue", domain.CategoryRevenue, 500),
		acct("7110", "Rent Expense", domain.CategoryExpenses, 200),
	}

	t.Run("matches account name case-insensitively", func(t *testing.T) {
		got := accounting.AccountFilter{Search: "revenue"}.Apply(accounts)
		require.Len(t, got, 1)
		assert.Equal(t, "Service Revenue", got[0].AccountName)
	})

	t.Run("matches account number substring", func(t *testing.T) {
		got := accounting.AccountFilter{Search: "71"}.Apply(accounts)
		require.Len(t, got, 1)
		assert.Equal(t, "Rent Expense", got[0].AccountName)
	})

	t.Run("layered on top of a structural filter", func(t *testing.T) {
		got := accounting.AccountFilter{
			Mode:       accounting.FilterCategory,
			Categories: []string{domain.CategoryRevenue, domain.CategoryExpenses},
			Search:     "rent",
		}.Apply(accounts)
		require.Len(t, got, 1)
		assert.Equal(t, "Rent Expense", got[0].AccountName)
	})
}

func TestApply_EmptyResultIsEmptySlice(t *testing.T) {
	accounts := []domain.Account{acct("1110", "Cash", domain.CategoryAssets, 100)}

	got := accounting.AccountFilter{Search: "no such account"}.Apply(accounts)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
