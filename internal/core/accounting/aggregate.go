package accounting

import (
	"strings"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sum totals the balances of accounts matching pred, accumulating in
// insertion order. When within is non-nil, accounts whose Date falls outside
// the closed range are skipped; a nil within trusts that the record set was
// already date-bounded upstream.
func Sum(accounts []domain.Account, within *domain.DateRange, pred func(domain.Account) bool) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		if !pred(acc) {
			continue
		}
		if within != nil && !within.Contains(acc.Date) {
			continue
		}
		total = total.Add(acc.Balance)
	}
	return total
}

// SumByCategory totals balances of accounts in the given category
// (case-insensitive), optionally bounded by the record date window.
func SumByCategory(accounts []domain.Account, within *domain.DateRange, category string) decimal.Decimal {
	return Sum(accounts, within, func(acc domain.Account) bool {
		return strings.EqualFold(acc.Category, category)
	})
}

// SumByAccountName totals balances of accounts with exactly the given name.
// No date window is applied: name-keyed aggregations run over the full
// fetched set, whose bounding already happened in the query that produced it.
func SumByAccountName(accounts []domain.Account, name string) decimal.Decimal {
	return Sum(accounts, nil, func(acc domain.Account) bool {
		return acc.AccountName == name
	})
}

// NegatedSumByAccountName returns zero minus the summed balances of the named
// accounts. Dividend lines are reported this way: stored balances are
// positive, the report row shows the negated total.
func NegatedSumByAccountName(accounts []domain.Account, name string) decimal.Decimal {
	return decimal.Zero.Sub(SumByAccountName(accounts, name))
}
