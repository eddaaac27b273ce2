package accounting

import (
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetIncome is total revenue minus total expenses for accounts whose Date
// falls inside the window. Pass nil to skip client-side date bounding.
func NetIncome(accounts []domain.Account, within *domain.DateRange) decimal.Decimal {
	revenue := SumByCategory(accounts, within, domain.CategoryRevenue)
	expenses := SumByCategory(accounts, within, domain.CategoryExpenses)
	return revenue.Sub(expenses)
}

// BuildIncomeStatement computes the income statement totals over the given
// record set, re-bounding by each record's Date even when the set was
// pre-filtered upstream.
func BuildIncomeStatement(accounts []domain.Account, window domain.DateRange) domain.IncomeStatement {
	within := &window
	revenue := SumByCategory(accounts, within, domain.CategoryRevenue)
	expenses := SumByCategory(accounts, within, domain.CategoryExpenses)
	return domain.IncomeStatement{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetIncome:     revenue.Sub(expenses),
	}
}

// BuildRetainedEarnings computes the retained earnings roll-forward over an
// already date-bounded record set.
//
// The dividend lines are negated sums and the ending balance subtracts them,
// so recorded dividends add back into the ending figure. This matches the
// numbers the reports have always shown; regression tests pin it.
func BuildRetainedEarnings(accounts []domain.Account) domain.RetainedEarningsStatement {
	beginning := SumByAccountName(accounts, domain.OwnersCapitalAccountName)
	netIncomeLoss := NetIncome(accounts, nil)
	cashDividends := NegatedSumByAccountName(accounts, domain.CashDividendsAccountName)
	stockDividends := NegatedSumByAccountName(accounts, domain.StockDividendsAccountName)

	ending := beginning.Add(netIncomeLoss).Sub(cashDividends).Sub(stockDividends)

	return domain.RetainedEarningsStatement{
		BeginningRetainedEarnings: beginning,
		NetIncomeLoss:             netIncomeLoss,
		CashDividends:             cashDividends,
		StockDividends:            stockDividends,
		EndingRetainedEarnings:    ending,
	}
}
