package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeStatement holds period totals for the income statement report.
type IncomeStatement struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// RetainedEarningsStatement holds the retained earnings roll-forward lines.
// CashDividends and StockDividends carry the negated sums of their account
// balances, matching how the report rows are displayed.
type RetainedEarningsStatement struct {
	BeginningRetainedEarnings decimal.Decimal `json:"beginningRetainedEarnings"`
	NetIncomeLoss             decimal.Decimal `json:"netIncomeLoss"`
	CashDividends             decimal.Decimal `json:"cashDividends"`
	StockDividends            decimal.Decimal `json:"stockDividends"`
	EndingRetainedEarnings    decimal.Decimal `json:"endingRetainedEarnings"`
}
