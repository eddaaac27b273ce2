package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalSide is the side on which an account's balance increases.
type NormalSide string

const (
	DebitSide  NormalSide = "Debit"
	CreditSide NormalSide = "Credit"
)

// Category names as stored on accounts. The stored category is authoritative
// for category filtering; the account number range is authoritative only for
// chart-of-accounts bucket placement.
const (
	CategoryAssets      = "Assets"
	CategoryLiabilities = "Liabilities"
	CategoryEquity      = "Equity"
	CategoryRevenue     = "Revenue"
	CategoryExpenses    = "Expenses"
)

// Well-known equity account names used by the retained earnings roll-forward.
const (
	OwnersCapitalAccountName  = "Owner's Capital"
	CashDividendsAccountName  = "Cash Dividends"
	StockDividendsAccountName = "Stock Dividends"
)

// ChartSection is one populated number-range section of the chart of
// accounts.
type ChartSection struct {
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts"`
}

// Account represents a financial account within the core domain.
// AccountNumber is kept as a string: it arrives as free text from upstream
// records and the chart-of-accounts bucketing parses it defensively.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	AccountNumber string          `json:"accountNumber"` // Chart number, e.g. "1110"
	AccountName   string          `json:"accountName"`
	Category      string          `json:"category"`    // Assets, Liabilities, Equity, Revenue, Expenses
	SubCategory   string          `json:"subCategory"` // e.g. "Current Assets"
	NormalSide    NormalSide      `json:"normalSide"`  // Debit or Credit
	Balance       decimal.Decimal `json:"balance"`
	Description   string          `json:"description"`
	Statement     string          `json:"statement"` // Statement the account reports on (IS, BS, RE)
	Active        bool            `json:"active"`
	CreationDate  time.Time       `json:"creationDate"`
	Date          time.Time       `json:"date,omitempty"` // Balance-as-of instant on date-window query results
	AuditFields
}
