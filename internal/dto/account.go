package dto

import (
	"strings"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountNumber string          `json:"accountNumber" binding:"required,accountnumber"`
	AccountName   string          `json:"accountName" binding:"required"`
	Category      string          `json:"category" binding:"required,oneof=Assets Liabilities Equity Revenue Expenses"`
	SubCategory   string          `json:"subCategory"`
	NormalSide    string          `json:"normalSide" binding:"required,normalside"`
	Balance       decimal.Decimal `json:"balance"`
	Description   string          `json:"description"`
	Statement     string          `json:"statement"` // IS, BS or RE
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates.
type UpdateAccountRequest struct {
	AccountName *string `json:"accountName"`
	SubCategory *string `json:"subCategory"`
	Description *string `json:"description"`
	Statement   *string `json:"statement"`
	Active      *bool   `json:"active"`
}

// ListAccountsParams binds the account listing query string. Filter selects
// the structural mode; the remaining fields feed whichever mode is active.
type ListAccountsParams struct {
	Filter      string `form:"filter" binding:"omitempty,oneof=category subcategory normalSide balance date"`
	Categories  string `form:"categories"` // comma separated, defaults to all
	Subcategory string `form:"subcategory"`
	NormalSide  string `form:"normalSide"`
	MinBalance  string `form:"minBalance"`
	MaxBalance  string `form:"maxBalance"`
	StartDate   string `form:"startDate"` // YYYY-MM-DD
	EndDate     string `form:"endDate"`   // YYYY-MM-DD
	Search      string `form:"search"`
}

// ToAccountFilter converts the bound query params into the core filter.
// Unparseable dates leave that bound open.
func (p ListAccountsParams) ToAccountFilter() accounting.AccountFilter {
	f := accounting.AccountFilter{
		Mode:        accounting.FilterMode(p.Filter),
		Subcategory: p.Subcategory,
		NormalSide:  domain.NormalSide(p.NormalSide),
		Balance:     accounting.BalanceBounds{Min: p.MinBalance, Max: p.MaxBalance},
		Search:      strings.TrimSpace(p.Search),
	}
	if p.Categories != "" {
		for _, c := range strings.Split(p.Categories, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Categories = append(f.Categories, c)
			}
		}
	} else {
		f.Categories = accounting.DefaultCategories()
	}
	if t, err := time.Parse("2006-01-02", p.StartDate); err == nil {
		f.Created.Start = t
	}
	if t, err := time.Parse("2006-01-02", p.EndDate); err == nil {
		f.Created.End = t
	}
	return f
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string            `json:"accountID"`
	AccountNumber string            `json:"accountNumber"`
	AccountName   string            `json:"accountName"`
	Category      string            `json:"category"`
	SubCategory   string            `json:"subCategory"`
	NormalSide    domain.NormalSide `json:"normalSide"`
	Balance       decimal.Decimal   `json:"balance"`
	Description   string            `json:"description"`
	Statement     string            `json:"statement"`
	Active        bool              `json:"active"`
	CreationDate  time.Time         `json:"creationDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// ChartSectionResponse is one populated section of the chart of accounts.
type ChartSectionResponse struct {
	Section  string            `json:"section"`
	Accounts []AccountResponse `json:"accounts"`
}

// ChartOfAccountsResponse lists the populated chart sections in display order.
type ChartOfAccountsResponse struct {
	Sections []ChartSectionResponse `json:"sections"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		AccountName:   acc.AccountName,
		Category:      acc.Category,
		SubCategory:   acc.SubCategory,
		NormalSide:    acc.NormalSide,
		Balance:       acc.Balance,
		Description:   acc.Description,
		Statement:     acc.Statement,
		Active:        acc.Active,
		CreationDate:  acc.CreationDate,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
