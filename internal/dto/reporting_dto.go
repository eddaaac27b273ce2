package dto

import (
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementPeriodParams binds the from/to query string for statement reports.
type StatementPeriodParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// IncomeStatementResponse defines the income statement report payload.
type IncomeStatementResponse struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// RetainedEarningsResponse defines the retained earnings report payload.
type RetainedEarningsResponse struct {
	From                      time.Time       `json:"from"`
	To                        time.Time       `json:"to"`
	BeginningRetainedEarnings decimal.Decimal `json:"beginningRetainedEarnings"`
	NetIncomeLoss             decimal.Decimal `json:"netIncomeLoss"`
	CashDividends             decimal.Decimal `json:"cashDividends"`
	StockDividends            decimal.Decimal `json:"stockDividends"`
	EndingRetainedEarnings    decimal.Decimal `json:"endingRetainedEarnings"`
}

// EmailReportRequest carries the recipient for an emailed statement.
type EmailReportRequest struct {
	Recipient string `json:"recipient" binding:"required,email"`
}

// ToIncomeStatementResponse converts the domain statement to its DTO.
func ToIncomeStatementResponse(s domain.IncomeStatement, from, to time.Time) IncomeStatementResponse {
	return IncomeStatementResponse{
		From:          from,
		To:            to,
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		NetIncome:     s.NetIncome,
	}
}

// ToRetainedEarningsResponse converts the domain statement to its DTO.
func ToRetainedEarningsResponse(s domain.RetainedEarningsStatement, from, to time.Time) RetainedEarningsResponse {
	return RetainedEarningsResponse{
		From:                      from,
		To:                        to,
		BeginningRetainedEarnings: s.BeginningRetainedEarnings,
		NetIncomeLoss:             s.NetIncomeLoss,
		CashDividends:             s.CashDividends,
		StockDividends:            s.StockDividends,
		EndingRetainedEarnings:    s.EndingRetainedEarnings,
	}
}
