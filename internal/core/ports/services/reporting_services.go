package services

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// ReportingSvc defines operations for generating financial statements
type ReportingSvc interface {
	// IncomeStatement computes revenue, expense and net income totals for
	// journal activity inside [from, to].
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error)

	// RetainedEarnings computes the retained earnings roll-forward for
	// journal activity inside [from, to].
	RetainedEarnings(ctx context.Context, from, to time.Time) (*domain.RetainedEarningsStatement, error)

	// EmailIncomeStatement renders the income statement and mails it to the
	// recipient.
	EmailIncomeStatement(ctx context.Context, from, to time.Time, recipient string) error

	// EmailRetainedEarnings renders the retained earnings statement and mails
	// it to the recipient.
	EmailRetainedEarnings(ctx context.Context, from, to time.Time, recipient string) error
}
