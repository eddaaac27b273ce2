package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/accounting"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
)

// reportingServiceImpl implements the ReportingSvc interface
type reportingServiceImpl struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	mailer        portssvc.Mailer
}

// NewReportingService creates a new reporting service. The mailer may be nil
// when mail delivery is not configured; the email operations then fail.
func NewReportingService(repo portsrepo.ReportingRepository, mailer portssvc.Mailer) portssvc.ReportingSvc {
	return &reportingServiceImpl{
		reportingRepo: repo,
		mailer:        mailer,
	}
}

// Ensure reportingServiceImpl implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingServiceImpl)(nil)

// IncomeStatement fetches date-bounded balances and re-bounds them through the
// statement calculator, so records with dates outside [from, to] never leak
// into the totals even if the repository over-fetches. The upper bound is
// extended to the end of its day before the fetch: to arrives date-only while
// transaction dates carry intraday times, so querying on the raw bound would
// drop last-day activity the calculator could never recover.
func (s *reportingServiceImpl) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error) {
	window := domain.DateRange{Start: from, End: to}.WithEndOfDay()
	accounts, err := s.reportingRepo.FindAccountBalancesByDate(ctx, window.Start, window.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch balances for income statement")
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}

	statement := accounting.BuildIncomeStatement(accounts, window)

	s.LogDebug(ctx, "Income statement built",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("record_count", len(accounts)))
	return &statement, nil
}

func (s *reportingServiceImpl) RetainedEarnings(ctx context.Context, from, to time.Time) (*domain.RetainedEarningsStatement, error) {
	window := domain.DateRange{Start: from, End: to}.WithEndOfDay()
	accounts, err := s.reportingRepo.FindAggregatedAccountBalancesByDateRange(ctx, window.Start, window.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch balances for retained earnings")
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}

	statement := accounting.BuildRetainedEarnings(accounts)

	s.LogDebug(ctx, "Retained earnings statement built",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("record_count", len(accounts)))
	return &statement, nil
}

func (s *reportingServiceImpl) EmailIncomeStatement(ctx context.Context, from, to time.Time, recipient string) error {
	statement, err := s.IncomeStatement(ctx, from, to)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Income Statement %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	body := fmt.Sprintf(
		"Income Statement for %s through %s\n\nTotal Revenue: %s\nTotal Expenses: %s\nNet Income: %s\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"),
		statement.TotalRevenue, statement.TotalExpenses, statement.NetIncome)
	return s.sendReport(ctx, recipient, subject, body)
}

func (s *reportingServiceImpl) EmailRetainedEarnings(ctx context.Context, from, to time.Time, recipient string) error {
	statement, err := s.RetainedEarnings(ctx, from, to)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Retained Earnings Statement %s to %s", from.Format("2006-01-02"), to.Format("2006-01-02"))
	body := fmt.Sprintf(
		"Retained Earnings Statement for %s through %s\n\nBeginning Retained Earnings: %s\nNet Income (Loss): %s\nCash Dividends: %s\nStock Dividends: %s\nEnding Retained Earnings: %s\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"),
		statement.BeginningRetainedEarnings, statement.NetIncomeLoss,
		statement.CashDividends, statement.StockDividends,
		statement.EndingRetainedEarnings)
	return s.sendReport(ctx, recipient, subject, body)
}

func (s *reportingServiceImpl) sendReport(ctx context.Context, recipient, subject, body string) error {
	if s.mailer == nil {
		return fmt.Errorf("mail delivery is not configured")
	}
	if err := s.mailer.Send(ctx, recipient, subject, body); err != nil {
		s.LogError(ctx, err, "Failed to send report email", slog.String("recipient", recipient))
		return fmt.Errorf("failed to send report email: %w", err)
	}
	s.LogInfo(ctx, "Report emailed", slog.String("recipient", recipient), slog.String("subject", subject))
	return nil
}
