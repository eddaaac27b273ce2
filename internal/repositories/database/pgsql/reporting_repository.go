package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
// Balances are computed from approved journal entries only, signed by the
// account's normal side so revenue and expense activity both come out
// positive for ordinary postings.
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// FindAccountBalancesByDate returns one row per account per journal date
// inside [from, to], carrying the activity balance for that date.
func (r *reportingRepository) FindAccountBalancesByDate(ctx context.Context, from, to time.Time) ([]domain.Account, error) {
	query := `
		SELECT
			a.account_id,
			a.account_number,
			a.account_name,
			a.category,
			a.sub_category,
			a.normal_side,
			SUM(CASE WHEN a.normal_side = 'Debit' THEN e.debit - e.credit ELSE e.credit - e.debit END) AS balance,
			j.transaction_date
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		JOIN journals j ON j.journal_id = e.journal_id
		WHERE e.status = 'approved'
			AND j.transaction_date >= $1
			AND j.transaction_date <= $2
		GROUP BY a.account_id, a.account_number, a.account_name, a.category, a.sub_category, a.normal_side, j.transaction_date
		ORDER BY j.transaction_date, a.account_number;
	`
	return r.queryBalances(ctx, query, from, to)
}

// FindAggregatedAccountBalancesByDateRange returns one aggregated row per
// account over [from, to].
func (r *reportingRepository) FindAggregatedAccountBalancesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Account, error) {
	query := `
		SELECT
			a.account_id,
			a.account_number,
			a.account_name,
			a.category,
			a.sub_category,
			a.normal_side,
			SUM(CASE WHEN a.normal_side = 'Debit' THEN e.debit - e.credit ELSE e.credit - e.debit END) AS balance,
			MAX(j.transaction_date) AS transaction_date
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		JOIN journals j ON j.journal_id = e.journal_id
		WHERE e.status = 'approved'
			AND j.transaction_date >= $1
			AND j.transaction_date <= $2
		GROUP BY a.account_id, a.account_number, a.account_name, a.category, a.sub_category, a.normal_side
		ORDER BY a.account_number;
	`
	return r.queryBalances(ctx, query, from, to)
}

func (r *reportingRepository) queryBalances(ctx context.Context, query string, from, to time.Time) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.AccountID,
			&acc.AccountNumber,
			&acc.AccountName,
			&acc.Category,
			&acc.SubCategory,
			&acc.NormalSide,
			&acc.Balance,
			&acc.Date,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account balance rows: %w", err)
	}
	return accounts, nil
}
