package repositories

import (
	"context"
	"time"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// ReportingRepository supplies date-bounded account balance snapshots for the
// statement calculators. Both queries pre-filter server-side; the returned
// records carry the balance-as-of Date so callers can re-bound client-side.
type ReportingRepository interface {
	// FindAccountBalancesByDate returns per-account activity balances whose
	// journal dates fall inside [from, to].
	FindAccountBalancesByDate(ctx context.Context, from, to time.Time) ([]domain.Account, error)
	// FindAggregatedAccountBalancesByDateRange returns one aggregated row per
	// account over [from, to].
	FindAggregatedAccountBalancesByDateRange(ctx context.Context, from, to time.Time) ([]domain.Account, error)
}
