package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/ledgerlogic/ledgerlogic/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
