package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer at startup.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	UserRepo      UserRepository
	ReportingRepo ReportingRepository
}
