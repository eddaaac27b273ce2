package accounting

import (
	"strconv"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
)

// Bucket is a fixed account-number range defining one of the five top-level
// chart-of-accounts sections.
type Bucket struct {
	Name  string
	Start int
	End   int
}

// Buckets lists the five chart sections in display order. The ranges are
// disjoint; numbers falling in the gaps (e.g. 2000-2999) belong to no bucket.
var Buckets = []Bucket{
	{Name: domain.CategoryAssets, Start: 1000, End: 1999},
	{Name: domain.CategoryLiabilities, Start: 3000, End: 3999},
	{Name: domain.CategoryEquity, Start: 5000, End: 5999},
	{Name: domain.CategoryRevenue, Start: 6000, End: 6999},
	{Name: domain.CategoryExpenses, Start: 7000, End: 7999},
}

// BucketFor returns the bucket containing the given account number string.
// Non-numeric numbers place in no bucket.
func BucketFor(accountNumber string) (Bucket, bool) {
	n, err := strconv.Atoi(accountNumber)
	if err != nil {
		return Bucket{}, false
	}
	for _, b := range Buckets {
		if n >= b.Start && n <= b.End {
			return b, true
		}
	}
	return Bucket{}, false
}

// FilterByNumberRange returns the accounts whose parsed account number falls
// in [start, end]. Accounts with non-numeric numbers are excluded, never an
// error.
func FilterByNumberRange(accounts []domain.Account, start, end int) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		n, err := strconv.Atoi(acc.AccountNumber)
		if err != nil {
			continue
		}
		if n >= start && n <= end {
			out = append(out, acc)
		}
	}
	return out
}
