package accounting

import (
	"strings"

	"github.com/ledgerlogic/ledgerlogic/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FilterMode selects which structural predicate an AccountFilter applies.
// Only one structural filter is active at a time; the free-text search is
// layered on top of whichever mode is selected.
type FilterMode string

const (
	FilterNone        FilterMode = ""
	FilterCategory    FilterMode = "category"
	FilterSubcategory FilterMode = "subcategory"
	FilterNormalSide  FilterMode = "normalSide"
	FilterBalance     FilterMode = "balance"
	FilterDate        FilterMode = "date"
)

// BalanceBounds carries raw min/max strings for the balance filter. An empty
// bound imposes no constraint on that side.
type BalanceBounds struct {
	Min string
	Max string
}

// AccountFilter narrows a collection of accounts. Zero value matches
// everything and returns the input unchanged.
type AccountFilter struct {
	Mode        FilterMode
	Categories  []string // selected set for FilterCategory; OR across members
	Subcategory string
	NormalSide  domain.NormalSide
	Balance     BalanceBounds
	Created     domain.DateRange // creation-date window for FilterDate
	Search      string           // matched against account name and number
}

// DefaultCategories returns the full selected-category set.
func DefaultCategories() []string {
	return []string{
		domain.CategoryAssets,
		domain.CategoryLiabilities,
		domain.CategoryEquity,
		domain.CategoryRevenue,
		domain.CategoryExpenses,
	}
}

// ToggleCategory adds name to the set if absent and removes it if present,
// leaving the other members untouched.
func ToggleCategory(set []string, name string) []string {
	for i, c := range set {
		if strings.EqualFold(c, name) {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	out := make([]string, 0, len(set)+1)
	out = append(out, set...)
	return append(out, name)
}

// Apply returns the accounts matching the active structural filter and the
// search term. Malformed numeric or date input on a record degrades to
// excluding that record; Apply never fails.
func (f AccountFilter) Apply(accounts []domain.Account) []domain.Account {
	if f.Mode == FilterNone && f.Search == "" {
		return accounts
	}

	filtered := accounts
	switch f.Mode {
	case FilterCategory:
		filtered = filterFunc(filtered, f.matchCategory)
	case FilterSubcategory:
		filtered = filterFunc(filtered, f.matchSubcategory)
	case FilterNormalSide:
		filtered = filterFunc(filtered, f.matchNormalSide)
	case FilterBalance:
		min, max := f.Balance.bounds()
		filtered = filterFunc(filtered, func(acc domain.Account) bool {
			if min != nil && acc.Balance.LessThan(*min) {
				return false
			}
			if max != nil && acc.Balance.GreaterThan(*max) {
				return false
			}
			return true
		})
	case FilterDate:
		window := f.Created.WithEndOfDay()
		filtered = filterFunc(filtered, func(acc domain.Account) bool {
			return window.Contains(acc.CreationDate)
		})
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		filtered = filterFunc(filtered, func(acc domain.Account) bool {
			return strings.Contains(strings.ToLower(acc.AccountName), term) ||
				strings.Contains(acc.AccountNumber, term)
		})
	}
	return filtered
}

func (f AccountFilter) matchCategory(acc domain.Account) bool {
	for _, c := range f.Categories {
		if strings.EqualFold(c, acc.Category) {
			return true
		}
	}
	return false
}

func (f AccountFilter) matchSubcategory(acc domain.Account) bool {
	return strings.Contains(strings.ToLower(acc.SubCategory), strings.ToLower(f.Subcategory))
}

func (f AccountFilter) matchNormalSide(acc domain.Account) bool {
	return acc.NormalSide == f.NormalSide
}

// bounds parses the min/max strings after stripping everything but digits and
// the decimal point. An empty or unparseable bound is unbounded.
func (b BalanceBounds) bounds() (min, max *decimal.Decimal) {
	return parseBound(b.Min), parseBound(b.Max)
}

func parseBound(raw string) *decimal.Decimal {
	cleaned := sanitizeNumeric(raw)
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

func sanitizeNumeric(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func filterFunc(accounts []domain.Account, keep func(domain.Account) bool) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if keep(acc) {
			out = append(out, acc)
		}
	}
	return out
}
