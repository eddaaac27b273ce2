package domain

import "time"

// DateRange is a closed [Start, End] window. Callers are responsible for
// Start <= End; the range itself does not reorder its bounds.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range, inclusive on both ends,
// compared as instants. A zero Start or End leaves that side unbounded.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// WithEndOfDay returns a copy of the range whose End is pushed to the last
// instant of its calendar day, so a date-only upper bound is inclusive.
func (r DateRange) WithEndOfDay() DateRange {
	if r.End.IsZero() {
		return r
	}
	y, m, d := r.End.Date()
	r.End = time.Date(y, m, d, 23, 59, 59, 999999999, r.End.Location())
	return r
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}
