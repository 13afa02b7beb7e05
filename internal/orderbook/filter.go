package orderbook

import "wfm-monitor/internal/wfmarket"

// Band is the user's acceptance price range. A nil bound means unbounded on
// that side.
type Band struct {
	Min *float64
	Max *float64
}

// Empty reports whether neither bound is set.
func (b Band) Empty() bool { return b.Min == nil && b.Max == nil }

// Contains reports whether price is inside the inclusive band, treating an
// absent bound as unbounded.
func (b Band) Contains(price float64) bool {
	if b.Min != nil && price < *b.Min {
		return false
	}
	if b.Max != nil && price > *b.Max {
		return false
	}
	return true
}

// FilterOpts selects which predicates Filter applies besides the band.
type FilterOpts struct {
	RequireVisible bool
	RequireOnline  bool
}

// Filter returns the orders passing every enabled predicate. Predicates are
// a pure intersection; kept orders are unchanged and input order is
// preserved. Never errors: no matches yields an empty slice.
func Filter(orders []wfmarket.Order, band Band, opts FilterOpts) []wfmarket.Order {
	out := make([]wfmarket.Order, 0, len(orders))
	for _, o := range orders {
		if opts.RequireVisible && !o.Visible {
			continue
		}
		if opts.RequireOnline && !o.User.Live() {
			continue
		}
		if !band.Contains(float64(o.Platinum)) {
			continue
		}
		out = append(out, o)
	}
	return out
}
