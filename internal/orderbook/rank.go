package orderbook

import (
	"sort"

	"wfm-monitor/internal/wfmarket"
)

// Rank sorts orders ascending by platinum price. The sort is stable so that
// equal-priced orders keep their relative input order. Both sides rank
// ascending: for sell orders that is cheapest-to-buy first, and buy orders
// follow the same direction.
func Rank(orders []wfmarket.Order) []wfmarket.Order {
	out := append([]wfmarket.Order(nil), orders...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Platinum < out[j].Platinum
	})
	return out
}

// SplitSides partitions an order book into its sell and buy halves,
// preserving order within each side.
func SplitSides(orders []wfmarket.Order) (sell, buy []wfmarket.Order) {
	for _, o := range orders {
		switch o.Side {
		case wfmarket.SideSell:
			sell = append(sell, o)
		case wfmarket.SideBuy:
			buy = append(buy, o)
		}
	}
	return sell, buy
}
