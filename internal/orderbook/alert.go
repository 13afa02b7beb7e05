package orderbook

import "wfm-monitor/internal/wfmarket"

// InBand reports whether an order's price is alert-worthy for the given
// band.
//
// The two sides are evaluated asymmetrically on purpose: a sell order is a
// buying opportunity, judged against however much of the band is set; a buy
// order is a selling opportunity, judged only against the minimum you would
// accept. An empty band never alerts.
func InBand(order wfmarket.Order, band Band) bool {
	price := float64(order.Platinum)
	switch order.Side {
	case wfmarket.SideSell:
		if band.Empty() {
			return false
		}
		return band.Contains(price)
	case wfmarket.SideBuy:
		return band.Min != nil && price >= *band.Min
	default:
		return false
	}
}
