package orderbook

import (
	"fmt"

	"wfm-monitor/internal/wfmarket"
)

// DefaultPerColumn is how many orders a column shows when the user has not
// configured a limit.
const DefaultPerColumn = 10

// DisplayOrder is a read-only, display-ready projection of one order.
type DisplayOrder struct {
	ItemName string
	Seller   string
	Platinum int
	Quantity int
	// Action is the counter-action label: "Buy" for a sell order.
	Action string
	// Whisper is the clipboard-ready in-game message.
	Whisper string
}

// ToDisplay maps ranked orders for one item into display records,
// truncating to the first limit entries. Pure.
func ToDisplay(orders []wfmarket.Order, slug Slug, limit int) []DisplayOrder {
	if limit <= 0 {
		limit = DefaultPerColumn
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}

	pretty := PrettyName(slug)
	out := make([]DisplayOrder, 0, len(orders))
	for _, o := range orders {
		action := o.Side.Opposite()
		out = append(out, DisplayOrder{
			ItemName: pretty,
			Seller:   o.User.Handle(),
			Platinum: o.Platinum,
			Quantity: o.Quantity,
			Action:   actionLabel(action),
			Whisper: fmt.Sprintf(
				`/w %s Hi! I want to %s: "%s" for %d platinum. (warframe.market)`,
				o.User.Handle(), action, pretty, o.Platinum,
			),
		})
	}
	return out
}

func actionLabel(s wfmarket.Side) string {
	if s == wfmarket.SideBuy {
		return "Buy"
	}
	return "Sell"
}
