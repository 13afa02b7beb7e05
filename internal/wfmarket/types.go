package wfmarket

// Side distinguishes the two halves of an item's order book.
type Side string

const (
	SideSell Side = "sell"
	SideBuy  Side = "buy"
)

// Opposite returns the counter-action for a side: the viewer of a sell
// order would buy, and vice versa.
func (s Side) Opposite() Side {
	if s == SideSell {
		return SideBuy
	}
	return SideSell
}

// Seller liveness states as reported by the API.
const (
	StatusInGame  = "ingame"
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// ItemSummary is one row of the item catalog.
type ItemSummary struct {
	Slug string `json:"url_name"`
	Name string `json:"item_name"`
}

// Component is a sub-item of a set (e.g. a barrel of a weapon set).
type Component struct {
	Name    string
	IconURL string
}

// ItemDetail describes a single item and its components, with icon paths
// already resolved to absolute URLs.
type ItemDetail struct {
	Name       string
	IconURL    string
	Components []Component
}

// Order mirrors one entry of the /items/{slug}/orders payload.
type Order struct {
	Side     Side   `json:"order_type"`
	Platinum int    `json:"platinum"`
	Quantity int    `json:"quantity"`
	Visible  bool   `json:"visible"`
	User     Trader `json:"user"`
}

// Trader is the order poster as embedded in the orders payload.
type Trader struct {
	IngameName string `json:"ingame_name"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Reputation int    `json:"reputation"`
}

// Handle returns the name to whisper in game, falling back to the account
// name when no in-game name is set.
func (t Trader) Handle() string {
	if t.IngameName != "" {
		return t.IngameName
	}
	if t.Name != "" {
		return t.Name
	}
	return "Unknown"
}

// Live reports whether the trader can currently be contacted.
func (t Trader) Live() bool {
	return t.Status == StatusInGame || t.Status == StatusOnline
}
