// Package render prints order columns to a terminal, mirroring the two
// want-to-sell / want-to-buy panes of the original UI.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"wfm-monitor/internal/monitor"
	"wfm-monitor/internal/orderbook"
	"wfm-monitor/internal/wfmarket"
)

type Text struct {
	w io.Writer
	// ShowWhisper adds the clipboard-ready message under each row.
	ShowWhisper bool
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) RenderColumn(slug orderbook.Slug, side wfmarket.Side, state monitor.ColumnState, orders []orderbook.DisplayOrder) {
	switch state {
	case monitor.StateLoading:
		fmt.Fprintf(t.w, "%s\n  Loading %s orders…\n", columnTag(side), side)
	case monitor.StateFailed:
		fmt.Fprintf(t.w, "%s\n  Failed to load orders.\n", columnTag(side))
	case monitor.StateEmpty:
		fmt.Fprintf(t.w, "%s\n  No %s orders found for %s.\n", columnTag(side), side, orderbook.PrettyName(slug))
	case monitor.StateOK:
		t.renderOrders(side, orders)
	}
}

func (t *Text) renderOrders(side wfmarket.Side, orders []orderbook.DisplayOrder) {
	fmt.Fprintln(t.w, columnTag(side))

	tw := tabwriter.NewWriter(t.w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ITEM\tPLAT\tQTY\tTRADER\tACTION")
	for _, o := range orders {
		fmt.Fprintf(tw, "  %s\t%dp\t%dx\t%s\t[%s]\n",
			o.ItemName, o.Platinum, o.Quantity, o.Seller, o.Action)
	}
	tw.Flush()

	if t.ShowWhisper {
		for _, o := range orders {
			fmt.Fprintf(t.w, "    %s\n", o.Whisper)
		}
	}
}

func columnTag(side wfmarket.Side) string {
	if side == wfmarket.SideSell {
		return "== Want to Sell =="
	}
	return "== Want to Buy =="
}
