package render

import (
	"bytes"
	"strings"
	"testing"

	"wfm-monitor/internal/monitor"
	"wfm-monitor/internal/orderbook"
	"wfm-monitor/internal/wfmarket"
)

func TestRenderStates(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)

	r.RenderColumn("rubico_prime_set", wfmarket.SideSell, monitor.StateLoading, nil)
	if !strings.Contains(buf.String(), "Loading sell orders") {
		t.Fatalf("loading state: %q", buf.String())
	}

	buf.Reset()
	r.RenderColumn("rubico_prime_set", wfmarket.SideBuy, monitor.StateFailed, nil)
	if !strings.Contains(buf.String(), "Failed to load orders") {
		t.Fatalf("failed state: %q", buf.String())
	}

	buf.Reset()
	r.RenderColumn("rubico_prime_set", wfmarket.SideSell, monitor.StateEmpty, nil)
	out := buf.String()
	if !strings.Contains(out, "No sell orders found for Rubico Prime Set") {
		t.Fatalf("empty state: %q", out)
	}
}

func TestRenderOrders(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf)
	r.ShowWhisper = true

	orders := []orderbook.DisplayOrder{{
		ItemName: "Forma",
		Seller:   "Tenno",
		Platinum: 12,
		Quantity: 3,
		Action:   "Buy",
		Whisper:  `/w Tenno Hi! I want to buy: "Forma" for 12 platinum. (warframe.market)`,
	}}
	r.RenderColumn("forma", wfmarket.SideSell, monitor.StateOK, orders)

	out := buf.String()
	if !strings.Contains(out, "== Want to Sell ==") {
		t.Fatalf("missing column tag: %q", out)
	}
	for _, want := range []string{"Forma", "12p", "3x", "Tenno", "[Buy]", "/w Tenno"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
