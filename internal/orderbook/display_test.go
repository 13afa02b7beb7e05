package orderbook

import (
	"testing"

	"wfm-monitor/internal/wfmarket"
)

func TestToDisplayTruncatesAndLabels(t *testing.T) {
	var orders []wfmarket.Order
	for i := 0; i < 15; i++ {
		o := sellOrder(10+i, wfmarket.StatusInGame, true)
		o.User.IngameName = "Tenno"
		orders = append(orders, o)
	}

	got := ToDisplay(orders, "rubico_prime_set", 0)
	if len(got) != DefaultPerColumn {
		t.Fatalf("default limit: got %d want %d", len(got), DefaultPerColumn)
	}

	got = ToDisplay(orders, "rubico_prime_set", 3)
	if len(got) != 3 {
		t.Fatalf("limit 3: got %d entries", len(got))
	}
	first := got[0]
	if first.ItemName != "Rubico Prime Set" {
		t.Fatalf("pretty name: got %q", first.ItemName)
	}
	if first.Action != "Buy" {
		t.Fatalf("sell order counter-action: got %q want Buy", first.Action)
	}
	want := `/w Tenno Hi! I want to buy: "Rubico Prime Set" for 10 platinum. (warframe.market)`
	if first.Whisper != want {
		t.Fatalf("whisper:\n got %q\nwant %q", first.Whisper, want)
	}
}

func TestToDisplayBuyOrder(t *testing.T) {
	orders := []wfmarket.Order{{
		Side:     wfmarket.SideBuy,
		Platinum: 90,
		Quantity: 2,
		User:     wfmarket.Trader{Name: "Trader"},
	}}
	got := ToDisplay(orders, "forma", 10)
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
	if got[0].Action != "Sell" {
		t.Fatalf("buy order counter-action: got %q want Sell", got[0].Action)
	}
	want := `/w Trader Hi! I want to sell: "Forma" for 90 platinum. (warframe.market)`
	if got[0].Whisper != want {
		t.Fatalf("whisper:\n got %q\nwant %q", got[0].Whisper, want)
	}
}
