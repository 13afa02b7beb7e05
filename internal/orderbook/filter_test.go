package orderbook

import (
	"reflect"
	"testing"

	"wfm-monitor/internal/wfmarket"
)

func fptr(v float64) *float64 { return &v }

func sellOrder(price int, status string, visible bool) wfmarket.Order {
	return wfmarket.Order{
		Side:     wfmarket.SideSell,
		Platinum: price,
		Quantity: 1,
		Visible:  visible,
		User:     wfmarket.Trader{IngameName: "Tenno", Status: status},
	}
}

func TestFilterVisibility(t *testing.T) {
	orders := []wfmarket.Order{
		sellOrder(10, wfmarket.StatusInGame, true),
		sellOrder(11, wfmarket.StatusInGame, false),
	}
	got := Filter(orders, Band{}, FilterOpts{RequireVisible: true})
	if len(got) != 1 || got[0].Platinum != 10 {
		t.Fatalf("expected only the visible order, got %v", got)
	}
}

func TestFilterLiveness(t *testing.T) {
	orders := []wfmarket.Order{
		sellOrder(10, wfmarket.StatusInGame, true),
		sellOrder(11, wfmarket.StatusOnline, true),
		sellOrder(12, wfmarket.StatusOffline, true),
	}
	got := Filter(orders, Band{}, FilterOpts{RequireOnline: true})
	if len(got) != 2 {
		t.Fatalf("expected ingame+online kept, got %v", got)
	}
	if got[0].Platinum != 10 || got[1].Platinum != 11 {
		t.Fatalf("wrong orders kept: %v", got)
	}
}

func TestFilterBand(t *testing.T) {
	orders := []wfmarket.Order{
		sellOrder(5, wfmarket.StatusInGame, true),
		sellOrder(10, wfmarket.StatusInGame, true),
		sellOrder(20, wfmarket.StatusInGame, true),
		sellOrder(25, wfmarket.StatusInGame, true),
	}

	got := Filter(orders, Band{Min: fptr(10), Max: fptr(20)}, FilterOpts{})
	if len(got) != 2 || got[0].Platinum != 10 || got[1].Platinum != 20 {
		t.Fatalf("inclusive band [10,20]: got %v", got)
	}

	got = Filter(orders, Band{Min: fptr(20)}, FilterOpts{})
	if len(got) != 2 || got[0].Platinum != 20 || got[1].Platinum != 25 {
		t.Fatalf("one-sided min: got %v", got)
	}

	got = Filter(orders, Band{Max: fptr(5)}, FilterOpts{})
	if len(got) != 1 || got[0].Platinum != 5 {
		t.Fatalf("one-sided max: got %v", got)
	}
}

func TestFilterKeepsOrdersUnchanged(t *testing.T) {
	in := []wfmarket.Order{
		sellOrder(10, wfmarket.StatusInGame, true),
		sellOrder(12, wfmarket.StatusOnline, true),
	}
	got := Filter(in, Band{}, FilterOpts{RequireVisible: true, RequireOnline: true})
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("kept orders mutated:\n got %v\nwant %v", got, in)
	}
}

func TestFilterNoMatchesIsEmptyNotNilError(t *testing.T) {
	orders := []wfmarket.Order{sellOrder(100, wfmarket.StatusOffline, true)}
	got := Filter(orders, Band{}, FilterOpts{RequireOnline: true})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
