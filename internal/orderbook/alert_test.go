package orderbook

import (
	"testing"

	"wfm-monitor/internal/wfmarket"
)

func TestInBandSell(t *testing.T) {
	band := Band{Min: fptr(10), Max: fptr(20)}

	in := wfmarket.Order{Side: wfmarket.SideSell, Platinum: 15}
	if !InBand(in, band) {
		t.Fatalf("price 15 in [10,20] should alert")
	}

	out := wfmarket.Order{Side: wfmarket.SideSell, Platinum: 25}
	if InBand(out, band) {
		t.Fatalf("price 25 in [10,20] should not alert")
	}

	if InBand(in, Band{}) {
		t.Fatalf("empty band must never alert")
	}

	if !InBand(out, Band{Min: fptr(10)}) {
		t.Fatalf("min-only band: 25 >= 10 should alert")
	}
	if InBand(in, Band{Max: fptr(12)}) {
		t.Fatalf("max-only band: 15 > 12 should not alert")
	}
}

func TestInBandBuy(t *testing.T) {
	band := Band{Min: fptr(10)}

	if !InBand(wfmarket.Order{Side: wfmarket.SideBuy, Platinum: 12}, band) {
		t.Fatalf("buy at 12 with min 10 should alert")
	}
	if InBand(wfmarket.Order{Side: wfmarket.SideBuy, Platinum: 8}, band) {
		t.Fatalf("buy at 8 with min 10 should not alert")
	}

	// Max alone does not gate buy-side evaluation.
	if InBand(wfmarket.Order{Side: wfmarket.SideBuy, Platinum: 8}, Band{Max: fptr(20)}) {
		t.Fatalf("buy side without min must not alert")
	}
	if !InBand(wfmarket.Order{Side: wfmarket.SideBuy, Platinum: 50}, Band{Min: fptr(10), Max: fptr(20)}) {
		t.Fatalf("buy side ignores max: 50 >= 10 should alert")
	}
}
