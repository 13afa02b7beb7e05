package notify

import (
	"strings"
	"testing"
)

func captureNotifier(enabled bool) (*Notifier, *[]string) {
	var sent []string
	n := New(Options{Notifications: enabled})
	n.deliver = func(title, body string) error {
		sent = append(sent, title+" / "+body)
		return nil
	}
	return n, &sent
}

func TestPriceAlertDedupesPerCycle(t *testing.T) {
	n, sent := captureNotifier(true)

	n.PriceAlert("Rubico Prime Set", "sell", 15)
	n.PriceAlert("Rubico Prime Set", "sell", 14) // same (item, side): dropped
	n.PriceAlert("Rubico Prime Set", "buy", 20)  // other side: allowed
	n.PriceAlert("Forma", "sell", 10)

	if len(*sent) != 3 {
		t.Fatalf("expected 3 notifications, got %d: %v", len(*sent), *sent)
	}

	n.ResetCycle()
	n.PriceAlert("Rubico Prime Set", "sell", 15)
	if len(*sent) != 4 {
		t.Fatalf("dedupe should clear on new cycle, got %d", len(*sent))
	}
}

func TestPriceAlertWording(t *testing.T) {
	n, sent := captureNotifier(true)
	n.PriceAlert("Rubico Prime Set", "sell", 150)

	if len(*sent) != 1 {
		t.Fatalf("expected one notification, got %v", *sent)
	}
	got := (*sent)[0]
	if !strings.Contains(got, "Price Alert - Rubico Prime Set") {
		t.Fatalf("title wording: %q", got)
	}
	if !strings.Contains(got, "sell order for 150p") {
		t.Fatalf("body wording: %q", got)
	}
}

func TestDisabledNotifierIsSilent(t *testing.T) {
	n, sent := captureNotifier(false)
	n.PriceAlert("Forma", "sell", 10)
	n.Info("hello", "world")
	if len(*sent) != 0 {
		t.Fatalf("disabled notifier sent %v", *sent)
	}

	var nilN *Notifier
	nilN.PriceAlert("Forma", "sell", 10) // must not panic
	nilN.ResetCycle()
}
