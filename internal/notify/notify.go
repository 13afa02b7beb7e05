// Package notify delivers desktop price alerts, de-duplicating per
// (item, side) within an evaluation cycle so one refresh cannot spam the
// same alert.
package notify

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/beeep"
)

type Options struct {
	Notifications bool
	Sounds        bool
	// AppName shows up as the notification source where the OS supports it.
	AppName string
}

type Notifier struct {
	opts Options

	// deliver defaults to beeep.Notify; tests swap it out.
	deliver func(title, body string) error

	mu   sync.Mutex
	seen map[string]struct{}
}

func New(opts Options) *Notifier {
	if opts.AppName == "" {
		opts.AppName = "wfm-monitor"
	}
	beeep.AppName = opts.AppName
	return &Notifier{
		opts: opts,
		deliver: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
		seen: make(map[string]struct{}),
	}
}

// ResetCycle clears the dedupe set. The runner calls it when a new query
// generation starts.
func (n *Notifier) ResetCycle() {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = make(map[string]struct{})
}

// PriceAlert shows a desktop notification for an in-range order. Repeated
// calls for the same (item, side) within a cycle are dropped. Delivery
// failures are logged, never returned: alerts are fire-and-forget.
func (n *Notifier) PriceAlert(item, side string, platinum int) {
	if n == nil || !n.opts.Notifications {
		return
	}

	key := item + "|" + side
	n.mu.Lock()
	if _, dup := n.seen[key]; dup {
		n.mu.Unlock()
		return
	}
	n.seen[key] = struct{}{}
	n.mu.Unlock()

	title := fmt.Sprintf("Price Alert - %s", item)
	body := fmt.Sprintf("Found %s order for %dp (within your price range!)", side, platinum)
	if err := n.deliver(title, body); err != nil {
		log.Printf("[warn] notification failed: %v", err)
	}
	n.playSound()
}

// Info shows a transient informational notification (no dedupe, no sound).
func (n *Notifier) Info(title, body string) {
	if n == nil || !n.opts.Notifications {
		return
	}
	if err := n.deliver(title, body); err != nil {
		log.Printf("[warn] notification failed: %v", err)
	}
}

func (n *Notifier) playSound() {
	if !n.opts.Sounds {
		return
	}
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		log.Printf("[warn] alert sound failed: %v", err)
	}
}
