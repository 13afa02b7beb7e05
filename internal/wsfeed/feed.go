// Package wsfeed streams newly posted orders from the warframe.market
// WebSocket so the monitor can react without waiting for the next refresh.
package wsfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gorilla/websocket"

	"wfm-monitor/internal/wfmarket"
)

const DefaultURL = "wss://warframe.market/socket?platform=pc"

// Message types on the socket.
const (
	TypeSubscribeRecent = "@WS/SUBSCRIBE/MOST_RECENT"
	TypeNewOrder        = "@WS/SUBSCRIBE/MOST_RECENT/NEW_ORDER"
)

// Envelope is the socket's message frame. Payload stays raw so callers
// decode based on Type.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewOrderEvent is the payload of a TypeNewOrder frame.
type NewOrderEvent struct {
	Order struct {
		wfmarket.Order
		Item struct {
			URLName string `json:"url_name"`
			En      struct {
				ItemName string `json:"item_name"`
			} `json:"en"`
		} `json:"item"`
	} `json:"order"`
}

// DecodeNewOrder extracts the order and its item slug from a TypeNewOrder
// envelope.
func DecodeNewOrder(env Envelope) (wfmarket.Order, string, error) {
	if env.Type != TypeNewOrder {
		return wfmarket.Order{}, "", fmt.Errorf("wsfeed: not a new-order frame: %q", env.Type)
	}
	var ev NewOrderEvent
	if err := json.Unmarshal(env.Payload, &ev); err != nil {
		return wfmarket.Order{}, "", fmt.Errorf("wsfeed decode new order: %w", err)
	}
	return ev.Order.Order, ev.Order.Item.URLName, nil
}

type Options struct {
	BackoffMin time.Duration
	BackoffMax time.Duration
	OutBuffer  int
}

func (o Options) withDefaults() Options {
	if o.BackoffMin <= 0 {
		o.BackoffMin = 500 * time.Millisecond
	}
	if o.BackoffMax <= 0 {
		o.BackoffMax = 15 * time.Second
	}
	if o.OutBuffer <= 0 {
		o.OutBuffer = 128
	}
	return o
}

// Start connects to the socket, subscribes to the most-recent-orders
// stream, and emits decoded envelopes. It reconnects with capped backoff
// plus jitter until ctx is cancelled, then closes both channels.
func Start(ctx context.Context, url string, opts Options) (<-chan Envelope, <-chan error) {
	opts = opts.withDefaults()
	if url == "" {
		url = DefaultURL
	}

	out := make(chan Envelope, opts.OutBuffer)
	errs := make(chan error, 16)

	go func() {
		defer close(out)
		defer close(errs)

		backoff := opts.BackoffMin
		for {
			if ctx.Err() != nil {
				return
			}

			conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
			if err != nil {
				emitErrNonBlocking(errs, fmt.Errorf("wsfeed dial: %w", err))
				sleepWithJitter(ctx, backoff)
				backoff = nextBackoff(backoff, opts.BackoffMax)
				continue
			}

			backoff = opts.BackoffMin

			if err := runSession(ctx, conn, out, errs); err != nil && ctx.Err() == nil {
				emitErrNonBlocking(errs, err)
			}

			_ = conn.Close()
			if ctx.Err() != nil {
				return
			}
			sleepWithJitter(ctx, backoff)
			backoff = nextBackoff(backoff, opts.BackoffMax)
		}
	}()

	return out, errs
}

func runSession(ctx context.Context, conn *websocket.Conn, out chan<- Envelope, errs chan<- error) error {
	if conn == nil {
		return fmt.Errorf("wsfeed session: nil conn")
	}

	sub, err := json.Marshal(Envelope{Type: TypeSubscribeRecent})
	if err != nil {
		return fmt.Errorf("wsfeed subscribe marshal: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, sub); err != nil {
		return fmt.Errorf("wsfeed subscribe write: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrCloseSent) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wsfeed read: %w", err)
		}

		if typ != websocket.TextMessage && typ != websocket.BinaryMessage {
			continue
		}
		if len(msg) == 0 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			emitErrNonBlocking(errs, fmt.Errorf("wsfeed json decode: %w", err))
			continue
		}

		// Drop when the consumer lags rather than stalling the read loop.
		select {
		case out <- env:
		default:
		}
	}
}

func emitErrNonBlocking(ch chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case ch <- err:
	default:
	}
}

func nextBackoff(cur, max time.Duration) time.Duration {
	next := cur * 2
	if next > max {
		return max
	}
	return next
}

func sleepWithJitter(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	j := int64(d) / 7
	if j > 0 {
		d = time.Duration(int64(d) + rand.Int64N(2*j+1) - j)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
