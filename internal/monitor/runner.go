// Package monitor drives the query pipeline: normalize, fetch, filter,
// rank, evaluate alerts, map to display records, and hand both columns to
// the renderer.
package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"wfm-monitor/internal/orderbook"
	"wfm-monitor/internal/wfmarket"
)

// ColumnState tags what a rendered column currently shows.
type ColumnState string

const (
	StateLoading ColumnState = "loading"
	StateOK      ColumnState = "ok"
	StateEmpty   ColumnState = "empty"
	StateFailed  ColumnState = "failed"
)

// Fetcher is the slice of the API client the runner needs.
type Fetcher interface {
	Orders(ctx context.Context, slug string) ([]wfmarket.Order, error)
}

// Alerter receives in-range orders. Implementations de-duplicate per
// (item, side) between ResetCycle calls.
type Alerter interface {
	ResetCycle()
	PriceAlert(item, side string, platinum int)
}

// Renderer receives one column at a time together with its state tag.
type Renderer interface {
	RenderColumn(slug orderbook.Slug, side wfmarket.Side, state ColumnState, orders []orderbook.DisplayOrder)
}

// Config carries the settings-derived pipeline options.
type Config struct {
	Band      orderbook.Band
	Filter    orderbook.FilterOpts
	PerColumn int
}

// Runner executes queries against one order book at a time. Each query
// takes a fresh generation number; a completion whose generation has been
// superseded is discarded instead of racing a newer result.
type Runner struct {
	fetch  Fetcher
	alerts Alerter
	render Renderer
	cfg    Config

	gen atomic.Uint64
}

func New(fetch Fetcher, alerts Alerter, render Renderer, cfg Config) *Runner {
	return &Runner{fetch: fetch, alerts: alerts, render: render, cfg: cfg}
}

// Query runs the full pipeline for one item. A blank input is suppressed
// silently (nil error, nothing rendered). Fetch failures render a failed
// state on both columns and are returned for logging; they are never fatal.
func (r *Runner) Query(ctx context.Context, raw string) error {
	slug, err := orderbook.Normalize(raw)
	if err != nil {
		if errors.Is(err, orderbook.ErrEmptyQuery) {
			return nil
		}
		return err
	}
	return r.querySlug(ctx, slug)
}

// Submit starts a query without waiting for it. Useful when input arrives
// faster than responses; stale completions are dropped by generation.
func (r *Runner) Submit(ctx context.Context, raw string) {
	go func() { _ = r.Query(ctx, raw) }()
}

func (r *Runner) querySlug(ctx context.Context, slug orderbook.Slug) error {
	gen := r.gen.Add(1)

	r.render.RenderColumn(slug, wfmarket.SideSell, StateLoading, nil)
	r.render.RenderColumn(slug, wfmarket.SideBuy, StateLoading, nil)

	orders, err := r.fetch.Orders(ctx, string(slug))
	if r.gen.Load() != gen {
		// A newer query took over while this one was in flight.
		return nil
	}
	if err != nil {
		r.render.RenderColumn(slug, wfmarket.SideSell, StateFailed, nil)
		r.render.RenderColumn(slug, wfmarket.SideBuy, StateFailed, nil)
		return err
	}

	kept := orderbook.Filter(orders, r.cfg.Band, r.cfg.Filter)
	sell, buy := orderbook.SplitSides(kept)
	sell = orderbook.Rank(sell)
	buy = orderbook.Rank(buy)

	if r.alerts != nil {
		r.alerts.ResetCycle()
		pretty := orderbook.PrettyName(slug)
		for _, o := range append(append([]wfmarket.Order(nil), sell...), buy...) {
			if orderbook.InBand(o, r.cfg.Band) {
				r.alerts.PriceAlert(pretty, string(o.Side), o.Platinum)
			}
		}
	}

	r.renderSide(slug, wfmarket.SideSell, sell)
	r.renderSide(slug, wfmarket.SideBuy, buy)
	return nil
}

func (r *Runner) renderSide(slug orderbook.Slug, side wfmarket.Side, orders []wfmarket.Order) {
	if len(orders) == 0 {
		r.render.RenderColumn(slug, side, StateEmpty, nil)
		return
	}
	display := orderbook.ToDisplay(orders, slug, r.cfg.PerColumn)
	r.render.RenderColumn(slug, side, StateOK, display)
}

// Watch re-queries every slug on the refresh interval until ctx is
// cancelled. The first pass runs immediately. Per-item failures are
// reported through onErr (may be nil) and do not stop the loop.
func (r *Runner) Watch(ctx context.Context, slugs []orderbook.Slug, interval time.Duration, onErr func(orderbook.Slug, error)) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	run := func() {
		for _, slug := range slugs {
			if ctx.Err() != nil {
				return
			}
			if err := r.querySlug(ctx, slug); err != nil && onErr != nil {
				onErr(slug, err)
			}
		}
	}

	run()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			run()
		}
	}
}
