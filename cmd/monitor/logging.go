package main

import (
	"log"

	"wfm-monitor/internal/alertlog"
	"wfm-monitor/internal/notify"
	"wfm-monitor/internal/orderbook"
)

// loggedAlerter fans alerts out to the desktop notifier and the JSONL
// alert log.
type loggedAlerter struct {
	notifier *notify.Notifier
	log      *alertlog.Log
	band     orderbook.Band
}

func (a *loggedAlerter) ResetCycle() {
	a.notifier.ResetCycle()
}

func (a *loggedAlerter) PriceAlert(item, side string, platinum int) {
	a.notifier.PriceAlert(item, side, platinum)
	logEvent(a.log, alertlog.Record{
		Event:    "alert",
		Item:     item,
		Side:     side,
		Platinum: platinum,
		Min:      a.band.Min,
		Max:      a.band.Max,
	})
}

func logEvent(l *alertlog.Log, rec alertlog.Record) {
	if l == nil {
		return
	}
	if err := l.Append(rec); err != nil {
		log.Printf("[warn] alert log write failed: %v", err)
	}
}
