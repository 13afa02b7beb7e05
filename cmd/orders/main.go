// Command orders runs one query against the trading post and prints both
// order columns.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"wfm-monitor/internal/dotenv"
	"wfm-monitor/internal/monitor"
	"wfm-monitor/internal/orderbook"
	"wfm-monitor/internal/render"
	"wfm-monitor/internal/settings"
	"wfm-monitor/internal/wfmarket"
)

func main() {
	log.SetFlags(0)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	var (
		minFlag     = flag.String("min", "", "minimum acceptable price (platinum)")
		maxFlag     = flag.String("max", "", "maximum acceptable price (platinum)")
		platform    = flag.String("platform", "", "platform header (pc, ps4, xbox, switch)")
		limit       = flag.Int("limit", 0, "orders shown per column (0 = use settings)")
		showWhisper = flag.Bool("whisper", false, "print the whisper message under each order")
		includeAll  = flag.Bool("all", false, "include hidden and offline orders")
		apiHost     = flag.String("api", os.Getenv("WFM_API_URL"), "API base URL override")
	)
	flag.Parse()

	item := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(item) == "" {
		fmt.Fprintln(os.Stderr, "usage: orders [flags] <item name>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	path, err := settings.DefaultPath()
	if err != nil {
		log.Printf("[warn] %v", err)
	}
	prefs, _, err := settings.Load(path)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	band := orderbook.Band{}
	if band.Min, err = parsePrice(*minFlag); err != nil {
		log.Fatalf("[fatal] --min: %v", err)
	}
	if band.Max, err = parsePrice(*maxFlag); err != nil {
		log.Fatalf("[fatal] --max: %v", err)
	}

	pf := *platform
	if pf == "" {
		pf = prefs.DefaultPlatform
	}
	perColumn := *limit
	if perColumn <= 0 {
		perColumn = prefs.OrdersPerColumn
	}

	client, err := wfmarket.NewClient(*apiHost, pf)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	textRender := render.NewText(os.Stdout)
	textRender.ShowWhisper = *showWhisper

	runner := monitor.New(client, nil, textRender, monitor.Config{
		Band: band,
		Filter: orderbook.FilterOpts{
			RequireVisible: !*includeAll,
			RequireOnline:  !*includeAll && prefs.HideOffline,
		},
		PerColumn: perColumn,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runner.Query(ctx, item); err != nil {
		log.Fatalf("[fatal] %v", err)
	}
}

func parsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &v, nil
}
