package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"wfm-monitor/internal/alertlog"
	"wfm-monitor/internal/dotenv"
	"wfm-monitor/internal/monitor"
	"wfm-monitor/internal/notify"
	"wfm-monitor/internal/orderbook"
	"wfm-monitor/internal/render"
	"wfm-monitor/internal/settings"
	"wfm-monitor/internal/watchlist"
	"wfm-monitor/internal/wfmarket"
	"wfm-monitor/internal/wsfeed"
)

const defaultAlertsOutFile = "./out/alerts.jsonl"

type args struct {
	items        string
	watchFile    string
	minPrice     *float64
	maxPrice     *float64
	platform     string
	refreshSec   int
	perColumn    int
	live         bool
	showWhisper  bool
	noNotify     bool
	settingsFile string
	outFile      string
	apiHost      string
}

func parseArgs() (args, error) {
	var a args
	var minFlag, maxFlag string

	flag.StringVar(&a.items, "items", "", "comma-separated item names or slugs to watch")
	flag.StringVar(&a.watchFile, "watch-file", "", "watch list file (default: ./watchlist.txt if present)")
	flag.StringVar(&minFlag, "min", "", "minimum acceptable price (platinum)")
	flag.StringVar(&maxFlag, "max", "", "maximum acceptable price (platinum)")
	flag.StringVar(&a.platform, "platform", "", "platform header (pc, ps4, xbox, switch)")
	flag.IntVar(&a.refreshSec, "refresh", 0, "refresh interval in seconds (0 = use settings)")
	flag.IntVar(&a.perColumn, "limit", 0, "orders shown per column (0 = use settings)")
	flag.BoolVar(&a.live, "live", false, "also stream new orders over the websocket feed")
	flag.BoolVar(&a.showWhisper, "whisper", false, "print the whisper message under each order")
	flag.BoolVar(&a.noNotify, "no-notify", false, "disable desktop notifications for this run")
	flag.StringVar(&a.settingsFile, "settings", "", "settings file path (default: user config dir)")
	flag.StringVar(&a.outFile, "out", defaultAlertsOutFile, "alert log file (JSONL); empty disables")
	flag.StringVar(&a.apiHost, "api", os.Getenv("WFM_API_URL"), "API base URL override")
	flag.Parse()

	var err error
	if a.minPrice, err = parsePriceFlag("min", minFlag); err != nil {
		return a, err
	}
	if a.maxPrice, err = parsePriceFlag("max", maxFlag); err != nil {
		return a, err
	}
	if a.minPrice != nil && a.maxPrice != nil && *a.minPrice > *a.maxPrice {
		return a, fmt.Errorf("--min %v exceeds --max %v", *a.minPrice, *a.maxPrice)
	}
	return a, nil
}

func parsePriceFlag(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("--%s: invalid price %q", name, raw)
	}
	return &v, nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	parsed, err := parseArgs()
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	settingsPath := parsed.settingsFile
	if settingsPath == "" {
		if settingsPath, err = settings.DefaultPath(); err != nil {
			log.Printf("[warn] %v; running with default settings", err)
		}
	}
	prefs, found, err := settings.Load(settingsPath)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}
	if found {
		log.Printf("Settings: %s", settingsPath)
	}

	band := orderbook.Band{Min: parsed.minPrice, Max: parsed.maxPrice}
	if band.Min == nil {
		band.Min = prefs.DefaultMinPrice
	}
	if band.Max == nil {
		band.Max = prefs.DefaultMaxPrice
	}

	platform := parsed.platform
	if platform == "" {
		platform = prefs.DefaultPlatform
	}
	refresh := time.Duration(parsed.refreshSec) * time.Second
	if parsed.refreshSec <= 0 {
		refresh = time.Duration(prefs.RefreshIntervalSec) * time.Second
	}
	perColumn := parsed.perColumn
	if perColumn <= 0 {
		perColumn = prefs.OrdersPerColumn
	}

	slugs := watchedSlugs(parsed)
	if len(slugs) == 0 {
		log.Fatalf("[fatal] nothing to watch: pass --items, --watch-file, or create watchlist.txt")
	}

	client, err := wfmarket.NewClient(parsed.apiHost, platform)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	alerts := alertlog.Open(parsed.outFile)
	if alerts != nil {
		log.Printf("Alert log: %s (JSONL)", parsed.outFile)
		defer func() {
			if err := alerts.Close(); err != nil {
				log.Printf("[warn] alert log close: %v", err)
			}
		}()
	}

	notifier := notify.New(notify.Options{
		Notifications: prefs.EnableNotifications && !parsed.noNotify,
		Sounds:        prefs.EnableSounds,
	})

	textRender := render.NewText(os.Stdout)
	textRender.ShowWhisper = parsed.showWhisper

	runner := monitor.New(client, &loggedAlerter{notifier: notifier, log: alerts, band: band}, textRender, monitor.Config{
		Band: band,
		Filter: orderbook.FilterOpts{
			RequireVisible: true,
			RequireOnline:  prefs.HideOffline,
		},
		PerColumn: perColumn,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		s := <-sigCh
		log.Printf("[info] signal %v: shutting down", s)
		cancel()
	}()

	logEvent(alerts, alertlog.Record{Event: "start", Min: band.Min, Max: band.Max})
	defer logEvent(alerts, alertlog.Record{Event: "shutdown"})

	log.Printf("Watching %d item(s) every %s on %s", len(slugs), refresh, platform)
	log.Printf("Band: %s", bandString(band))

	if parsed.live {
		go runLiveFeed(ctx, platform, slugs, band, notifier, alerts)
	}

	runner.Watch(ctx, slugs, refresh, func(slug orderbook.Slug, err error) {
		log.Printf("[warn] %s: %v", slug, err)
		logEvent(alerts, alertlog.Record{Event: "fetch_error", Item: string(slug), Err: err.Error()})
	})
}

func watchedSlugs(parsed args) []orderbook.Slug {
	if strings.TrimSpace(parsed.items) != "" {
		return watchlist.Parse(parsed.items)
	}

	path := parsed.watchFile
	if path == "" {
		path = watchlist.DefaultFileIfPresent()
	}
	if path == "" {
		return nil
	}
	slugs, err := watchlist.ReadFile(path)
	if err != nil {
		log.Fatalf("[fatal] watch list %s: %v", path, err)
	}
	if len(slugs) > 0 {
		log.Printf("Watch list: %s (%d items)", path, len(slugs))
	}
	return slugs
}

func bandString(b orderbook.Band) string {
	min, max := "-", "-"
	if b.Min != nil {
		min = strconv.FormatFloat(*b.Min, 'f', -1, 64)
	}
	if b.Max != nil {
		max = strconv.FormatFloat(*b.Max, 'f', -1, 64)
	}
	return fmt.Sprintf("[%s, %s]", min, max)
}

// runLiveFeed watches the websocket stream and alerts on in-band new orders
// for watched items without waiting for the next refresh.
func runLiveFeed(ctx context.Context, platform string, slugs []orderbook.Slug, band orderbook.Band, notifier *notify.Notifier, alerts *alertlog.Log) {
	watched := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		watched[string(s)] = struct{}{}
	}

	url := "wss://warframe.market/socket?platform=" + platform
	msgs, errs := wsfeed.Start(ctx, url, wsfeed.Options{})
	log.Printf("Live feed: %s", url)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			log.Printf("[warn] live feed: %v", err)
		case env, ok := <-msgs:
			if !ok {
				return
			}
			if env.Type != wsfeed.TypeNewOrder {
				continue
			}
			order, slug, err := wsfeed.DecodeNewOrder(env)
			if err != nil {
				log.Printf("[warn] live feed: %v", err)
				continue
			}
			if _, ok := watched[slug]; !ok {
				continue
			}
			if !orderbook.InBand(order, band) {
				continue
			}
			pretty := orderbook.PrettyName(orderbook.Slug(slug))
			notifier.PriceAlert(pretty, string(order.Side), order.Platinum)
			logEvent(alerts, alertlog.Record{
				Event:    "alert",
				Item:     pretty,
				Side:     string(order.Side),
				Platinum: order.Platinum,
				Min:      band.Min,
				Max:      band.Max,
				Message:  "live feed",
			})
		}
	}
}
