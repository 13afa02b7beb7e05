// Command items fetches the item catalog and prints slug + display name,
// optionally filtered by a case-insensitive substring.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"wfm-monitor/internal/dotenv"
	"wfm-monitor/internal/wfmarket"
)

func main() {
	log.SetFlags(0)

	if err := dotenv.Load(); err != nil {
		log.Printf("[warn] %v", err)
	}

	var (
		platform = flag.String("platform", "pc", "platform header (pc, ps4, xbox, switch)")
		limit    = flag.Int("limit", 50, "maximum rows to print (0 = all)")
		detail   = flag.Bool("detail", false, "treat the argument as a slug and show item detail instead")
		apiHost  = flag.String("api", os.Getenv("WFM_API_URL"), "API base URL override")
	)
	flag.Parse()

	client, err := wfmarket.NewClient(*apiHost, *platform)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	query := strings.ToLower(strings.TrimSpace(strings.Join(flag.Args(), " ")))

	if *detail {
		if query == "" {
			log.Fatalf("[fatal] --detail requires an item slug")
		}
		showDetail(ctx, client, query)
		return
	}

	items, err := client.Catalog(ctx)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	printed := 0
	for _, it := range items {
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", it.Slug, it.Name)
		printed++
		if *limit > 0 && printed >= *limit {
			break
		}
	}
	tw.Flush()

	if printed == 0 {
		fmt.Println("No items matched.")
	}
}

func showDetail(ctx context.Context, client *wfmarket.Client, slug string) {
	d, err := client.ItemDetail(ctx, slug)
	if err != nil {
		log.Fatalf("[fatal] %v", err)
	}
	if d == nil {
		fmt.Printf("No item %q.\n", slug)
		return
	}

	fmt.Printf("%s\n  icon: %s\n", d.Name, d.IconURL)
	for _, c := range d.Components {
		fmt.Printf("  - %s (%s)\n", c.Name, c.IconURL)
	}
}
