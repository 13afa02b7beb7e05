package wfmarket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultURL = "https://api.warframe.market/v1"

// WebOrigin is the site origin used to resolve rooted icon paths.
const WebOrigin = "https://warframe.market"

// AssetRoot is prefixed to relative icon paths like "icons/en/x.png".
const AssetRoot = WebOrigin + "/static/assets/"

const DefaultPlatform = "pc"

// FetchError is any non-success HTTP status or transport failure from the
// API. Status is 0 when the request never produced a response.
type FetchError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("wfmarket %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("wfmarket %s: status=%d", e.Endpoint, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	host       string
	platform   string
	httpClient *http.Client
}

func NewClient(host, platform string) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultURL
	}
	host = strings.TrimRight(host, "/")

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("wfmarket url parse %q: %w", host, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("wfmarket url must be http(s), got %q", host)
	}

	platform = strings.TrimSpace(platform)
	if platform == "" {
		platform = DefaultPlatform
	}

	return &Client{
		host:     host,
		platform: platform,
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
	}, nil
}

// catalogResp mirrors { payload: { items: { en: [...] } } }.
type catalogResp struct {
	Payload struct {
		Items struct {
			En []ItemSummary `json:"en"`
		} `json:"items"`
	} `json:"payload"`
}

// Catalog fetches the full item list. An empty payload yields an empty
// slice, not an error.
func (c *Client) Catalog(ctx context.Context) ([]ItemSummary, error) {
	var out catalogResp
	if err := c.getJSON(ctx, "/items", &out); err != nil {
		return nil, err
	}
	return out.Payload.Items.En, nil
}

type itemDetailResp struct {
	Payload struct {
		Item *struct {
			ItemName   string `json:"item_name"`
			Icon       string `json:"icon"`
			ItemsInSet []struct {
				ItemName string `json:"item_name"`
				Icon     string `json:"icon"`
				En       *struct {
					ItemName string `json:"item_name"`
				} `json:"en"`
			} `json:"items_in_set"`
		} `json:"item"`
	} `json:"payload"`
}

// ItemDetail fetches one item with its components. A missing item resolves
// to (nil, nil) rather than an error.
func (c *Client) ItemDetail(ctx context.Context, slug string) (*ItemDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("item slug required")
	}

	var out itemDetailResp
	if err := c.getJSON(ctx, "/items/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	item := out.Payload.Item
	if item == nil {
		return nil, nil
	}

	detail := &ItemDetail{
		Name:    item.ItemName,
		IconURL: IconURL(item.Icon),
	}
	for _, sub := range item.ItemsInSet {
		name := sub.ItemName
		if sub.En != nil && sub.En.ItemName != "" {
			name = sub.En.ItemName
		}
		detail.Components = append(detail.Components, Component{
			Name:    name,
			IconURL: IconURL(sub.Icon),
		})
	}
	return detail, nil
}

type ordersResp struct {
	Payload struct {
		Orders []Order `json:"orders"`
	} `json:"payload"`
}

// Orders fetches the full order book for an item.
func (c *Client) Orders(ctx context.Context, slug string) ([]Order, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("item slug required")
	}

	var out ordersResp
	if err := c.getJSON(ctx, "/items/"+url.PathEscape(slug)+"/orders", &out); err != nil {
		return nil, err
	}
	return out.Payload.Orders, nil
}

// IconURL resolves an icon path from the API into an absolute URL.
// Full URLs pass through; rooted paths get the site origin; anything else
// is taken relative to the static asset root.
func IconURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return WebOrigin + path
	}
	return AssetRoot + path
}

func (c *Client) getJSON(ctx context.Context, path string, into any) error {
	if c == nil {
		return fmt.Errorf("wfmarket client nil")
	}
	endpoint := c.host + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Platform", c.platform)
	req.Header.Set("Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the error is informative in logs; the typed
		// error is what callers branch on.
		_ = readBodyLimit(resp.Body, 8<<10)
		return &FetchError{Endpoint: path, Status: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("wfmarket decode %s: %w", path, err)
	}
	return nil
}

func readBodyLimit(r io.Reader, limit int64) string {
	if r == nil {
		return ""
	}
	if limit <= 0 {
		limit = 8 << 10
	}
	b, _ := io.ReadAll(io.LimitReader(r, limit))
	return string(b)
}
