// Package scrape talks to the product-scraper sidecar that extracts
// vendor, price and SKU details from retailer product pages. The
// scraper is optional and best-effort: any failure degrades to "no
// details" and never blocks item creation.
package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/trovestudio/ffetrack/internal/types"
)

// ProductInfo is the subset of scraped fields the item service can
// autofill. Cost tolerates both numeric and "$1,249.99" string forms.
type ProductInfo struct {
	Name   string            `json:"name"`
	Vendor string            `json:"vendor"`
	SKU    string            `json:"sku"`
	Cost   types.FlexFloat64 `json:"cost"`
	Size   string            `json:"size"`
	Finish string            `json:"finish"`
}

// Client calls the scraper service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a scraper client. An empty baseURL yields a
// disabled client whose Lookup always reports no details.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a scraper endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// Lookup asks the scraper to extract product details from a vendor
// page. Returns (nil, nil) when the scraper is disabled; callers treat
// any error as "fill nothing".
func (c *Client) Lookup(ctx context.Context, pageURL string) (*ProductInfo, error) {
	if !c.Enabled() || pageURL == "" {
		return nil, nil
	}

	payload, err := json.Marshal(map[string]string{"url": pageURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scraper returned status %d", resp.StatusCode)
	}

	var info ProductInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	return &info, nil
}

// Ping checks scraper reachability for health reporting.
func (c *Client) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return fmt.Errorf("scraper not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("scraper health returned status %d", resp.StatusCode)
	}
	return nil
}
