package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type details struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type Client struct {
	http    Doer
	baseURL string
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(doer Doer, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http:    doer,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		logger:  logger,
	}
}

// Lookup returns "City, Country" for ip, or nil when the location is unknown.
// It never fails; errors are logged at debug level.
func (c *Client) Lookup(ctx context.Context, ip string) *string {
	d, err := c.fetch(ctx, ip)
	if err != nil {
		c.logger.Debug("geo lookup failed",
			slog.String("ip", ip),
			slog.String("error", err.Error()))
		return nil
	}
	return format(d)
}

func (c *Client) fetch(ctx context.Context, ip string) (*details, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(ip), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call geo service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var d details
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &d, nil
}

func format(d *details) *string {
	parts := make([]string, 0, 2)
	if city := strings.TrimSpace(d.City); city != "" {
		parts = append(parts, city)
	}
	if country := strings.TrimSpace(d.Country); country != "" {
		parts = append(parts, country)
	}
	if len(parts) == 0 {
		return nil
	}
	location := strings.Join(parts, ", ")
	return &location
}
