// Package qr fetches QR code images for short URLs from an external renderer.
package qr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrUpstream = errors.New("qr service unavailable")

const maxImageBytes = 1 << 20

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	http    Doer
	apiURL  string
	timeout time.Duration
}

// NewClient takes the renderer URL up to and including the query parameter
// that carries the encoded text.
func NewClient(doer Doer, apiURL string, timeout time.Duration) *Client {
	return &Client{http: doer, apiURL: apiURL, timeout: timeout}
}

// Fetch returns the rendered image and its content type.
func (c *Client) Fetch(ctx context.Context, text string) ([]byte, string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+url.QueryEscape(text), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build qr request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return img, contentType, nil
}
