// Package seed creates the links a read-heavy attack resolves.
package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Count              int
	Workers            int
	Timeout            time.Duration
	BypassSecret       string
	InsecureSkipVerify bool
}

type shortenRequest struct {
	OriginalURL string `json:"original_url"`
}

type shortenResponse struct {
	ShortURL string `json:"short_url"`
}

// Run creates opts.Count links and returns their codes in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", opts.Count, workers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	codes := make([]string, opts.Count)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Count {
		g.Go(func() error {
			code, err := create(ctx, client, opts, fmt.Sprintf("https://example.com/seed/%d", i))
			if err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			codes[i] = code
			if done := progress.Add(1); done%1000 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func create(ctx context.Context, client *http.Client, opts Options, destination string) (string, error) {
	body, err := json.Marshal(shortenRequest{OriginalURL: destination})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.BaseURL+"/shorten", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.BypassSecret != "" {
		req.Header.Set(bypassHeader, opts.BypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var out shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return path.Base(out.ShortURL), nil
}
