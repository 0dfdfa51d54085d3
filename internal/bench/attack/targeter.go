package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	linkCounter atomic.Uint64
	bodyPool    = sync.Pool{
		New: func() any {
			return make([]byte, 0, 64)
		},
	}

	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/126.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 Version/17.5 Safari/605.1.15",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148",
		"Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0",
	}

	campaigns = []url.Values{
		nil,
		{"utm_source": {"newsletter"}, "utm_medium": {"email"}, "utm_campaign": {"spring"}},
		{"utm_source": {"twitter"}, "utm_medium": {"social"}},
		{"utm_source": {"google"}, "utm_medium": {"cpc"}, "utm_campaign": {"brand"}},
	}
)

// Visitors builds n fixed client identities. Repeated clicks by the same
// visitor share a fingerprint, so the server counts them once. The server only
// honors X-Forwarded-For from SERVER_TRUSTED_PROXIES, so the bench host must be
// listed there or every visitor collapses into its address.
func Visitors(n int, bypassSecret string) []http.Header {
	n = max(n, 1)
	out := make([]http.Header, n)
	for i := range n {
		h := http.Header{}
		h.Set("X-Forwarded-For", fmt.Sprintf("198.18.%d.%d", (i>>8)&0xff, i&0xff))
		h.Set("User-Agent", userAgents[i%len(userAgents)])
		if bypassSecret != "" {
			h.Set(bypassHeader, bypassSecret)
		}
		out[i] = h
	}
	return out
}

func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	target := baseURL + "/shorten"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"original_url":"https://example.com/bench/%d"}`, linkCounter.Add(1))
		t.Body = buf
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, visitors []http.Header) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = withQuery(baseURL+"/"+codes[rand.IntN(len(codes))], campaigns[rand.IntN(len(campaigns))])
		t.Header = visitors[rand.IntN(len(visitors))]
		t.Body = nil
		return nil
	}
}

func AnalyticsTargeter(baseURL string, codes []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		filter := campaigns[rand.IntN(len(campaigns))]
		if filter != nil {
			filter = url.Values{"utm_source": filter["utm_source"]}
		}
		t.Method = http.MethodGet
		t.URL = withQuery(baseURL+"/analytics/"+codes[rand.IntN(len(codes))], filter)
		t.Header = header
		t.Body = nil
		return nil
	}
}

// MixedTargeter splits traffic by ratio: creates, then analytics reads, and
// redirects for the remainder.
func MixedTargeter(create, analytics, redirect vegeta.Targeter, createRatio, analyticsRatio float64) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		switch p := rand.Float64(); {
		case p < createRatio:
			return create(t)
		case p < createRatio+analyticsRatio:
			return analytics(t)
		default:
			return redirect(t)
		}
	}
}

func withQuery(target string, q url.Values) string {
	if len(q) == 0 {
		return target
	}
	return target + "?" + q.Encode()
}
