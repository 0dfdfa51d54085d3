package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		referer  string
		expected string
	}{
		{name: "no referer is direct", referer: "", expected: "direct"},
		{name: "host of search page", referer: "https://google.com/search?q=linkly", expected: "google.com"},
		{name: "port kept", referer: "http://example.com:8080/path", expected: "example.com:8080"},
		{name: "subdomain kept", referer: "https://news.ycombinator.com/item?id=1", expected: "news.ycombinator.com"},
		{name: "bare word", referer: "not-a-valid-url", expected: "unknown"},
		{name: "path only", referer: "/just/a/path", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDomain(tt.referer))
		})
	}
}

func TestAttributionFrom(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/abc?utm_source=newsletter&utm_medium=&utm_campaign=spring%20sale", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	a := attributionFrom(c)

	require.NotNil(t, a.Source)
	assert.Equal(t, "newsletter", *a.Source)
	assert.Nil(t, a.Medium, "empty value is treated as absent")
	require.NotNil(t, a.Campaign)
	assert.Equal(t, "spring sale", *a.Campaign)
}
