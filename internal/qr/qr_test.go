package qr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkly/internal/qr"
)

func TestFetch_PassesImageThrough(t *testing.T) {
	var gotData string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotData = r.URL.Query().Get("data")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG"))
	}))
	t.Cleanup(srv.Close)

	c := qr.NewClient(srv.Client(), srv.URL+"/v1/create-qr-code/?data=", time.Second)

	img, ct, err := c.Fetch(context.Background(), "http://sho.rt/abc?x=1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), img)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, "http://sho.rt/abc?x=1", gotData)
}

func TestFetch_DefaultsContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte{1, 2, 3})
	}))
	t.Cleanup(srv.Close)

	_, ct, err := qr.NewClient(srv.Client(), srv.URL+"/?data=", time.Second).Fetch(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
}

func TestFetch_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, _, err := qr.NewClient(srv.Client(), srv.URL+"/?data=", time.Second).Fetch(context.Background(), "x")
	assert.ErrorIs(t, err, qr.ErrUpstream)
}
