package validation

import (
	"net/url"
	"strings"
	"time"

	"linkly/internal/config"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

// Validator checks shorten requests before they reach storage.
type Validator struct {
	maxLength       int
	maxExpiry       time.Duration
	allowPrivateIPs bool
}

func New(cfg *config.ValidationConfig) *Validator {
	return &Validator{
		maxLength:       cfg.MaxURLLength,
		maxExpiry:       time.Duration(cfg.MaxExpirySeconds) * time.Second,
		allowPrivateIPs: cfg.AllowPrivateIPs,
	}
}

func (v *Validator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] || parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.allowPrivateIPs && HostIsPrivate(parsed.Host) {
		return ErrPrivateIPNotAllowed
	}

	return nil
}

// ValidateExpiry converts an optional lifetime in seconds. A nil expiry means
// the link never expires and yields zero.
func (v *Validator) ValidateExpiry(seconds *int64) (time.Duration, error) {
	if seconds == nil {
		return 0, nil
	}
	if *seconds <= 0 {
		return 0, ErrInvalidExpiry
	}
	if v.maxExpiry > 0 && *seconds > int64(v.maxExpiry/time.Second) {
		return 0, ErrInvalidExpiry
	}
	return time.Duration(*seconds) * time.Second, nil
}
