package fingerprint

import "strings"

const (
	// PlaceholderIP stands in for loopback traffic so local clicks still
	// resolve to a location.
	PlaceholderIP = "8.8.8.8"

	loopbackIP       = "127.0.0.1"
	UnknownUserAgent = "unknown"
)

func NormalizeIP(ip string) string {
	if strings.TrimSpace(ip) == loopbackIP {
		return PlaceholderIP
	}
	return ip
}

// Compute returns the visitor identity used to deduplicate clicks.
// Campaign parameters play no part in it.
func Compute(ip, userAgent string) string {
	return strings.TrimSpace(strings.ToLower(NormalizeIP(ip) + UserAgent(userAgent)))
}

func UserAgent(ua string) string {
	if ua == "" {
		return UnknownUserAgent
	}
	return ua
}
