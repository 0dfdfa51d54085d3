package service

import (
	"net/url"
	"strings"

	"linkly/internal/domain"
)

func ResolveKey(code string) string {
	return "resolve:" + code
}

// AnalyticsKey folds the filters into the key so each combination is cached
// on its own. Absent filters encode as empty segments.
func AnalyticsKey(code string, f domain.Filters) string {
	var b strings.Builder
	b.WriteString("analytics:")
	b.WriteString(url.QueryEscape(code))
	for _, v := range []*string{f.Source, f.Medium, f.Campaign} {
		b.WriteByte(':')
		if v != nil {
			b.WriteString(url.QueryEscape(*v))
		}
	}
	return b.String()
}
