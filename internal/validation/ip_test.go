package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"linkly/internal/validation"
)

func TestHostIsPrivate(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"example.com", false},
		{"example.com:8080", false},
		{"localhost", false},
		{"8.8.8.8", false},
		{"8.8.8.8:80", false},
		{"[2001:4860:4860::8888]", false},
		{"[2001:4860:4860::8888]:443", false},

		{"127.0.0.1", true},
		{"127.0.0.1:8080", true},
		{"[::1]", true},
		{"[::1]:8080", true},
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"192.168.1.1", true},
		{"169.254.1.1", true},
		{"100.64.0.1", true},
		{"100.127.255.255", true},
		{"192.0.0.1", true},
		{"192.0.2.1", true},
		{"198.18.0.1", true},
		{"198.51.100.1", true},
		{"203.0.113.1", true},
		{"224.0.0.1", true},
		{"0.0.0.0", true},
		{"[::]", true},
		{"[2001:db8::1]", true},

		{"[::ffff:8.8.8.8]", false},
		{"[::ffff:127.0.0.1]", true},
		{"[::ffff:192.168.1.1]", true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.HostIsPrivate(tt.host))
		})
	}
}
