package order_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-2026-000001", formatOrderNumber(2026, 1))
	assert.Equal(t, "ORD-2026-000042", formatOrderNumber(2026, 42))
	assert.Equal(t, "ORD-2027-1000000", formatOrderNumber(2027, 1000000))
}

func TestDetectDevice(t *testing.T) {
	cases := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"iphone safari", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", "mobile"},
		{"android chrome", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Chrome/120 Mobile", "mobile"},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) Safari/604.1", "tablet"},
		{"kindle", "Mozilla/5.0 (Linux; U; en-us; KFAPWI) Kindle/3.0", "tablet"},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120", "desktop"},
		{"empty", "", "desktop"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detectDevice(tc.userAgent))
		})
	}
}
