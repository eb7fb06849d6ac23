package moderation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		token   string
		seconds int64
		ok      bool
	}{
		{"7d", 604800, true},
		{"1d", 86400, true},
		{"2h", 7200, true},
		{"30m", 1800, true},
		{"45s", 45, true},
		{"0", 0, true},
		{"3x", 0, false},   // unknown unit falls back to permanent
		{"abc", 0, false},  // non-numeric amount
		{"d", 0, false},    // no amount
		{"", 0, false},
		{"0s", 0, true},    // zero magnitude with a valid unit
		{"10D", 864000, true},
	}

	for _, tc := range tests {
		seconds, ok := ParseDuration(tc.token)
		assert.Equal(t, tc.seconds, seconds, "token %q", tc.token)
		assert.Equal(t, tc.ok, ok, "token %q", tc.token)
	}
}

func TestBanExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	permanent := BanExpiry(now, 0)
	assert.False(t, permanent.Valid)

	timed := BanExpiry(now, 3600)
	assert.True(t, timed.Valid)
	assert.Equal(t, now.Unix()+3600, timed.Int64)
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "permanent", FormatExpiry(BanExpiry(time.Now(), 0)))
	assert.Contains(t, FormatExpiry(BanExpiry(time.Unix(100, 0), 50)), "<t:150:R>")
}
