package moderation

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

var unitSeconds = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
}

// ParseDuration converts a token like "7d" or "2h" into seconds.
// "0" means permanent and yields 0.
//
// The parse is deliberately forgiving: an unknown unit or a non-numeric
// amount also yields 0 (permanent). That keeps compatibility with how
// moderators have always typed durations, but it means a typo like "3x"
// becomes a permanent ban, so ok=false is returned for anything that did
// not parse cleanly and callers should surface a notice.
func ParseDuration(token string) (seconds int64, ok bool) {
	token = strings.TrimSpace(token)
	if token == "0" {
		return 0, true
	}
	if len(token) < 2 {
		return 0, false
	}

	unit := token[len(token)-1]
	if unit >= 'A' && unit <= 'Z' {
		unit += 'a' - 'A'
	}
	amount, err := strconv.ParseInt(token[:len(token)-1], 10, 64)
	if err != nil {
		return 0, false
	}

	mult, known := unitSeconds[unit]
	if !known {
		return 0, false
	}
	return amount * mult, true
}

// BanExpiry converts a duration in seconds into an absolute expiry.
// Zero seconds means permanent and yields a NULL expiry.
func BanExpiry(now time.Time, seconds int64) sql.NullInt64 {
	if seconds == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: now.Unix() + seconds, Valid: true}
}

// FormatExpiry renders a ban expiry for humans.
func FormatExpiry(expiresAt sql.NullInt64) string {
	if !expiresAt.Valid {
		return "permanent"
	}
	return "until <t:" + strconv.FormatInt(expiresAt.Int64, 10) + ":R>"
}
