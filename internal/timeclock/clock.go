package timeclock

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wall-clock format used for every attendance field
const Layout = "15:04"

// MinutesPerDay is the length of one wall-clock day
const MinutesPerDay = 24 * 60

// OvernightPolicy decides what happens when an end time is earlier than its start time
type OvernightPolicy string

const (
	// OvernightWrap treats end < start as a session that crossed midnight
	OvernightWrap OvernightPolicy = "wrap"
	// OvernightClamp treats end < start as no attendance at all
	OvernightClamp OvernightPolicy = "clamp"
)

// Clock is a time of day expressed as minutes since midnight
type Clock int

// Parse reads an HH:mm string. Empty or malformed input reports false.
func Parse(s string) (Clock, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return 0, false
	}
	return Clock(t.Hour()*60 + t.Minute()), true
}

// String formats the clock back to HH:mm
func (c Clock) String() string {
	m := int(c) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration returns the minutes elapsed from start to end.
// Either side being empty or malformed yields 0.
func Duration(start, end string, policy OvernightPolicy) int {
	from, ok := Parse(start)
	if !ok {
		return 0
	}
	to, ok := Parse(end)
	if !ok {
		return 0
	}

	minutes := int(to - from)
	if minutes >= 0 {
		return minutes
	}

	switch policy {
	case OvernightClamp:
		return 0
	default:
		return minutes + MinutesPerDay
	}
}

// ParseOvernightPolicy maps a config value onto a policy
func ParseOvernightPolicy(s string) (OvernightPolicy, error) {
	switch OvernightPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", OvernightWrap:
		return OvernightWrap, nil
	case OvernightClamp:
		return OvernightClamp, nil
	default:
		return "", fmt.Errorf("unknown overnight policy: %s", s)
	}
}
