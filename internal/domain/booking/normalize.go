package booking

import (
	"regexp"
	"strings"
)

// Studio defaults applied when an update carries no usable event time or
// timezone.
const (
	DefaultEventTime     = "09:00:00"
	DefaultEventTimezone = "America/New_York"
)

var (
	hhmmPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	hhmmssPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

// NormalizeEventTime accepts HH:MM (zero-padded to HH:MM:SS) or HH:MM:SS;
// anything else, including the empty string, resolves to DefaultEventTime.
func NormalizeEventTime(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case hhmmPattern.MatchString(raw):
		return raw + ":00"
	case hhmmssPattern.MatchString(raw):
		return raw
	default:
		return DefaultEventTime
	}
}

// NormalizeEventTimezone resolves a blank zone to DefaultEventTimezone and
// passes any other value through unchanged.
func NormalizeEventTimezone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultEventTimezone
	}
	return raw
}
