// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the stamp layouts feed producers commonly emit

package time

import (
	"strings"
	"time"
)

// Layouts tried in order by the parse helpers
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Layouts without a zone are read as UTC.
func ParseFlexibleTime(timeStr string) time.Time {
	return ParseFlexibleTimeIn(timeStr, time.UTC)
}

// ParseFlexibleTimeIn is ParseFlexibleTime with zone-less layouts read in loc
func ParseFlexibleTimeIn(timeStr string, loc *time.Location) time.Time {
	if timeStr == "" {
		return time.Time{}
	}
	if loc == nil {
		loc = time.UTC
	}

	timeStr = strings.TrimSpace(timeStr)

	for _, format := range timeFormats {
		if t, err := time.ParseInLocation(format, timeStr, loc); err == nil {
			return t
		}
	}

	return time.Time{}
}
