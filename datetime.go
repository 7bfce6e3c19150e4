package guardian

import (
	"fmt"
	"time"
)

// formatDate renders a plain calendar date the way the API expects it:
// no zero padding, e.g. "2020-1-1".
func formatDate(year, month, day int) string {
	return fmt.Sprintf("%d-%d-%d", year, month, day)
}

// formatDatetime renders an RFC 3339 timestamp with a fixed hour offset.
// Offsets outside the representable range fall back to UTC. An invalid
// calendar combination returns "" so the caller can skip the parameter.
func formatDatetime(year, month, day, hour, min, sec, tzOffset int) string {
	if tzOffset <= -24 || tzOffset >= 24 {
		tzOffset = 0
	}

	loc := time.FixedZone("", tzOffset*3600)
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, loc)

	// time.Date normalises out-of-range components instead of failing,
	// so an unchanged round trip is the validity check.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return ""
	}

	return t.Format("2006-01-02T15:04:05-07:00")
}
