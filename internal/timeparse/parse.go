// Package timeparse parses user-provided time-of-day literals. It tries
// a fixed list of layouts before giving up, so inputs like "00:34:59",
// "12:34 AM", "4pm", "6h 45m" and full RFC 3339 stamps all work. For
// date-bearing layouts the date portion is ignored.
package timeparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/misalian/snaptime/pkg/clock"
)

// layouts are tried in order. AM/PM markers are matched
// case-insensitively by also trying the uppercased input.
var layouts = []string{
	"15:04:05", // fractional seconds accepted after the seconds field
	"15:04",
	"3:04:05 PM",
	"3:04:05PM",
	"3:04 PM",
	"3:04PM",
	"15h 04m 05s",
	"15h04m05s",
	"15h 04m",
	"15h04m",
	"15h",
	"0304 PM",
	"0304PM",
	"3 PM",
	"3PM",
	"1504",
	time.RFC3339,
	time.ANSIC,
}

// SinceMidnight parses a time-of-day literal and returns the duration
// elapsed since midnight. The error wraps the last layout's failure.
func SinceMidnight(s string) (time.Duration, error) {
	in := strings.TrimSpace(s)
	upper := strings.ToUpper(in)

	var lastErr error
	for _, layout := range layouts {
		for _, candidate := range []string{in, upper} {
			t, err := time.Parse(layout, candidate)
			if err == nil {
				return clock.SinceMidnight(t), nil
			}
			lastErr = err
			if candidate == upper {
				break
			}
		}
	}
	return 0, fmt.Errorf("unrecognized time %q: %w", s, lastErr)
}
