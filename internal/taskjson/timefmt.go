package taskjson

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamps are written as YYYY-MM-DDTHH:MM:SS.mmm in the local time
// zone with no zone suffix. Earlier builds wrote UTC, which confused
// users comparing file contents against their clock; local time is the
// documented contract now.
const (
	timeLayout   = "2006-01-02T15:04:05"
	timeLayoutMS = "2006-01-02T15:04:05.000"
)

func formatTime(t time.Time) string {
	return t.Format(timeLayoutMS)
}

// parseTime reads a timestamp back in the local zone. The fractional
// part is optional and read as up to three digits of milliseconds.
func parseTime(s string) (time.Time, error) {
	base := s
	var msPart string
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		base = s[:dot]
		msPart = s[dot+1:]
	}

	t, err := time.ParseInLocation(timeLayout, base, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q: %v", ErrParse, s, err)
	}

	if msPart != "" {
		if len(msPart) > 3 {
			msPart = msPart[:3]
		}
		ms, err := strconv.Atoi(msPart)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: bad timestamp %q: %v", ErrParse, s, err)
		}
		t = t.Add(time.Duration(ms) * time.Millisecond)
	}

	return t, nil
}
