package common

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD                  = "2006-01-02"
	DateFormatYYYYMMDDWithTime          = "2006-01-02 15:04:05"
	DateFormatYYYYMMDDWithTimeAndOffset = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// Now is swapped in tests that need a fixed processing time.
var Now = time.Now

// ParseDate reads the date part of an upstream timestamp. Stays sends plain "2024-01-20"
// for check-in/check-out but full ISO timestamps elsewhere; only the calendar date is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidFormatDate)
	}

	if len(s) > len(DateFormatYYYYMMDD) {
		s = s[:len(DateFormatYYYYMMDD)]
	}

	t, err := time.ParseInLocation(DateFormatYYYYMMDD, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidFormatDate, s)
	}

	return t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormatYYYYMMDD)
}

// IsOlderThanDays reports whether date lies more than days before now.
func IsOlderThanDays(date, now time.Time, days int) bool {
	if date.IsZero() {
		return false
	}
	return date.Before(now.AddDate(0, 0, -days))
}
