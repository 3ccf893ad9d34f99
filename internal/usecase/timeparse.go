package usecase

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Month-style layouts the model is taught to emit. Single digit months and days are accepted.
var preferredDateLayouts = []string{"1/2/2006", "1-2-2006"}

// Approximate lengths in days. Months use the calendar average.
const (
	daysPerDay     = 1.0
	daysPerWeek    = 7.0
	daysPerMonth   = 30.437
	daysPerQuarter = 91.25
	daysPerHalf    = 182.5
	daysPerYear    = 365.0
)

// parseLiteralDate parses a date string from the model answer. Timestamps without a
// zone are taken as UTC, zoned ones are converted to UTC.
func parseLiteralDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range preferredDateLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return parsed.UTC(), true
		}
	}

	// dateparse has panicked on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			t, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

// unitDays maps a filter_value to its length in days by substring, first match wins.
func unitDays(value string) (float64, bool) {
	switch {
	case strings.Contains(value, "day"):
		return daysPerDay, true
	case strings.Contains(value, "week"):
		return daysPerWeek, true
	case strings.Contains(value, "month"):
		return daysPerMonth, true
	case strings.Contains(value, "quarter"):
		return daysPerQuarter, true
	case strings.Contains(value, "half"):
		return daysPerHalf, true
	case strings.Contains(value, "year"):
		return daysPerYear, true
	}
	return 0, false
}

// maxOffsetDays bounds relative offsets to roughly 2.7 million years.
const maxOffsetDays = 999999999

// relativeDays converts filter_value scaled by multiplier into a number of days.
func relativeDays(value string, multiplier float64) (float64, bool) {
	unit, ok := unitDays(value)
	if !ok {
		return 0, false
	}
	days := unit * multiplier
	if math.IsNaN(days) || math.Abs(days) > maxOffsetDays {
		return 0, false
	}
	return days, true
}

// daysBefore steps back whole days by calendar and the fractional rest by duration,
// so offsets beyond the time.Duration range still resolve. t should be UTC.
func daysBefore(t time.Time, days float64) time.Time {
	whole := math.Trunc(days)
	rest := time.Duration((days - whole) * float64(24*time.Hour))
	return t.AddDate(0, 0, -int(whole)).Add(-rest)
}
