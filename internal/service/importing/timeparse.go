package importing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/xls-import-go/internal/pkg/validator"
	"github.com/xuri/excelize/v2"
)

var errInvalidDate = errors.New("unrecognised date")

var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
}

// parseDate reads a calendar date or timestamp cell. Values without a zone are UTC.
func parseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)

	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if serial < 1 {
			return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, value)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, value)
		}
		return t.UTC(), nil
	}

	if t, ok := validator.IsValidDateTime(v); ok {
		return t.UTC(), nil
	}
	if t, ok := validator.IsValidDate(v); ok {
		return t, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errInvalidDate, value)
}

// parseTimestamp reads a checkIn/checkOut cell. A bare clock or an Excel day fraction
// is placed on day.
func parseTimestamp(value string, day time.Time) (time.Time, error) {
	v := strings.TrimSpace(value)

	if fraction, ok := dayFraction(v); ok {
		return midnight(day).Add(fraction), nil
	}

	for _, layout := range clockLayouts {
		if clock, err := time.Parse(layout, v); err == nil {
			return midnight(day).Add(time.Duration(clock.Hour())*time.Hour +
				time.Duration(clock.Minute())*time.Minute +
				time.Duration(clock.Second())*time.Second), nil
		}
	}

	return parseDate(v)
}

// clockText renders an Excel day fraction such as 0.375 as "09:00". Anything else is
// returned unchanged.
func clockText(value string) string {
	fraction, ok := dayFraction(strings.TrimSpace(value))
	if !ok {
		return value
	}
	minutes := int(fraction / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func dayFraction(v string) (time.Duration, bool) {
	if !strings.Contains(v, ".") {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f >= 1 {
		return 0, false
	}
	minutes := math.Round(f * 24 * 60)
	if minutes >= 24*60 {
		minutes = 24*60 - 1
	}
	return time.Duration(minutes) * time.Minute, true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
