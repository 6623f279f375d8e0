package shift

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration returns the whole hours between startTime and endTime ("HH:MM").
// Minutes are dropped. When the end hour is not after the start hour the shift is
// assumed to wrap past midnight, so equal hours yield 24.
func Duration(startTime, endTime string) (int, error) {
	startHour, err := Hour(startTime)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	endHour, err := Hour(endTime)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}

	if endHour > startHour {
		return endHour - startHour, nil
	}
	return (24 - startHour) + endHour, nil
}

// Hour parses the leading integer of the hour component of value.
func Hour(value string) (int, error) {
	head, _, _ := strings.Cut(value, ":")
	head = strings.TrimLeft(head, " \t\r\n")

	end := 0
	if end < len(head) && (head[end] == '-' || head[end] == '+') {
		end++
	}
	for end < len(head) && head[end] >= '0' && head[end] <= '9' {
		end++
	}

	hour, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return hour, nil
}
