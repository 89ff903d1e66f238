package attendance

import (
	"strconv"
	"strings"
)

// ParseTimeToMinutes converts an "HH:MM" wall clock string into minutes
// since midnight. A nil or empty string yields 0.
//
// The range is not checked, so "25:00" is 1500. A component that is not an
// integer, or a value without a ':' separator, yields 0 for the whole value.
// Anything after the minutes component is ignored.
func ParseTimeToMinutes(t *string) int {
	if t == nil {
		return 0
	}
	value := strings.TrimSpace(*t)
	if value == "" {
		return 0
	}

	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}
