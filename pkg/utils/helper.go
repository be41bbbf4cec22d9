package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseNonNegativeInt is ParseInt for parameters where zero is meaningful.
// ok is false when value is set but is not a non-negative integer.
func ParseNonNegativeInt(value string, defaultValue int) (int, bool) {
	if value == "" {
		return defaultValue, true
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0, false
	}

	return result, true
}
