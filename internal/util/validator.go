package util

import (
	"fmt"
	"time"
)

// ValidateAmount checks a monetary amount: non-negative and below a sanity cap.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative, got %f", amount)
	}
	if amount >= 10000000 {
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}

// ParseDate accepts the datetime formats the forms submit and the API accepts.
// An empty string yields the fallback.
func ParseDate(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00+03:00
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02T15:04",    // datetime-local widget
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC3339", s)
}

// OneOf reports whether v is one of the allowed choices.
func OneOf(v string, choices []string) bool {
	for _, c := range choices {
		if v == c {
			return true
		}
	}
	return false
}
