package utils

import "time"

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns nil when neither fits.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return &d
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return &d
	}
	return nil
}
