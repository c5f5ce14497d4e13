package exporter

import (
	"fmt"
	"strconv"
	"time"
)

// formatFloat1 formats a float value for CSV output with exactly 1
// decimal place, matching the precision the cleaning stage rounds to
func formatFloat1(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// formatFloat formats a full-precision float for CSV output
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatDate formats a date value for CSV output
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Optional variants render missing values as the empty cell

func formatOptFloat1(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat1(*f)
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatOptInt(i *int64) string {
	if i == nil {
		return ""
	}
	return formatInt(*i)
}

func formatOptString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatOptDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
