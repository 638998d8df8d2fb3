package cvf

import (
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatDate converts a partial ISO date (YYYY-MM or YYYY-MM-DD) into
// "Mon YYYY". Any other shape, including a bare year or free text, is
// returned unchanged. The function is total and never fails.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "-")
	if len(parts) < 2 {
		return raw
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return raw
	}
	return monthNames[month-1] + " " + parts[0]
}

// FormatDateRange combines a start/end date pair into a display range.
// An open end renders as "Present"; a missing start renders as "Until".
func FormatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return FormatDate(start) + " - Present"
	case start == "":
		return "Until " + FormatDate(end)
	default:
		return FormatDate(start) + " - " + FormatDate(end)
	}
}
