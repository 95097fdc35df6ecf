package tui

import (
	"strconv"
	"strings"
	"time"
)

func daysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := daysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

func parseIntDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func fmt2(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 99 {
		n = 99
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func fmtYear(y int) string {
	if y < 0 {
		y = 0
	}
	s := strconv.Itoa(y)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func wrap(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}

// to12 converts a 0-23 hour to a 1-12 hour plus a PM flag.
func to12(h24 int) (h12 int, pm bool) {
	h24 = wrap(h24, 24)
	pm = h24 >= 12
	h12 = h24 % 12
	if h12 == 0 {
		h12 = 12
	}
	return
}

func to24(h12 int, pm bool) int {
	h := h12 % 12
	if pm {
		h += 12
	}
	return h
}

func parseDateFields(year, month, day string) (int, time.Month, int, error) {
	year = strings.TrimSpace(year)
	month = strings.TrimSpace(month)
	day = strings.TrimSpace(day)
	if year == "" || month == "" || day == "" {
		return 0, 0, 0, errMissingDate
	}
	y, err := strconv.Atoi(year)
	if err != nil || len(year) != 4 {
		return 0, 0, 0, errInvalidDate
	}
	mo, err := strconv.Atoi(month)
	if err != nil || mo < 1 || mo > 12 {
		return 0, 0, 0, errInvalidDate
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > daysInMonth(y, time.Month(mo)) {
		return 0, 0, 0, errInvalidDate
	}
	return y, time.Month(mo), d, nil
}

// parseTimeFields returns a 0-23 hour. In 12h mode hour must be 1-12.
func parseTimeFields(hour, minute string, is24 bool, pm bool) (int, int, error) {
	hour = strings.TrimSpace(hour)
	minute = strings.TrimSpace(minute)
	if hour == "" || minute == "" {
		return 0, 0, errInvalidTime
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, 0, errInvalidTime
	}
	if is24 {
		if h < 0 || h > 23 {
			return 0, 0, errInvalidTime
		}
	} else {
		if h < 1 || h > 12 {
			return 0, 0, errInvalidTime12
		}
		h = to24(h, pm)
	}
	mi, err := strconv.Atoi(minute)
	if err != nil || mi < 0 || mi > 59 {
		return 0, 0, errInvalidTime
	}
	return h, mi, nil
}

var (
	errMissingDate   = &dateTimeParseErr{msg: "missing date (year/month/day)"}
	errInvalidDate   = &dateTimeParseErr{msg: "invalid date (expected YYYY-MM-DD fields)"}
	errInvalidTime   = &dateTimeParseErr{msg: "invalid time (expected HH and MM, 24h)"}
	errInvalidTime12 = &dateTimeParseErr{msg: "invalid time (expected HH 1-12 and MM)"}
)

type dateTimeParseErr struct{ msg string }

func (e *dateTimeParseErr) Error() string { return e.msg }
