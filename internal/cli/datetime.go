package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[ T](\d{2}:\d{2})(:\d{2})?$`)
)

// parseDateTime parses:
// - "" (absent: zero time)
// - YYYY-MM-DD (midnight in loc)
// - YYYY-MM-DD HH:MM[:SS] or YYYY-MM-DDTHH:MM[:SS] (wall clock in loc)
// - RFC3339 / RFC3339Nano (kept in its own offset)
func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}

	if reDateOnly.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}

	if m := reDateTime.FindStringSubmatch(s); m != nil {
		layout := "2006-01-02 15:04"
		value := m[1] + " " + m[2]
		if m[3] != "" {
			layout += ":05"
			value += m[3]
		}
		t, err := time.ParseInLocation(layout, value, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid datetime %q: %w", s, err)
		}
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
}

// LooksLikeDate reports whether s is a date argument for the root shortcut.
func LooksLikeDate(s string) bool {
	s = strings.TrimSpace(s)
	if !reDateOnly.MatchString(s) && !reDateTime.MatchString(s) {
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			return false
		}
	}
	return true
}
