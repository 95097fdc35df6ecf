package picker

import (
	"fmt"
	"strings"
	"time"
)

type Mode string

const (
	ModeDate     Mode = "date"
	ModeTime     Mode = "time"
	ModeDateTime Mode = "datetime"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDate:
		return ModeDate, nil
	case ModeTime:
		return ModeTime, nil
	case ModeDateTime, "date-time", "date+time":
		return ModeDateTime, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected date|time|datetime)", s)
	}
}

// DisplayStyle is a hint passed through to the dialog services.
type DisplayStyle string

const (
	DisplayDefault  DisplayStyle = "default"
	DisplayCalendar DisplayStyle = "calendar"
	DisplaySpinner  DisplayStyle = "spinner"
)

func ParseDisplayStyle(s string) (DisplayStyle, error) {
	switch DisplayStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", DisplayDefault:
		return DisplayDefault, nil
	case DisplayCalendar:
		return DisplayCalendar, nil
	case DisplaySpinner:
		return DisplaySpinner, nil
	default:
		return "", fmt.Errorf("invalid display style %q (expected calendar|spinner|default)", s)
	}
}

// ClockFormat selects 12h or 24h time entry. The zero value means 24h.
type ClockFormat int

const (
	ClockDefault ClockFormat = iota
	Clock24h
	Clock12h
)

func (c ClockFormat) Is24Hour() bool { return c != Clock12h }

func (c ClockFormat) String() string {
	if c == Clock12h {
		return "12h"
	}
	return "24h"
}

func ParseClockFormat(s string) (ClockFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "24h", "24", "true":
		return Clock24h, nil
	case "12h", "12", "false":
		return Clock12h, nil
	default:
		return ClockDefault, fmt.Errorf("invalid clock format %q (expected 12h|24h)", s)
	}
}

// Props is the configuration handed to the adapter on every render.
//
// ReferenceDate seeds the dialogs; the zero time means "absent". MinimumDate and
// MaximumDate are forwarded to the date dialog as-is.
type Props struct {
	ReferenceDate time.Time
	Mode          Mode
	Display       DisplayStyle
	Clock         ClockFormat
	Visible       bool

	MinimumDate time.Time
	MaximumDate time.Time
}

// WithDefaults returns a copy of p with empty fields replaced by their defaults.
func (p Props) WithDefaults() Props {
	if p.Mode == "" {
		p.Mode = ModeDate
	}
	if p.Display == "" {
		p.Display = DisplayDefault
	}
	if p.Clock == ClockDefault {
		p.Clock = Clock24h
	}
	return p
}

// Validate reports props that cannot be dispatched.
func (p Props) Validate() error {
	switch p.Mode {
	case "", ModeDate, ModeTime, ModeDateTime:
	default:
		return fmt.Errorf("invalid mode %q", p.Mode)
	}
	switch p.Display {
	case "", DisplayDefault, DisplayCalendar, DisplaySpinner:
	default:
		return fmt.Errorf("invalid display style %q", p.Display)
	}
	if hasReference(p.MinimumDate) && hasReference(p.MaximumDate) && p.MaximumDate.Before(p.MinimumDate) {
		return fmt.Errorf("maximum date %s is before minimum date %s", p.MaximumDate.Format(time.RFC3339), p.MinimumDate.Format(time.RFC3339))
	}
	return nil
}

func hasReference(t time.Time) bool {
	return !t.IsZero()
}
