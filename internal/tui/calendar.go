package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// civil drops the time of day, keeping the calendar date as seen in t's location.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func inBounds(day time.Time, min, max time.Time) bool {
	day = civil(day)
	if !min.IsZero() && day.Before(civil(min)) {
		return false
	}
	if !max.IsZero() && day.After(civil(max)) {
		return false
	}
	return true
}

// renderCalendar renders a Monday-first month grid with the selected day highlighted
// and days outside [min, max] muted.
func renderCalendar(y int, mo time.Month, selected int, min, max time.Time) string {
	first := time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	selStyle := lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorAccent).Bold(true)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(first.Format("January 2006")),
		styleMuted().Render("Mo Tu We Th Fr Sa Su"),
	}

	offset := (int(first.Weekday()) + 6) % 7
	cells := make([]string, 0, 7)
	for i := 0; i < offset; i++ {
		cells = append(cells, "  ")
	}
	n := daysInMonth(y, mo)
	for day := 1; day <= n; day++ {
		cell := fmt.Sprintf("%2d", day)
		switch {
		case day == selected:
			cell = selStyle.Render(cell)
		case !inBounds(time.Date(y, mo, day, 0, 0, 0, 0, time.UTC), min, max):
			cell = styleMuted().Render(cell)
		}
		cells = append(cells, cell)
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// renderSpinnerColumn renders prev/current/next stacked, like a wheel picker.
func renderSpinnerColumn(prev, cur, next string, active bool) string {
	w := len(cur)
	return lipgloss.JoinVertical(lipgloss.Center,
		styleMuted().Render(" "+padLeft(prev, w)+" "),
		renderPill(active, cur),
		styleMuted().Render(" "+padLeft(next, w)+" "),
	)
}
