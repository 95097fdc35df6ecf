package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestTwelveHourConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		h24  int
		h12  int
		pm   bool
		back int
	}{
		{0, 12, false, 0},
		{1, 1, false, 1},
		{11, 11, false, 11},
		{12, 12, true, 12},
		{13, 1, true, 13},
		{23, 11, true, 23},
		{24, 12, false, 0},
		{-1, 11, true, 23},
	}
	for _, tt := range tests {
		h12, pm := to12(tt.h24)
		if h12 != tt.h12 || pm != tt.pm {
			t.Fatalf("to12(%d) = %d,%v; want %d,%v", tt.h24, h12, pm, tt.h12, tt.pm)
		}
		if got := to24(h12, pm); got != tt.back {
			t.Fatalf("to24(%d,%v) = %d; want %d", h12, pm, got, tt.back)
		}
	}
}

func TestParseDateFields(t *testing.T) {
	t.Parallel()

	y, m, d, err := parseDateFields("2024", "02", "29")
	if err != nil || y != 2024 || m != time.February || d != 29 {
		t.Fatalf("unexpected parse: %d %v %d %v", y, m, d, err)
	}

	bad := [][3]string{
		{"", "01", "01"},
		{"24", "01", "01"},
		{"2023", "02", "29"},
		{"2024", "13", "01"},
		{"2024", "xx", "01"},
	}
	for _, b := range bad {
		if _, _, _, err := parseDateFields(b[0], b[1], b[2]); err == nil {
			t.Fatalf("expected error for %v", b)
		}
	}
}

func TestParseTimeFields(t *testing.T) {
	t.Parallel()

	if h, m, err := parseTimeFields("23", "59", true, false); err != nil || h != 23 || m != 59 {
		t.Fatalf("24h: %d:%d %v", h, m, err)
	}
	if h, _, err := parseTimeFields("12", "00", false, true); err != nil || h != 12 {
		t.Fatalf("12 PM: %d %v", h, err)
	}
	if _, _, err := parseTimeFields("24", "00", true, false); err == nil {
		t.Fatalf("expected 24 to be rejected")
	}
	if _, _, err := parseTimeFields("0", "00", false, false); err == nil {
		t.Fatalf("expected 0 to be rejected in 12h mode")
	}
	if _, _, err := parseTimeFields("10", "60", true, false); err == nil {
		t.Fatalf("expected minute 60 to be rejected")
	}
}

func TestClampDay(t *testing.T) {
	t.Parallel()

	if got := clampDay(2023, time.February, 31); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := clampDay(2024, time.February, 31); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := clampDay(2024, time.March, 0); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestRenderCalendar(t *testing.T) {
	t.Parallel()

	out := renderCalendar(2024, time.February, 10, time.Time{}, time.Time{})
	if !strings.Contains(out, "February 2024") || !strings.Contains(out, "29") || strings.Contains(out, "30") {
		t.Fatalf("unexpected February 2024 grid:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	// Feb 1 2024 is a Thursday: three blank cells precede it.
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", 10)+"1 ") {
		t.Fatalf("expected first week to start on Thursday, got %q", lines[2])
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	min := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	if inBounds(day(9), min, max) || !inBounds(day(10), min, max) || !inBounds(day(20), min, max) || inBounds(day(21), min, max) {
		t.Fatalf("bounds should compare calendar days")
	}
	if !inBounds(day(1), time.Time{}, time.Time{}) {
		t.Fatalf("no bounds should accept any day")
	}
}

func TestRenderModalBox_UsesLightBackground_WhenThemeForcedLight(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
	})

	oldTheme := os.Getenv("PICKDATE_TUI_THEME")
	t.Cleanup(func() { _ = os.Setenv("PICKDATE_TUI_THEME", oldTheme) })
	_ = os.Setenv("PICKDATE_TUI_THEME", "light")

	applyThemePreference()
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected HasDarkBackground=false after forcing light theme")
	}

	out := renderModalBox(80, "Title", "Body")
	// colorSurfaceBg is ac("255","235"), so the light bg should appear in the ANSI output.
	if !strings.Contains(out, "48;5;255") {
		t.Fatalf("expected modal to include light background (48;5;255); got: %q", out)
	}
}

func TestRenderModalBox_TruncatesLongTitle(t *testing.T) {
	out := renderModalBox(0, strings.Repeat("x", 200), "Body")
	if strings.Contains(out, strings.Repeat("x", 61)) {
		t.Fatalf("expected title to be truncated to the body width")
	}
}
