package tui

import (
	"strings"
	"testing"
	"time"

	"pickdate-cli/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sendDate(t *testing.T, m dateModel, msgs ...tea.Msg) (dateModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var mAny tea.Model
		mAny, cmd = m.Update(msg)
		var ok bool
		m, ok = mAny.(dateModel)
		if !ok {
			t.Fatalf("expected dateModel, got %T", mAny)
		}
	}
	return m, cmd
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func dateValue(m dateModel) string {
	return m.yearInput.Value() + "-" + m.monthInput.Value() + "-" + m.dayInput.Value()
}

func TestDateDialog_SeedsFromReference(t *testing.T) {
	ref := time.Date(2023, time.May, 10, 14, 30, 0, 0, time.UTC)
	m := newDateModel(picker.DateOptions{Date: ref, DateMillis: ref.UnixMilli()})
	if got := dateValue(m); got != "2023-05-10" {
		t.Fatalf("expected seed 2023-05-10, got %q", got)
	}
	if m.focus != dateFocusDay {
		t.Fatalf("expected day focus, got %v", m.focus)
	}

	m = newDateModel(picker.DateOptions{DateMillis: ref.UnixMilli()})
	if got := m.yearInput.Value(); got != "2023" {
		t.Fatalf("expected seed from millis, got year %q", got)
	}
}

func TestDateDialog_BumpsFields(t *testing.T) {
	m := newDateModel(picker.DateOptions{Date: time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)})

	m, _ = sendDate(t, m, keyRune('k'))
	if got := dateValue(m); got != "2024-02-01" {
		t.Fatalf("day +1: got %q", got)
	}

	m, _ = sendDate(t, m, keyRune('j'), tea.KeyMsg{Type: tea.KeyLeft}, keyRune('k'))
	if m.focus != dateFocusMonth {
		t.Fatalf("expected month focus, got %v", m.focus)
	}
	if got := dateValue(m); got != "2024-02-29" {
		t.Fatalf("month +1 should clamp day: got %q", got)
	}

	m, _ = sendDate(t, m, keyRune('h'), keyRune('k'))
	if got := dateValue(m); got != "2025-02-28" {
		t.Fatalf("year +1 should clamp leap day: got %q", got)
	}

	m, _ = sendDate(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	if got := dateValue(m); got != "2025-01-28" {
		t.Fatalf("pgup: got %q", got)
	}
	for i := 0; i < 13; i++ {
		m, _ = sendDate(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if got := dateValue(m); got != "2026-02-28" {
		t.Fatalf("13x pgdown: got %q", got)
	}
}

func TestDateDialog_SaveClearCancel(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		keys []tea.Msg
		want picker.DateOutcome
	}{
		{
			name: "enter saves",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}},
			want: picker.DateOutcome{Action: picker.ActionSet, Year: 2024, Month: time.June, Day: 15},
		},
		{
			name: "ctrl+s saves",
			keys: []tea.Msg{keyRune('j'), tea.KeyMsg{Type: tea.KeyCtrlS}},
			want: picker.DateOutcome{Action: picker.ActionSet, Year: 2024, Month: time.June, Day: 14},
		},
		{
			name: "ctrl+c clears",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlC}},
			want: picker.DateOutcome{Action: picker.ActionCleared},
		},
		{
			name: "esc dismisses",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}},
			want: picker.DateOutcome{Action: picker.ActionDismissed},
		},
		{
			name: "clear button",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}},
			want: picker.DateOutcome{Action: picker.ActionCleared},
		},
		{
			name: "cancel button via shift+tab",
			keys: []tea.Msg{
				tea.KeyMsg{Type: tea.KeyShiftTab},
				tea.KeyMsg{Type: tea.KeyShiftTab},
				tea.KeyMsg{Type: tea.KeyShiftTab},
				tea.KeyMsg{Type: tea.KeyEnter},
			},
			want: picker.DateOutcome{Action: picker.ActionDismissed},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDateModel(picker.DateOptions{Date: seed})
			m, cmd := sendDate(t, m, tt.keys...)
			if !m.done {
				t.Fatalf("expected dialog to finish")
			}
			assertQuit(t, cmd)
			if m.outcome != tt.want {
				t.Fatalf("got %#v, want %#v", m.outcome, tt.want)
			}
			if m.View() != "" {
				t.Fatalf("expected empty view after finishing")
			}
		})
	}
}

func TestDateDialog_RejectsInvalidAndOutOfBounds(t *testing.T) {
	seed := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	m := newDateModel(picker.DateOptions{Date: seed})
	m.dayInput.SetValue("31")
	m, cmd := sendDate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done || cmd != nil {
		t.Fatalf("expected June 31 to be rejected")
	}
	if m.minibuffer != errInvalidDate.Error() {
		t.Fatalf("unexpected minibuffer %q", m.minibuffer)
	}
	if !strings.Contains(m.View(), "invalid date") {
		t.Fatalf("expected error in view")
	}

	m = newDateModel(picker.DateOptions{
		Date:        seed,
		MinimumDate: time.Date(2024, time.June, 16, 12, 0, 0, 0, time.UTC),
	})
	m, _ = sendDate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatalf("expected date before minimum to be rejected")
	}
	if !strings.Contains(m.minibuffer, "on or after 2024-06-16") {
		t.Fatalf("unexpected minibuffer %q", m.minibuffer)
	}

	m, _ = sendDate(t, m, keyRune('k'), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done || m.outcome.Day != 16 {
		t.Fatalf("expected minimum day to be accepted, got %#v", m.outcome)
	}
}

func TestDateDialog_ViewByDisplayStyle(t *testing.T) {
	seed := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	for _, display := range []picker.DisplayStyle{picker.DisplayDefault, picker.DisplayCalendar} {
		out := newDateModel(picker.DateOptions{Date: seed, Display: display}).View()
		for _, want := range []string{"Pick a date", "February 2024", "Mo Tu We", "Save", "Clear", "Cancel"} {
			if !strings.Contains(out, want) {
				t.Fatalf("%s view: expected %q in:\n%s", display, want, out)
			}
		}
	}

	out := newDateModel(picker.DateOptions{Date: seed, Display: picker.DisplaySpinner}).View()
	if strings.Contains(out, "February 2024") {
		t.Fatalf("spinner view should not render a calendar:\n%s", out)
	}
	for _, want := range []string{"2023", "2025", "09", "11"} {
		if !strings.Contains(out, want) {
			t.Fatalf("spinner view: expected neighbour %q in:\n%s", want, out)
		}
	}
}

func TestDateDialog_WindowSize(t *testing.T) {
	m := newDateModel(picker.DateOptions{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	m, _ = sendDate(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.width != 40 {
		t.Fatalf("expected width 40, got %d", m.width)
	}
}
