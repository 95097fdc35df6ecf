package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"pickdate-cli/internal/picker"
)

func TestDateDialog_ResolvesAnswersInOrder(t *testing.T) {
	t.Parallel()

	d, err := NewDateDialog("2024-02-29", "clear", "dismiss", "fail:already open")
	if err != nil {
		t.Fatalf("NewDateDialog: %v", err)
	}
	ctx := context.Background()

	got, err := d.OpenDate(ctx, picker.DateOptions{DateMillis: 42})
	if err != nil {
		t.Fatalf("open 1: %v", err)
	}
	want := picker.DateOutcome{Action: picker.ActionSet, Year: 2024, Month: time.February, Day: 29}
	if got != want {
		t.Fatalf("open 1: got %#v, want %#v", got, want)
	}

	if got, _ := d.OpenDate(ctx, picker.DateOptions{}); got.Action != picker.ActionCleared {
		t.Fatalf("open 2: expected cleared, got %#v", got)
	}
	if got, _ := d.OpenDate(ctx, picker.DateOptions{}); got.Action != picker.ActionDismissed {
		t.Fatalf("open 3: expected dismissed, got %#v", got)
	}
	if _, err := d.OpenDate(ctx, picker.DateOptions{}); err == nil || err.Error() != "already open" {
		t.Fatalf("open 4: expected scripted failure, got %v", err)
	}
	if _, err := d.OpenDate(ctx, picker.DateOptions{}); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("open 5: expected ErrNoAnswer, got %v", err)
	}

	calls := d.Calls()
	if len(calls) != 5 || calls[0].DateMillis != 42 {
		t.Fatalf("unexpected recorded calls: %#v", calls)
	}
}

func TestTimeDialog_ResolvesAnswers(t *testing.T) {
	t.Parallel()

	d, err := NewTimeDialog("09:30", "cleared")
	if err != nil {
		t.Fatalf("NewTimeDialog: %v", err)
	}
	got, err := d.OpenTime(context.Background(), picker.TimeOptions{Hour: 1, Minute: 2, Is24Hour: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got != (picker.TimeOutcome{Action: picker.ActionSet, Hour: 9, Minute: 30}) {
		t.Fatalf("unexpected outcome %#v", got)
	}
	if got, _ := d.OpenTime(context.Background(), picker.TimeOptions{}); got.Action != picker.ActionCleared {
		t.Fatalf("expected cleared, got %#v", got)
	}
	if calls := d.Calls(); len(calls) != 2 || calls[0].Hour != 1 || !calls[0].Is24Hour {
		t.Fatalf("unexpected recorded calls: %#v", calls)
	}
}

func TestParseAnswer_Rejects(t *testing.T) {
	t.Parallel()

	if _, err := NewDateDialog("2024-13-01"); err == nil {
		t.Fatalf("expected invalid month to be rejected")
	}
	if _, err := NewTimeDialog("25:00"); err == nil {
		t.Fatalf("expected invalid hour to be rejected")
	}
}

func TestOpen_CancelledContextFails(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, _ := NewDateDialog("2024-01-01")
	if _, err := d.OpenDate(ctx, picker.DateOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAdapter_WithHeadlessDialogs(t *testing.T) {
	t.Parallel()

	dates, _ := NewDateDialog("2024-01-01")
	times, _ := NewTimeDialog("09:30")
	var confirmed []time.Time
	a, err := picker.New(dates, times, picker.Callbacks{
		OnConfirm: func(d time.Time) { confirmed = append(confirmed, d) },
		OnClear:   func() { t.Fatalf("unexpected clear") },
		OnCancel:  func() { t.Fatalf("unexpected cancel") },
	})
	if err != nil {
		t.Fatalf("picker.New: %v", err)
	}

	ref := time.Date(2023, time.May, 10, 14, 30, 0, 0, time.UTC)
	if _, err := a.Render(context.Background(), picker.Props{Mode: picker.ModeDateTime, ReferenceDate: ref, Visible: true}); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)
	if len(confirmed) != 1 || !confirmed[0].Equal(want) {
		t.Fatalf("expected one confirm at %v, got %v", want, confirmed)
	}
	if c := times.Calls(); len(c) != 1 || c[0].Hour != 14 || c[0].Minute != 30 {
		t.Fatalf("expected time dialog seeded at 14:30, got %#v", c)
	}
}
