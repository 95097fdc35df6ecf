// Package headless provides dialog services that resolve from pre-recorded answers
// instead of user input. It backs scripted CLI runs and tests.
//
// Date answers: YYYY-MM-DD | clear | dismiss | fail[:message]
// Time answers: HH:MM | clear | dismiss | fail[:message]
package headless

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pickdate-cli/internal/picker"
)

// ErrNoAnswer is returned when a dialog opens and no scripted answer is left.
var ErrNoAnswer = errors.New("no scripted answer left")

type answer struct {
	action picker.Action
	t      time.Time
	err    error
}

func parseAnswer(s string, layout string) (answer, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "clear", "cleared":
		return answer{action: picker.ActionCleared}, nil
	case "dismiss", "dismissed", "cancel":
		return answer{action: picker.ActionDismissed}, nil
	case "fail":
		return answer{err: errors.New("scripted failure")}, nil
	}
	if msg, ok := strings.CutPrefix(s, "fail:"); ok {
		return answer{err: errors.New(strings.TrimSpace(msg))}, nil
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return answer{}, fmt.Errorf("invalid answer %q: %w", s, err)
	}
	return answer{action: picker.ActionSet, t: t}, nil
}

type queue struct {
	mu      sync.Mutex
	answers []answer
}

func (q *queue) next() (answer, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.answers) == 0 {
		return answer{}, ErrNoAnswer
	}
	a := q.answers[0]
	q.answers = q.answers[1:]
	return a, nil
}

func (q *queue) push(a answer) {
	q.mu.Lock()
	q.answers = append(q.answers, a)
	q.mu.Unlock()
}

// DateDialog resolves each OpenDate with the next scripted date answer.
type DateDialog struct {
	q queue

	mu    sync.Mutex
	calls []picker.DateOptions
}

func NewDateDialog(answers ...string) (*DateDialog, error) {
	d := &DateDialog{}
	for _, s := range answers {
		if err := d.Push(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Push appends one answer to the queue.
func (d *DateDialog) Push(s string) error {
	a, err := parseAnswer(s, "2006-01-02")
	if err != nil {
		return err
	}
	d.q.push(a)
	return nil
}

func (d *DateDialog) OpenDate(ctx context.Context, opts picker.DateOptions) (picker.DateOutcome, error) {
	if err := ctx.Err(); err != nil {
		return picker.DateOutcome{}, err
	}
	d.mu.Lock()
	d.calls = append(d.calls, opts)
	d.mu.Unlock()

	a, err := d.q.next()
	if err != nil {
		return picker.DateOutcome{}, err
	}
	if a.err != nil {
		return picker.DateOutcome{}, a.err
	}
	out := picker.DateOutcome{Action: a.action}
	if a.action == picker.ActionSet {
		out.Year, out.Month, out.Day = a.t.Date()
	}
	return out, nil
}

// Calls returns the options of every OpenDate so far.
func (d *DateDialog) Calls() []picker.DateOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]picker.DateOptions(nil), d.calls...)
}

// TimeDialog resolves each OpenTime with the next scripted time answer.
type TimeDialog struct {
	q queue

	mu    sync.Mutex
	calls []picker.TimeOptions
}

func NewTimeDialog(answers ...string) (*TimeDialog, error) {
	d := &TimeDialog{}
	for _, s := range answers {
		if err := d.Push(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *TimeDialog) Push(s string) error {
	a, err := parseAnswer(s, "15:04")
	if err != nil {
		return err
	}
	d.q.push(a)
	return nil
}

func (d *TimeDialog) OpenTime(ctx context.Context, opts picker.TimeOptions) (picker.TimeOutcome, error) {
	if err := ctx.Err(); err != nil {
		return picker.TimeOutcome{}, err
	}
	d.mu.Lock()
	d.calls = append(d.calls, opts)
	d.mu.Unlock()

	a, err := d.q.next()
	if err != nil {
		return picker.TimeOutcome{}, err
	}
	if a.err != nil {
		return picker.TimeOutcome{}, a.err
	}
	out := picker.TimeOutcome{Action: a.action}
	if a.action == picker.ActionSet {
		out.Hour, out.Minute = a.t.Hour(), a.t.Minute()
	}
	return out, nil
}

func (d *TimeDialog) Calls() []picker.TimeOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]picker.TimeOptions(nil), d.calls...)
}
