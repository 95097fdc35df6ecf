package picker

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Action is the tag a dialog service resolves with.
type Action string

const (
	ActionSet       Action = "set"
	ActionCleared   Action = "cleared"
	ActionDismissed Action = "dismissed"
)

type DateOptions struct {
	// Date is the reference timestamp; DateMillis is the same instant in epoch milliseconds.
	Date       time.Time
	DateMillis int64
	Display    DisplayStyle

	MinimumDate time.Time
	MaximumDate time.Time
}

type DateOutcome struct {
	Action Action
	Year   int
	Month  time.Month
	Day    int
}

type TimeOptions struct {
	Hour     int
	Minute   int
	Is24Hour bool
	Display  DisplayStyle
}

type TimeOutcome struct {
	Action Action
	Hour   int
	Minute int
}

// DateDialog presents a date picker and blocks until the user resolves it.
type DateDialog interface {
	OpenDate(ctx context.Context, opts DateOptions) (DateOutcome, error)
}

// TimeDialog presents a time picker and blocks until the user resolves it.
type TimeDialog interface {
	OpenTime(ctx context.Context, opts TimeOptions) (TimeOutcome, error)
}

// ErrDialogBusy is returned by dialog services when another dialog is already open.
var ErrDialogBusy = errors.New("another dialog is already open")

// DialogError is a failed dialog invocation. No callback fires for a cycle that
// ends with a DialogError.
type DialogError struct {
	Dialog string // "date" or "time"
	Err    error
}

func (e *DialogError) Error() string {
	return fmt.Sprintf("cannot open %s picker: %v", e.Dialog, e.Err)
}

func (e *DialogError) Unwrap() error { return e.Err }
