package picker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Kind int

const (
	KindNone Kind = iota
	KindConfirmed
	KindCleared
	KindDismissed
)

func (k Kind) String() string {
	switch k {
	case KindConfirmed:
		return "confirmed"
	case KindCleared:
		return "cleared"
	case KindDismissed:
		return "cancelled"
	default:
		return "none"
	}
}

// Outcome is the classified result of one cycle. Date is set only for KindConfirmed.
type Outcome struct {
	Kind Kind
	Date time.Time
}

// Callbacks receive the result of a cycle. OnHideAfterConfirm is optional and
// receives nil after a clear.
type Callbacks struct {
	OnConfirm          func(date time.Time)
	OnClear            func()
	OnCancel           func()
	OnHideAfterConfirm func(date *time.Time)
}

type Option func(*Adapter)

func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// WithNow overrides the clock used for "today" and "current time" defaults.
func WithNow(now func() time.Time) Option {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// Adapter turns visibility edges into dialog flows and dialog results into callbacks.
type Adapter struct {
	dates DateDialog
	times TimeDialog
	cb    Callbacks
	log   *slog.Logger
	now   func() time.Time

	trigger Watcher
}

func New(dates DateDialog, times TimeDialog, cb Callbacks, opts ...Option) (*Adapter, error) {
	if dates == nil {
		return nil, errors.New("date dialog is required")
	}
	if times == nil {
		return nil, errors.New("time dialog is required")
	}
	if cb.OnConfirm == nil || cb.OnClear == nil || cb.OnCancel == nil {
		return nil, errors.New("OnConfirm, OnClear and OnCancel callbacks are required")
	}
	if cb.OnHideAfterConfirm == nil {
		cb.OnHideAfterConfirm = func(*time.Time) {}
	}
	a := &Adapter{
		dates: dates,
		times: times,
		cb:    cb,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Render applies one set of props. A dialog flow runs (and Render blocks until
// it resolves) only when props.Visible goes from false to true.
//
// A failed dialog invocation is logged as a warning and returned as a
// *DialogError; no callback fires for that cycle.
func (a *Adapter) Render(ctx context.Context, props Props) (Outcome, error) {
	props = props.WithDefaults()
	if !a.trigger.Observe(props.Visible) {
		return Outcome{}, nil
	}
	if err := props.Validate(); err != nil {
		return Outcome{}, err
	}

	log := a.log.With("cycle", uuid.NewString(), "mode", string(props.Mode))
	log.Debug("picker became visible", "display", string(props.Display), "clock", props.Clock.String())

	var (
		out Outcome
		err error
	)
	if props.Mode == ModeTime {
		out, err = a.timeFlow(ctx, props, props.ReferenceDate)
	} else {
		out, err = a.dateFlow(ctx, props)
	}
	if err != nil {
		var de *DialogError
		if errors.As(err, &de) {
			log.Warn("cannot open "+de.Dialog+" picker", "err", de.Err)
		}
		return Outcome{}, err
	}

	log.Debug("picker resolved", "outcome", out.Kind.String())
	a.dispatch(out)
	return out, nil
}

// Reset forgets the last visibility level so the next visible render opens a dialog.
func (a *Adapter) Reset() {
	a.trigger.Reset()
}

func (a *Adapter) dateFlow(ctx context.Context, props Props) (Outcome, error) {
	ref := props.ReferenceDate
	seed := ref
	if !hasReference(seed) {
		seed = a.now()
	}
	res, err := a.dates.OpenDate(ctx, DateOptions{
		Date:        seed,
		DateMillis:  seed.UnixMilli(),
		Display:     props.Display,
		MinimumDate: props.MinimumDate,
		MaximumDate: props.MaximumDate,
	})
	if err != nil {
		return Outcome{}, &DialogError{Dialog: "date", Err: err}
	}

	switch res.Action {
	case ActionSet:
		candidate := ComposeDate(res.Year, res.Month, res.Day, ref, a.now().Location())
		if props.Mode == ModeDateTime {
			// A dismissed time stage discards the picked date.
			return a.timeFlow(ctx, props, candidate)
		}
		return Outcome{Kind: KindConfirmed, Date: candidate}, nil
	case ActionCleared:
		return Outcome{Kind: KindCleared}, nil
	default:
		return Outcome{Kind: KindDismissed}, nil
	}
}

// timeFlow opens the time dialog; the calendar date of the result comes from day
// (or today when day is zero).
func (a *Adapter) timeFlow(ctx context.Context, props Props, day time.Time) (Outcome, error) {
	now := a.now()
	hour, minute := seedClock(props.ReferenceDate, now)
	res, err := a.times.OpenTime(ctx, TimeOptions{
		Hour:     hour,
		Minute:   minute,
		Is24Hour: props.Clock.Is24Hour(),
		Display:  props.Display,
	})
	if err != nil {
		return Outcome{}, &DialogError{Dialog: "time", Err: err}
	}

	switch res.Action {
	case ActionSet:
		return Outcome{Kind: KindConfirmed, Date: ComposeTime(res.Hour, res.Minute, day, now)}, nil
	case ActionCleared:
		return Outcome{Kind: KindCleared}, nil
	default:
		return Outcome{Kind: KindDismissed}, nil
	}
}

func (a *Adapter) dispatch(out Outcome) {
	switch out.Kind {
	case KindConfirmed:
		a.cb.OnConfirm(out.Date)
		date := out.Date
		a.cb.OnHideAfterConfirm(&date)
	case KindCleared:
		a.cb.OnClear()
		a.cb.OnHideAfterConfirm(nil)
	case KindDismissed:
		a.cb.OnCancel()
	}
}
