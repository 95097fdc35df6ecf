package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"pickdate-cli/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// Only one dialog may be on screen at a time, across date and time services.
var (
	dialogMu   sync.Mutex
	dialogOpen bool
)

func acquireDialog() bool {
	dialogMu.Lock()
	defer dialogMu.Unlock()
	if dialogOpen {
		return false
	}
	dialogOpen = true
	return true
}

func releaseDialog() {
	dialogMu.Lock()
	dialogOpen = false
	dialogMu.Unlock()
}

// Terminal selects where dialogs read keys from and draw to.
// Zero values use the process stdin/stdout.
type Terminal struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

func (t Terminal) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.Input != nil {
		opts = append(opts, tea.WithInput(t.Input))
	}
	if t.Output != nil {
		opts = append(opts, tea.WithOutput(t.Output))
	}
	if t.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

func run(ctx context.Context, term Terminal, m tea.Model) (tea.Model, error) {
	if !acquireDialog() {
		return nil, picker.ErrDialogBusy
	}
	defer releaseDialog()

	prepareTerminal()
	final, err := tea.NewProgram(m, term.programOptions(ctx)...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return final, nil
}

// DateDialog opens an interactive date dialog in the terminal.
type DateDialog struct {
	Terminal Terminal
}

func (d *DateDialog) OpenDate(ctx context.Context, opts picker.DateOptions) (picker.DateOutcome, error) {
	final, err := run(ctx, d.Terminal, newDateModel(opts))
	if err != nil {
		return picker.DateOutcome{}, err
	}
	m, ok := final.(dateModel)
	if !ok {
		return picker.DateOutcome{}, fmt.Errorf("unexpected date dialog model %T", final)
	}
	if !m.done {
		return picker.DateOutcome{Action: picker.ActionDismissed}, nil
	}
	return m.outcome, nil
}

// TimeDialog opens an interactive time dialog in the terminal.
type TimeDialog struct {
	Terminal Terminal
}

func (d *TimeDialog) OpenTime(ctx context.Context, opts picker.TimeOptions) (picker.TimeOutcome, error) {
	final, err := run(ctx, d.Terminal, newTimeModel(opts))
	if err != nil {
		return picker.TimeOutcome{}, err
	}
	m, ok := final.(timeModel)
	if !ok {
		return picker.TimeOutcome{}, fmt.Errorf("unexpected time dialog model %T", final)
	}
	if !m.done {
		return picker.TimeOutcome{Action: picker.ActionDismissed}, nil
	}
	return m.outcome, nil
}
