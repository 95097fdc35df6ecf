package cli

import (
	"errors"
	"time"

	"pickdate-cli/internal/headless"
	"pickdate-cli/internal/picker"
	"pickdate-cli/internal/tui"

	"github.com/spf13/cobra"
)

var errNoTerminal = errors.New("no terminal for interactive dialogs (pass --answer-date/--answer-time to script them)")

// dialogFlags are shared by commands that open dialogs.
type dialogFlags struct {
	answerDates []string
	answerTimes []string
}

func (f *dialogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.answerDates, "answer-date", nil, "Scripted date dialog answer (YYYY-MM-DD|clear|dismiss|fail[:msg]); repeatable")
	cmd.Flags().StringArrayVar(&f.answerTimes, "answer-time", nil, "Scripted time dialog answer (HH:MM|clear|dismiss|fail[:msg]); repeatable")
}

func (f *dialogFlags) scripted() bool {
	return len(f.answerDates) > 0 || len(f.answerTimes) > 0
}

// dialogs returns scripted dialogs when answers were given, otherwise terminal
// dialogs drawn on stderr. stdinFree is false when stdin carries command input.
func (f *dialogFlags) dialogs(cmd *cobra.Command, app *App, stdinFree bool) (picker.DateDialog, picker.TimeDialog, error) {
	if f.scripted() {
		dates, err := headless.NewDateDialog(f.answerDates...)
		if err != nil {
			return nil, nil, err
		}
		times, err := headless.NewTimeDialog(f.answerTimes...)
		if err != nil {
			return nil, nil, err
		}
		return dates, times, nil
	}

	in := cmd.InOrStdin()
	if !stdinFree || !isTerminal(in) {
		return nil, nil, errNoTerminal
	}
	term := tui.Terminal{Input: in, Output: cmd.ErrOrStderr(), AltScreen: app.Settings.AltScreen}
	return &tui.DateDialog{Terminal: term}, &tui.TimeDialog{Terminal: term}, nil
}

// propFlags hold the render props as given on the command line or in a frame.
type propFlags struct {
	Date    string `json:"date,omitempty"`
	Mode    string `json:"mode,omitempty"`
	Display string `json:"display,omitempty"`
	Clock   string `json:"clock,omitempty"`
	Min     string `json:"min,omitempty"`
	Max     string `json:"max,omitempty"`
}

func (f *propFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Date, "date", "", "Reference date (YYYY-MM-DD, YYYY-MM-DDTHH:MM, or RFC3339)")
	cmd.Flags().StringVar(&f.Mode, "mode", "", "Picker mode (date|time|datetime)")
	cmd.Flags().StringVar(&f.Display, "display", "", "Display style (default|calendar|spinner)")
	cmd.Flags().StringVar(&f.Clock, "clock", "", "Clock format for the time dialog (24h|12h)")
	cmd.Flags().StringVar(&f.Min, "min", "", "Earliest selectable date")
	cmd.Flags().StringVar(&f.Max, "max", "", "Latest selectable date")
}

// props layers f over the app settings.
func (f propFlags) props(app *App, visible bool) (picker.Props, error) {
	mode, err := picker.ParseMode(firstNonEmpty(f.Mode, app.Settings.Mode))
	if err != nil {
		return picker.Props{}, err
	}
	display, err := picker.ParseDisplayStyle(firstNonEmpty(f.Display, app.Settings.Display))
	if err != nil {
		return picker.Props{}, err
	}
	clock, err := picker.ParseClockFormat(firstNonEmpty(f.Clock, app.Settings.Clock))
	if err != nil {
		return picker.Props{}, err
	}

	p := picker.Props{Mode: mode, Display: display, Clock: clock, Visible: visible}
	if p.ReferenceDate, err = parseDateTime(f.Date, time.Local); err != nil {
		return picker.Props{}, err
	}
	if p.MinimumDate, err = parseDateTime(f.Min, time.Local); err != nil {
		return picker.Props{}, err
	}
	if p.MaximumDate, err = parseDateTime(f.Max, time.Local); err != nil {
		return picker.Props{}, err
	}
	return p, nil
}
