package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pickdate-cli/internal/picker"

	"github.com/spf13/cobra"
)

// frame is one host render: visibility plus the props for that render.
type frame struct {
	Visible bool `json:"visible"`
	propFlags
}

type frameEvent struct {
	Frame int        `json:"frame"`
	Event string     `json:"event"`
	Date  *time.Time `json:"date,omitempty"`
	Error string     `json:"error,omitempty"`
}

func newFramesCmd(app *App) *cobra.Command {
	var df dialogFlags

	cmd := &cobra.Command{
		Use:   "frames [file|-]",
		Short: "Replay host render frames (NDJSON) and print callback events",
		Long: strings.TrimSpace(`
Reads one JSON render frame per line and renders the picker for each. A dialog
opens only on frames where visible turns true. Every callback prints one event.
Run "pickdate docs frames" for the frame format.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			fromStdin := len(args) == 0 || args[0] == "-"
			if !fromStdin {
				f, err := os.Open(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				in = f
			}

			dates, times, err := df.dialogs(cmd, app, !fromStdin)
			if err != nil {
				return writeErr(cmd, err)
			}
			return runFrames(cmd, app, in, dates, times)
		},
	}

	df.register(cmd)
	return cmd
}

func runFrames(cmd *cobra.Command, app *App, in io.Reader, dates picker.DateDialog, times picker.TimeDialog) error {
	n := 0
	var emitErr error
	emit := func(ev frameEvent) {
		ev.Frame = n
		if err := writeOut(cmd, app, ev); err != nil && emitErr == nil {
			emitErr = err
		}
	}

	cb := picker.Callbacks{
		OnConfirm: func(d time.Time) { emit(frameEvent{Event: "confirm", Date: &d}) },
		OnClear:   func() { emit(frameEvent{Event: "clear"}) },
		OnCancel:  func() { emit(frameEvent{Event: "cancel"}) },
		OnHideAfterConfirm: func(d *time.Time) {
			emit(frameEvent{Event: "hideAfterConfirm", Date: d})
		},
	}
	a, err := picker.New(dates, times, cb, picker.WithLogger(app.Logger))
	if err != nil {
		return writeErr(cmd, err)
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var fr frame
		if err := json.Unmarshal([]byte(line), &fr); err != nil {
			return writeErr(cmd, errFrame(n, err))
		}
		props, err := fr.props(app, fr.Visible)
		if err != nil {
			return writeErr(cmd, errFrame(n, err))
		}

		out, err := a.Render(cmd.Context(), props)
		if err != nil {
			var de *picker.DialogError
			if !errors.As(err, &de) {
				return writeErr(cmd, errFrame(n, err))
			}
			emit(frameEvent{Event: "error", Error: de.Error()})
		}
		if emitErr != nil {
			return emitErr
		}
		if out.Kind != picker.KindNone {
			app.Logger.Debug("frame dispatched", "frame", n, "outcome", out.Kind.String())
		}
	}
	if err := sc.Err(); err != nil {
		return writeErr(cmd, fmt.Errorf("reading frames: %w", err))
	}
	return nil
}
