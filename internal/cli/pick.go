package cli

import (
	"errors"
	"time"

	"pickdate-cli/internal/picker"

	"github.com/spf13/cobra"
)

type dateTimeView struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type pickResult struct {
	Action   string        `json:"action"`
	Date     *time.Time    `json:"date,omitempty"`
	DateTime *dateTimeView `json:"dateTime,omitempty"`
}

func confirmedResult(d time.Time) pickResult {
	return pickResult{
		Action:   picker.KindConfirmed.String(),
		Date:     &d,
		DateTime: &dateTimeView{Date: d.Format("2006-01-02"), Time: d.Format("15:04")},
	}
}

func newPickCmd(app *App) *cobra.Command {
	var pf propFlags
	var df dialogFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the picker once and print the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := pf.props(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			dates, times, err := df.dialogs(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}

			var res pickResult
			cb := picker.Callbacks{
				OnConfirm: func(d time.Time) { res = confirmedResult(d) },
				OnClear:   func() { res = pickResult{Action: picker.KindCleared.String()} },
				OnCancel:  func() { res = pickResult{Action: picker.KindDismissed.String()} },
				OnHideAfterConfirm: func(d *time.Time) {
					app.Logger.Debug("picker hidden", "hasDate", d != nil)
				},
			}
			a, err := picker.New(dates, times, cb, picker.WithLogger(app.Logger))
			if err != nil {
				return writeErr(cmd, err)
			}

			out, err := a.Render(cmd.Context(), props)
			if err != nil {
				var de *picker.DialogError
				if errors.As(err, &de) {
					// Already logged by the adapter.
					return err
				}
				return writeErr(cmd, err)
			}
			app.Logger.Info("pick finished", "outcome", out.Kind.String())
			return writeOut(cmd, app, res)
		},
	}

	pf.register(cmd)
	df.register(cmd)
	return cmd
}
