package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pickdate-cli/internal/format"
	"pickdate-cli/internal/logging"
	"pickdate-cli/internal/store"
	"pickdate-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
	LogLevel   string
	LogFile    string

	// Settings are the effective defaults (env > config.json > built-in).
	Settings store.Settings
	Logger   *slog.Logger

	level    slog.LevelVar
	logClose io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pickdate",
		Short:        "Terminal date/time picker with scriptable output",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively, seeded with a reference
  pickdate pick --date 2024-05-10T14:30

  # Date, then time, on a 12-hour clock
  pickdate pick --mode datetime --clock 12h

  # Scripted (no terminal needed)
  pickdate pick --mode datetime --answer-date 2024-05-11 --answer-time 09:15

  # Shortcut for: pickdate pick --date 2024-05-10
  pickdate 2024-05-10
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|edn; default from config)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Also append logs to this file")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newFramesCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return writeErr(cmd, err)
	}
	env, err := store.LoadEnv()
	if err != nil {
		return writeErr(cmd, err)
	}
	app.Settings = store.EffectiveSettings(cfg, env)

	if app.Format == "" {
		app.Format = app.Settings.Format
	}
	level, err := logging.ParseLevel(firstNonEmpty(app.LogLevel, app.Settings.LogLevel))
	if err != nil {
		return writeErr(cmd, err)
	}
	app.level.Set(level)

	path := firstNonEmpty(app.LogFile, app.Settings.LogFile)
	if path == "" {
		app.Logger = logging.New(cmd.ErrOrStderr(), &app.level)
		app.logClose = nil
	} else {
		app.Logger, app.logClose, err = logging.Open(path, &app.level)
		if err != nil {
			return writeErr(cmd, err)
		}
	}

	tui.SetTheme(app.Settings.Theme)
	app.Logger.Debug("settings resolved", "mode", app.Settings.Mode, "display", app.Settings.Display, "clock", app.Settings.Clock, "format", app.Format)
	return nil
}

func (app *App) teardown() error {
	if app.logClose == nil {
		return nil
	}
	err := app.logClose.Close()
	app.logClose = nil
	return err
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isTerminalFd(f.Fd())
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
