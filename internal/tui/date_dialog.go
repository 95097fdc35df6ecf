package tui

import (
	"fmt"
	"strings"
	"time"

	"pickdate-cli/internal/picker"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dateFocus int

const (
	dateFocusYear dateFocus = iota
	dateFocusMonth
	dateFocusDay
	dateFocusSave
	dateFocusClear
	dateFocusCancel
)

const dateFocusCount = 6

func newFieldInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = limit + 2

	st := lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorInputBg)
	in.Prompt = ""
	in.TextStyle = st
	in.PromptStyle = st
	in.PlaceholderStyle = styleMuted().Background(colorInputBg)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorAccent)
	return in
}

// dateModel is a single-shot date dialog: it quits once the user saves, clears, or cancels.
type dateModel struct {
	opts  picker.DateOptions
	width int
	focus dateFocus

	yearInput  textinput.Model
	monthInput textinput.Model
	dayInput   textinput.Model

	minibuffer string
	outcome    picker.DateOutcome
	done       bool
}

func newDateModel(opts picker.DateOptions) dateModel {
	seed := opts.Date
	if seed.IsZero() && opts.DateMillis != 0 {
		seed = time.UnixMilli(opts.DateMillis)
	}
	if seed.IsZero() {
		seed = time.Now()
	}

	m := dateModel{opts: opts}
	m.yearInput = newFieldInput("YYYY", 4)
	m.monthInput = newFieldInput("MM", 2)
	m.dayInput = newFieldInput("DD", 2)
	m.setDate(seed.Year(), seed.Month(), seed.Day())

	// Focus day by default.
	m.focus = dateFocusDay
	m.applyFocus()
	return m
}

func (m *dateModel) setDate(y int, mo time.Month, d int) {
	m.yearInput.SetValue(fmtYear(y))
	m.monthInput.SetValue(fmt2(int(mo)))
	m.dayInput.SetValue(fmt2(d))
}

func (m *dateModel) currentDatePartsOrSeed() (y int, mo time.Month, d int) {
	seed := m.opts.Date
	if seed.IsZero() {
		seed = time.Now()
	}
	y = parseIntDefault(m.yearInput.Value(), seed.Year())
	moi := parseIntDefault(m.monthInput.Value(), int(seed.Month()))
	if moi < 1 {
		moi = 1
	}
	if moi > 12 {
		moi = 12
	}
	mo = time.Month(moi)
	d = clampDay(y, mo, parseIntDefault(m.dayInput.Value(), seed.Day()))
	return
}

func (m *dateModel) applyFocus() {
	m.yearInput.Blur()
	m.monthInput.Blur()
	m.dayInput.Blur()
	switch m.focus {
	case dateFocusYear:
		m.yearInput.Focus()
	case dateFocusMonth:
		m.monthInput.Focus()
	case dateFocusDay:
		m.dayInput.Focus()
	}
}

func (m *dateModel) bump(delta int) bool {
	y, mo, d := m.currentDatePartsOrSeed()
	switch m.focus {
	case dateFocusYear:
		y += delta
		m.setDate(y, mo, clampDay(y, mo, d))
	case dateFocusMonth:
		m.bumpMonth(delta)
	case dateFocusDay:
		next := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, delta)
		m.setDate(next.Date())
	default:
		return false
	}
	return true
}

func (m *dateModel) bumpMonth(delta int) {
	y, mo, d := m.currentDatePartsOrSeed()
	n := int(mo) - 1 + delta
	y += n / 12
	n %= 12
	if n < 0 {
		n += 12
		y--
	}
	mo = time.Month(n + 1)
	m.setDate(y, mo, clampDay(y, mo, d))
}

func (m dateModel) finish(out picker.DateOutcome) (tea.Model, tea.Cmd) {
	m.outcome = out
	m.done = true
	m.minibuffer = ""
	return m, tea.Quit
}

func (m dateModel) save() (tea.Model, tea.Cmd) {
	y, mo, d, err := parseDateFields(m.yearInput.Value(), m.monthInput.Value(), m.dayInput.Value())
	if err != nil {
		m.minibuffer = err.Error()
		return m, nil
	}
	if !inBounds(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC), m.opts.MinimumDate, m.opts.MaximumDate) {
		m.minibuffer = boundsMessage(m.opts.MinimumDate, m.opts.MaximumDate)
		return m, nil
	}
	return m.finish(picker.DateOutcome{Action: picker.ActionSet, Year: y, Month: mo, Day: d})
}

func boundsMessage(min, max time.Time) string {
	switch {
	case !min.IsZero() && !max.IsZero():
		return fmt.Sprintf("date must be between %s and %s", min.Format("2006-01-02"), max.Format("2006-01-02"))
	case !min.IsZero():
		return "date must be on or after " + min.Format("2006-01-02")
	default:
		return "date must be on or before " + max.Format("2006-01-02")
	}
}

func (m dateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m.forward(msg)
}

func (m dateModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focus = dateFocus(wrap(int(m.focus)+1, dateFocusCount))
		m.applyFocus()
		return m, nil
	case "shift+tab", "backtab":
		m.focus = dateFocus(wrap(int(m.focus)-1, dateFocusCount))
		m.applyFocus()
		return m, nil
	case "left", "h":
		if m.focus <= dateFocusDay {
			m.focus = dateFocus(wrap(int(m.focus)-1, 3))
			m.applyFocus()
			return m, nil
		}
	case "right", "l":
		if m.focus <= dateFocusDay {
			m.focus = dateFocus(wrap(int(m.focus)+1, 3))
			m.applyFocus()
			return m, nil
		}
	case "up", "k", "ctrl+p":
		if m.bump(+1) {
			m.minibuffer = ""
			return m, nil
		}
	case "down", "j", "ctrl+n":
		if m.bump(-1) {
			m.minibuffer = ""
			return m, nil
		}
	case "pgup":
		m.bumpMonth(-1)
		return m, nil
	case "pgdown":
		m.bumpMonth(+1)
		return m, nil
	case "t":
		now := time.Now()
		m.setDate(now.Year(), now.Month(), now.Day())
		return m, nil
	case "ctrl+c":
		return m.finish(picker.DateOutcome{Action: picker.ActionCleared})
	case "esc", "ctrl+g":
		return m.finish(picker.DateOutcome{Action: picker.ActionDismissed})
	case "enter", "ctrl+s":
		switch m.focus {
		case dateFocusClear:
			return m.finish(picker.DateOutcome{Action: picker.ActionCleared})
		case dateFocusCancel:
			return m.finish(picker.DateOutcome{Action: picker.ActionDismissed})
		default:
			return m.save()
		}
	}
	return m.forward(msg)
}

func (m dateModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case dateFocusYear:
		m.yearInput, cmd = m.yearInput.Update(msg)
	case dateFocusMonth:
		m.monthInput, cmd = m.monthInput.Update(msg)
	case dateFocusDay:
		m.dayInput, cmd = m.dayInput.Update(msg)
	}
	return m, cmd
}

func (m dateModel) View() string {
	if m.done {
		return ""
	}
	bodyW := modalBodyWidth(m.width)
	yv := padLeft(strings.TrimSpace(m.yearInput.Value()), 4)
	mv := padLeft(strings.TrimSpace(m.monthInput.Value()), 2)
	dv := padLeft(strings.TrimSpace(m.dayInput.Value()), 2)

	var fields string
	if m.opts.Display == picker.DisplaySpinner {
		y, mo, d := m.currentDatePartsOrSeed()
		prev := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
		fields = lipgloss.JoinHorizontal(lipgloss.Center,
			renderSpinnerColumn(fmtYear(y-1), yv, fmtYear(y+1), m.focus == dateFocusYear), " ",
			renderSpinnerColumn(fmt2(wrap(int(mo)-2, 12)+1), mv, fmt2(wrap(int(mo), 12)+1), m.focus == dateFocusMonth), " ",
			renderSpinnerColumn(fmt2(prev.AddDate(0, 0, -1).Day()), dv, fmt2(prev.AddDate(0, 0, 1).Day()), m.focus == dateFocusDay),
		)
	} else {
		fields = lipgloss.JoinHorizontal(lipgloss.Left,
			renderPill(m.focus == dateFocusYear, yv), "-",
			renderPill(m.focus == dateFocusMonth, mv), "-",
			renderPill(m.focus == dateFocusDay, dv),
		)
	}

	parts := []string{styleMuted().Width(bodyW).Render("Date"), fields}
	if m.opts.Display != picker.DisplaySpinner {
		y, mo, d := m.currentDatePartsOrSeed()
		parts = append(parts, "", renderCalendar(y, mo, d, m.opts.MinimumDate, m.opts.MaximumDate))
	}
	parts = append(parts,
		"",
		renderButtons(m.focus == dateFocusSave, m.focus == dateFocusClear, m.focus == dateFocusCancel),
		"",
	)
	if mb := renderMinibuffer(m.width, m.minibuffer); mb != "" {
		parts = append(parts, mb, "")
	}
	parts = append(parts, styleMuted().Width(bodyW).Render("tab: focus  h/l: prev/next  j/k or ↓/↑: -/+  pgup/pgdn: month  t: today  enter/ctrl+s: save  ctrl+c: clear  esc/ctrl+g: cancel"))

	return renderModalBox(m.width, "Pick a date", strings.Join(parts, "\n"))
}
