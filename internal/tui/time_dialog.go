package tui

import (
	"strings"

	"pickdate-cli/internal/picker"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type timeFocus int

const (
	timeFocusHour timeFocus = iota
	timeFocusMinute
	timeFocusMeridiem
	timeFocusSave
	timeFocusClear
	timeFocusCancel
)

// timeModel is a single-shot time dialog. In 12h mode the hour field holds 1-12
// and pm carries the meridiem; outcomes are always reported as 0-23.
type timeModel struct {
	opts  picker.TimeOptions
	width int
	focus timeFocus

	hourInput   textinput.Model
	minuteInput textinput.Model
	pm          bool

	minibuffer string
	outcome    picker.TimeOutcome
	done       bool
}

func newTimeModel(opts picker.TimeOptions) timeModel {
	m := timeModel{opts: opts}
	m.hourInput = newFieldInput("HH", 2)
	m.minuteInput = newFieldInput("MM", 2)
	m.setTime(opts.Hour, opts.Minute)
	m.focus = timeFocusHour
	m.applyFocus()
	return m
}

func (m *timeModel) setTime(h24, mi int) {
	h24 = wrap(h24, 24)
	mi = wrap(mi, 60)
	if m.opts.Is24Hour {
		m.hourInput.SetValue(fmt2(h24))
	} else {
		h12, pm := to12(h24)
		m.hourInput.SetValue(fmt2(h12))
		m.pm = pm
	}
	m.minuteInput.SetValue(fmt2(mi))
}

func (m *timeModel) currentTimeOrSeed() (h24 int, mi int) {
	mi = parseIntDefault(m.minuteInput.Value(), m.opts.Minute)
	if mi < 0 {
		mi = 0
	}
	if mi > 59 {
		mi = 59
	}
	if m.opts.Is24Hour {
		h24 = parseIntDefault(m.hourInput.Value(), m.opts.Hour)
		if h24 < 0 {
			h24 = 0
		}
		if h24 > 23 {
			h24 = 23
		}
		return
	}
	seed12, _ := to12(m.opts.Hour)
	h12 := parseIntDefault(m.hourInput.Value(), seed12)
	if h12 < 1 {
		h12 = 1
	}
	if h12 > 12 {
		h12 = 12
	}
	return to24(h12, m.pm), mi
}

func (m *timeModel) applyFocus() {
	m.hourInput.Blur()
	m.minuteInput.Blur()
	switch m.focus {
	case timeFocusHour:
		m.hourInput.Focus()
	case timeFocusMinute:
		m.minuteInput.Focus()
	}
}

// focusRing lists the focusable elements; the meridiem toggle only exists in 12h mode.
func (m *timeModel) focusRing() []timeFocus {
	if m.opts.Is24Hour {
		return []timeFocus{timeFocusHour, timeFocusMinute, timeFocusSave, timeFocusClear, timeFocusCancel}
	}
	return []timeFocus{timeFocusHour, timeFocusMinute, timeFocusMeridiem, timeFocusSave, timeFocusClear, timeFocusCancel}
}

func (m *timeModel) moveFocus(delta int, fieldsOnly bool) {
	ring := m.focusRing()
	if fieldsOnly {
		ring = ring[:len(ring)-3]
	}
	idx := 0
	for i, f := range ring {
		if f == m.focus {
			idx = i
			break
		}
	}
	m.focus = ring[wrap(idx+delta, len(ring))]
	m.applyFocus()
}

func (m *timeModel) bump(delta int) bool {
	h, mi := m.currentTimeOrSeed()
	switch m.focus {
	case timeFocusHour:
		m.setTime(h+delta, mi)
	case timeFocusMinute:
		total := wrap(h*60+mi+delta, 24*60)
		m.setTime(total/60, total%60)
	case timeFocusMeridiem:
		m.pm = !m.pm
	default:
		return false
	}
	return true
}

func (m timeModel) finish(out picker.TimeOutcome) (tea.Model, tea.Cmd) {
	m.outcome = out
	m.done = true
	m.minibuffer = ""
	return m, tea.Quit
}

func (m timeModel) save() (tea.Model, tea.Cmd) {
	h, mi, err := parseTimeFields(m.hourInput.Value(), m.minuteInput.Value(), m.opts.Is24Hour, m.pm)
	if err != nil {
		m.minibuffer = err.Error()
		return m, nil
	}
	return m.finish(picker.TimeOutcome{Action: picker.ActionSet, Hour: h, Minute: mi})
}

func (m timeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m timeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m.forward(msg)
}

func (m timeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.moveFocus(+1, false)
		return m, nil
	case "shift+tab", "backtab":
		m.moveFocus(-1, false)
		return m, nil
	case "left", "h":
		if m.focus <= timeFocusMeridiem {
			m.moveFocus(-1, true)
			return m, nil
		}
	case "right", "l":
		if m.focus <= timeFocusMeridiem {
			m.moveFocus(+1, true)
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
	case " ", "space", "a", "p":
		if m.focus == timeFocusMeridiem {
			switch msg.String() {
			case "a":
				m.pm = false
			case "p":
				m.pm = true
			default:
				m.pm = !m.pm
			}
			return m, nil
		}
	case "ctrl+c":
		return m.finish(picker.TimeOutcome{Action: picker.ActionCleared})
	case "esc", "ctrl+g":
		return m.finish(picker.TimeOutcome{Action: picker.ActionDismissed})
	case "enter", "ctrl+s":
		switch m.focus {
		case timeFocusMeridiem:
			if msg.String() == "enter" {
				m.pm = !m.pm
				return m, nil
			}
			return m.save()
		case timeFocusClear:
			return m.finish(picker.TimeOutcome{Action: picker.ActionCleared})
		case timeFocusCancel:
			return m.finish(picker.TimeOutcome{Action: picker.ActionDismissed})
		default:
			return m.save()
		}
	}
	return m.forward(msg)
}

func (m timeModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case timeFocusHour:
		m.hourInput, cmd = m.hourInput.Update(msg)
	case timeFocusMinute:
		m.minuteInput, cmd = m.minuteInput.Update(msg)
	}
	return m, cmd
}

func (m timeModel) meridiem() string {
	if m.pm {
		return "PM"
	}
	return "AM"
}

func (m timeModel) View() string {
	if m.done {
		return ""
	}
	bodyW := modalBodyWidth(m.width)
	hv := padLeft(strings.TrimSpace(m.hourInput.Value()), 2)
	mv := padLeft(strings.TrimSpace(m.minuteInput.Value()), 2)

	var fields string
	if m.opts.Display == picker.DisplaySpinner {
		h, mi := m.currentTimeOrSeed()
		prevH, nextH := fmt2(wrap(h-1, 24)), fmt2(wrap(h+1, 24))
		if !m.opts.Is24Hour {
			p, _ := to12(h - 1)
			n, _ := to12(h + 1)
			prevH, nextH = fmt2(p), fmt2(n)
		}
		cols := []string{
			renderSpinnerColumn(prevH, hv, nextH, m.focus == timeFocusHour), ":",
			renderSpinnerColumn(fmt2(wrap(mi-1, 60)), mv, fmt2(wrap(mi+1, 60)), m.focus == timeFocusMinute),
		}
		if !m.opts.Is24Hour {
			cols = append(cols, " ", renderPill(m.focus == timeFocusMeridiem, m.meridiem()))
		}
		fields = lipgloss.JoinHorizontal(lipgloss.Center, cols...)
	} else {
		cols := []string{
			renderPill(m.focus == timeFocusHour, hv), ":",
			renderPill(m.focus == timeFocusMinute, mv),
		}
		if !m.opts.Is24Hour {
			cols = append(cols, " ", renderPill(m.focus == timeFocusMeridiem, m.meridiem()))
		}
		fields = lipgloss.JoinHorizontal(lipgloss.Left, cols...)
	}

	label := "Time (24h)"
	help := "tab: focus  h/l: prev/next  j/k or ↓/↑: -/+  enter/ctrl+s: save  ctrl+c: clear  esc/ctrl+g: cancel"
	if !m.opts.Is24Hour {
		label = "Time (12h)"
		help = "tab: focus  h/l: prev/next  j/k or ↓/↑: -/+  a/p: am/pm  enter/ctrl+s: save  ctrl+c: clear  esc/ctrl+g: cancel"
	}

	parts := []string{
		styleMuted().Width(bodyW).Render(label),
		fields,
		"",
		renderButtons(m.focus == timeFocusSave, m.focus == timeFocusClear, m.focus == timeFocusCancel),
		"",
	}
	if mb := renderMinibuffer(m.width, m.minibuffer); mb != "" {
		parts = append(parts, mb, "")
	}
	parts = append(parts, styleMuted().Width(bodyW).Render(help))

	return renderModalBox(m.width, "Pick a time", strings.Join(parts, "\n"))
}
