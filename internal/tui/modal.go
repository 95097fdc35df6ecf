package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	modalMaxWidth = 64
	modalMinWidth = 34
)

func modalWidth(termWidth int) int {
	if termWidth <= 0 {
		return modalMaxWidth
	}
	w := termWidth - 4
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

// modalBodyWidth is the usable content width inside the modal padding.
func modalBodyWidth(termWidth int) int {
	return modalWidth(termWidth) - 4
}

func renderModalBox(termWidth int, title string, body string) string {
	w := modalWidth(termWidth)
	bodyW := w - 4

	title = strings.TrimSpace(title)
	if xansi.StringWidth(title) > bodyW {
		title = xansi.Truncate(title, bodyW, "…")
	}
	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)

	lines := strings.Split(body, "\n")
	for i, ln := range lines {
		if xansi.StringWidth(ln) > bodyW {
			lines[i] = xansi.Truncate(ln, bodyW, "")
		}
	}
	content := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func padLeft(s string, n int) string {
	for xansi.StringWidth(s) < n {
		s = " " + s
	}
	return s
}

func renderPill(active bool, content string) string {
	st := lipgloss.NewStyle().Background(colorInputBg).Foreground(colorSurfaceFg)
	if active {
		st = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return st.Render(" " + content + " ")
}

func focusBtn(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Padding(0, 1).Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	return lipgloss.NewStyle().Padding(0, 1).Foreground(colorSurfaceFg).Background(colorControlBg)
}

func renderButtons(saveActive, clearActive, cancelActive bool) string {
	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		focusBtn(saveActive).Render("Save"), sep,
		focusBtn(clearActive).Render("Clear"), sep,
		focusBtn(cancelActive).Render("Cancel"),
	)
}

func renderMinibuffer(width int, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return lipgloss.NewStyle().Width(modalBodyWidth(width)).Foreground(colorError).Render(msg)
}
