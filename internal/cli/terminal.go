package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

func isTerminalFd(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// outputWidth returns the terminal width of w, or fallback when w is not a terminal.
func outputWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminalFd(f.Fd()) {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
