package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMarkdownStyle_FollowsBackground(t *testing.T) {
	old := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(old) })

	lipgloss.SetHasDarkBackground(false)
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}
	lipgloss.SetHasDarkBackground(true)
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := RenderMarkdown("  \n ", 80); got != "" {
		t.Fatalf("expected empty output for blank input, got %q", got)
	}

	out := RenderMarkdown("# Keys\n\n- `tab`: next control", 5)
	if !strings.Contains(out, "Keys") || !strings.Contains(out, "tab") {
		t.Fatalf("expected rendered heading and item, got %q", out)
	}
	if strings.Contains(out, "# Keys") {
		t.Fatalf("expected heading markup to be rendered, got %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newlines to be trimmed")
	}
}
