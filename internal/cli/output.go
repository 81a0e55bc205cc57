package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/cfgjs/internal/domain"
)

type theme struct {
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Hint:    lipgloss.NewStyle().Faint(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

func printMissingDefinitions(w io.Writer, p *projectCtx) {
	th := defaultTheme()
	defs := filepath.Base(p.definitionsPath())
	example := filepath.Base(p.examplePath())

	fmt.Fprintln(w, th.Error.Render(fmt.Sprintf("Error: %s file not found", defs)))
	fmt.Fprintln(w, th.Hint.Render(fmt.Sprintf("Create one by copying %s to %s and adding your API keys", example, defs)))
}

func printGenerated(w io.Writer, path string) {
	fmt.Fprintln(w, defaultTheme().Success.Render("Generated "+path))
}

func printKeys(w io.Writer, statuses []domain.KeyStatus) {
	th := defaultTheme()
	for _, s := range statuses {
		state := th.Error.Render("missing")
		if s.Set {
			state = th.Success.Render("set")
		}
		fmt.Fprintf(w, "- %s: %s\n", s.Name, state)
	}
}
