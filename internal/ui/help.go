package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"paddock/internal/domain"
)

var (
	pagerTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	pagerSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginTop(1)

	pagerKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	pagerDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderHelpContent lays out every binding of the key map for the pager
func renderHelpContent(title string, keys keyMap) string {
	var help strings.Builder

	help.WriteString(pagerTitleStyle.Render(title))
	help.WriteString("\n")

	sections := []struct {
		name     string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End}},
		{"Teams", []key.Binding{keys.Select, keys.Search, keys.Reload}},
		{"Other", []key.Binding{keys.Help, keys.Quit}},
	}
	for _, section := range sections {
		help.WriteString(pagerSectionStyle.Render(section.name))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", pagerKeyStyle.Render(fmt.Sprintf("%-8s", h.Key)), pagerDescStyle.Render(h.Desc)))
		}
	}

	help.WriteString(pagerSectionStyle.Render("Search box"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", pagerKeyStyle.Render(fmt.Sprintf("%-8s", "enter")), pagerDescStyle.Render("search by exact name")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", pagerKeyStyle.Render(fmt.Sprintf("%-8s", "esc")), pagerDescStyle.Render("clear and show every team")))
	help.WriteString(fmt.Sprintf("  %s  %s", pagerKeyStyle.Render(fmt.Sprintf("%-8s", "tab")), pagerDescStyle.Render("back to the list")))

	return help.String()
}

// renderRosterContent lists a team's drivers for the pager
func renderRosterContent(title string, drivers []domain.Driver) string {
	var b strings.Builder
	b.WriteString(pagerTitleStyle.Render(title))
	b.WriteString("\n")
	for i, d := range drivers {
		b.WriteString(fmt.Sprintf("%3d  %s\n", i+1, pagerDescStyle.Render(d.Name)))
	}
	return b.String()
}

// PagerOps shows long text in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// Show hands the terminal to ov until the user quits it
func (p *PagerOps) Show(content string) error {
	if p == nil || p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
