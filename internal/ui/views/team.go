package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TeamRow is a rendered team card
type TeamRow struct {
	Name      string
	LogoURL   string // absolute image address
	Thumbnail string // empty until the image loads
}

// TeamRenderer handles rendering of team cards
type TeamRenderer struct {
	styles *Styles
}

// NewTeamRenderer creates a new team renderer
func NewTeamRenderer(styles *Styles) *TeamRenderer {
	return &TeamRenderer{styles: styles}
}

// RenderTeam renders one card exactly height lines tall and at most width
// columns wide. logoWidth of zero hides the logo column.
func (r *TeamRenderer) RenderTeam(team TeamRow, isSelected bool, width, height, logoWidth int) string {
	cursor := "  "
	nameStyle := r.styles.TeamName
	if isSelected {
		cursor = r.styles.Highlight.Render("▶ ")
		nameStyle = r.styles.Highlight
	}

	columns := []string{cursor}
	textWidth := width - 2
	if logoWidth > 0 {
		thumb := team.Thumbnail
		if thumb == "" {
			thumb = strings.Repeat(" ", logoWidth)
		}
		columns = append(columns, thumb, " ")
		textWidth -= logoWidth + 1
	}
	if textWidth < 4 {
		textWidth = 4
	}

	name := nameStyle.Render(ansi.Truncate(team.Name, textWidth, "…"))
	link := r.styles.LogoLink.Render(ansi.Truncate(team.LogoURL, textWidth, "…"))
	link = ansi.SetHyperlink(team.LogoURL) + link + ansi.ResetHyperlink()
	columns = append(columns, name+"\n"+link)

	card := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return fitHeight(card, height)
}

// fitHeight pads or cuts s to exactly n lines
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
