package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lines used above and below the team list, not counting the banner:
// title, bordered search box (3), error and suggestion lines, then a gap
// and the help line at the bottom.
const (
	headerLines = 6
	footerLines = 2
)

// ListHeight returns the lines left for the team list
func ListHeight(totalHeight, bannerRows int) int {
	h := totalHeight - headerLines - footerLines - bannerRows
	if h < 3 {
		return 3
	}
	return h
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title  string
	Banner string // API logo thumbnail, empty until it loads

	SearchView    string
	SearchFocused bool
	ButtonLabel   string

	Loading      bool
	SpinnerView  string
	LoadingLabel string

	ErrorMessage string
	Suggestion   string

	Teams          []TeamRow
	SelectedIndex  int
	ViewportOffset int
	Visible        int
	ItemHeight     int
	LogoWidth      int // zero hides logos
	EmptyLabel     string

	Modal *ModalState

	HelpView string
	Ready    bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	teamRender  *TeamRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		teamRender:  NewTeamRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Modal != nil {
		return r.popupRender.RenderModal(*state.Modal, state.Width, state.Height)
	}

	content := &strings.Builder{}

	if state.Banner != "" {
		content.WriteString(lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, state.Banner))
		content.WriteString("\n")
	}

	// Title with loading indicator
	title := r.styles.Title.Render(state.Title)
	if state.Loading {
		title = fmt.Sprintf("%s  %s", title, r.styles.StatusLoading.Render(state.SpinnerView+" "+state.LoadingLabel))
	}
	content.WriteString(title)
	content.WriteString("\n")

	content.WriteString(r.renderSearchBar(state))
	content.WriteString("\n")

	// Error and suggestion lines are always reserved so the list doesn't jump
	if state.ErrorMessage != "" {
		content.WriteString(r.styles.StatusError.Render(state.ErrorMessage))
	}
	content.WriteString("\n")
	if state.Suggestion != "" {
		content.WriteString(r.styles.Suggestion.Render(state.Suggestion))
	}
	content.WriteString("\n")

	content.WriteString(r.renderTeams(state))
	content.WriteString("\n")

	footer := r.styles.Help.Render(state.HelpView)
	if state.Ready {
		footer += "  __READY__"
	}
	content.WriteString(footer)

	return content.String()
}

func (r *Renderer) renderSearchBar(state ViewState) string {
	button := r.styles.Button.Render(state.ButtonLabel)
	if state.Loading {
		button = r.styles.ButtonBusy.Render(state.ButtonLabel)
	}

	boxStyle := r.styles.SearchBox
	if state.SearchFocused {
		boxStyle = r.styles.SearchFocused
	}
	boxWidth := state.Width - lipgloss.Width(button) - 6
	if boxWidth < 20 {
		boxWidth = 20
	}
	box := boxStyle.Width(boxWidth).Render(state.SearchView)

	// Centre the button against the three-line box
	return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", button)
}

func (r *Renderer) renderTeams(state ViewState) string {
	listHeight := state.Visible*state.ItemHeight + 2
	lines := make([]string, 0, listHeight)

	if len(state.Teams) == 0 {
		lines = append(lines, r.styles.Dim.Render(state.EmptyLabel))
		return fitHeight(strings.Join(lines, "\n"), listHeight)
	}

	start := state.ViewportOffset
	end := start + state.Visible
	if end > len(state.Teams) {
		end = len(state.Teams)
	}
	if start > end {
		start = end
	}

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", start)))
	} else {
		lines = append(lines, "")
	}

	for i := start; i < end; i++ {
		card := r.teamRender.RenderTeam(state.Teams[i], i == state.SelectedIndex, state.Width, state.ItemHeight, state.LogoWidth)
		lines = append(lines, card)
	}

	if remaining := len(state.Teams) - end; remaining > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", remaining)))
	}

	return fitHeight(strings.Join(lines, "\n"), listHeight)
}
