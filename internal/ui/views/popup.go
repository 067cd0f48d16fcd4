package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalState is what the driver modal shows
type ModalState struct {
	Title      string
	Drivers    []string
	Offset     int // first visible driver
	Visible    int // how many drivers fit
	CloseLabel string
	EmptyLabel string
	Hint       string
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderModal renders the driver modal centred over the whole screen. The
// modal replaces the list entirely, like a full-screen sheet.
func (pr *PopupRenderer) RenderModal(modal ModalState, width, height int) string {
	var b strings.Builder

	b.WriteString(pr.styles.ModalTitle.Render(modal.Title))
	b.WriteString("\n")

	start, end := modal.Offset, modal.Offset+modal.Visible
	if end > len(modal.Drivers) {
		end = len(modal.Drivers)
	}
	if start > end {
		start = end
	}

	if start > 0 {
		b.WriteString(pr.styles.Scroll.Render("↑"))
		b.WriteString("\n")
	}
	if len(modal.Drivers) == 0 {
		b.WriteString(pr.styles.Dim.Render(modal.EmptyLabel))
		b.WriteString("\n")
	}
	for _, name := range modal.Drivers[start:end] {
		b.WriteString(pr.styles.DriverName.Render(name))
		b.WriteString("\n")
	}
	if end < len(modal.Drivers) {
		b.WriteString(pr.styles.Scroll.Render("↓"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pr.styles.Button.Render(modal.CloseLabel))
	if modal.Hint != "" {
		b.WriteString("\n")
		b.WriteString(pr.styles.Help.Render(modal.Hint))
	}

	popup := pr.styles.Modal.Render(b.String())
	if width <= 0 || height <= 0 {
		return popup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
