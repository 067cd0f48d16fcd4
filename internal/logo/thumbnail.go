package logo

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rows returns how many terminal lines a thumbnail of the given width uses
func Rows(width int) int {
	if width < 4 {
		return 1
	}
	return width / 4
}

// Render draws img as a width x Rows(width) block of half-block cells. Each
// cell holds two vertical pixels: the upper one as foreground of '▀' and the
// lower one as background. The image is scaled to fit and centred; pixels
// that are mostly transparent are left blank.
func Render(img image.Image, width int) string {
	if width < 1 {
		width = 1
	}
	rows := Rows(width)
	pw, ph := width, rows*2

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return blank(width, rows)
	}

	// Fit, keeping the aspect ratio
	scale := float64(pw) / float64(b.Dx())
	if s := float64(ph) / float64(b.Dy()); s < scale {
		scale = s
	}
	dw := max(1, int(float64(b.Dx())*scale))
	dh := max(1, int(float64(b.Dy())*scale))
	ox := (pw - dw) / 2
	oy := (ph - dh) / 2

	sample := func(x, y int) (string, bool) {
		if x < ox || x >= ox+dw || y < oy || y >= oy+dh {
			return "", false
		}
		sx := b.Min.X + (x-ox)*b.Dx()/dw
		sy := b.Min.Y + (y-oy)*b.Dy()/dh
		r, g, bl, a := img.At(sx, sy).RGBA()
		if a < 0x8000 {
			return "", false
		}
		return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8), true
	}

	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < pw; x++ {
			top, hasTop := sample(x, row*2)
			bottom, hasBottom := sample(x, row*2+1)
			switch {
			case hasTop && hasBottom:
				out.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom)).
					Render("▀"))
			case hasTop:
				out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render("▀"))
			case hasBottom:
				out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄"))
			default:
				out.WriteByte(' ')
			}
		}
	}
	return out.String()
}

// Blank returns an empty area the size of a thumbnail
func Blank(width int) string {
	return blank(width, Rows(width))
}

func blank(width, rows int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
