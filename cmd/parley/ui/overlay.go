package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay placement within the base view.
type Placement int

const (
	PlaceCenter Placement = iota
	PlaceTop
	PlaceBottom
)

// Compose draws panel over base at the given placement. The base is assumed
// to already fill width x height; shorter bases are padded. Lines under the
// panel are replaced rather than blended, which is fine for the opaque
// bordered panels this app uses.
func Compose(base, panel string, width, height int, place Placement) string {
	if panel == "" {
		return base
	}

	baseLines := padLines(strings.Split(base, "\n"), height)
	panelLines := strings.Split(panel, "\n")
	panelWidth := lipgloss.Width(panel)

	top := 0
	switch place {
	case PlaceCenter:
		top = (height - len(panelLines)) / 2
	case PlaceTop:
		top = 1
	case PlaceBottom:
		top = height - len(panelLines) - 1
	}
	if top < 0 {
		top = 0
	}
	left := (width - panelWidth) / 2
	if left < 0 {
		left = 0
	}

	pad := strings.Repeat(" ", left)
	for i, pl := range panelLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		// Keep what is right of the panel on the underlying row.
		rest := ""
		baseWidth := ansi.StringWidth(baseLines[row])
		if after := left + ansi.StringWidth(pl); baseWidth > after {
			rest = ansi.Cut(baseLines[row], after, baseWidth)
		}
		baseLines[row] = pad + pl + rest
	}

	return strings.Join(baseLines, "\n")
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
