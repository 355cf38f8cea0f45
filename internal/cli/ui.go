package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVertex  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber  = lipgloss.NewStyle().Foreground(colorGray)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

const noPathMessage = "No path found"

// printTitle prints a bold heading such as "Dijkstra's:".
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printPath prints payloads joined by arrows with hop and weight totals.
func printPath(w io.Writer, names []string, hops int, weight float64) {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = styleVertex.Render(n)
	}
	sep := " " + styleDim.Render(iconArrow) + " "
	fmt.Fprintf(w, "%s %s %s\n",
		styleSuccess.Render(iconSuccess),
		strings.Join(parts, sep),
		styleNumber.Render(fmt.Sprintf("(%d hops, weight %g)", hops, weight)))
}

// printNoPath prints the no-path marker.
func printNoPath(w io.Writer) {
	fmt.Fprintln(w, styleError.Render(iconError)+" "+noPathMessage)
}
