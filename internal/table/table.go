// Package table prints rendered clocks as a borderless two-column table.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SmitUplenchwar2687/worldclock/internal/render"
)

// cellPadding is the blank space on each side of a cell.
const cellPadding = 1

// Option configures Print.
type Option func(*lipgloss.Renderer)

// WithColorProfile forces the colour profile instead of detecting it from w.
// termenv.Ascii disables all styling.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(p)
	}
}

// Print writes rows to w: no header, no borders or grid lines, bold labels,
// plain times, left-aligned columns sized to their widest cell.
func Print(w io.Writer, rows []render.Row, opts ...Option) error {
	if len(rows) == 0 {
		return nil
	}

	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}

	var labelWidth, timeWidth int
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		timeWidth = max(timeWidth, lipgloss.Width(row.Time))
	}

	// Width includes padding.
	cell := r.NewStyle().Padding(0, cellPadding).Align(lipgloss.Left)
	label := cell.Bold(true).Width(labelWidth + 2*cellPadding)
	plain := cell.Width(timeWidth + 2*cellPadding)

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render(row.Label),
			plain.Render(row.Time),
		))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}
