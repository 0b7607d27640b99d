package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

const barCell = "█"

// Term paints bars as styled terminal text.
type Term struct {
	r *lipgloss.Renderer
}

// NewTerm creates a terminal painter whose color support is detected from out.
func NewTerm(out io.Writer) *Term {
	return &Term{r: lipgloss.NewRenderer(out)}
}

// Renderer exposes the underlying lipgloss renderer.
func (t *Term) Renderer() *lipgloss.Renderer { return t.r }

// Bar returns the bar line, preceded by a count label line when
// opts.ShowCounts is set.
func (t *Term) Bar(statuses []milestone.Status, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	line := t.barLine(milestone.ComputeGradient(statuses), width)
	if !opts.ShowCounts {
		return line
	}
	return t.labelLine(milestone.ComputeLabels(statuses), width) + "\n" + line
}

// barLine paints each cell with the color found at the cell's center.
func (t *Term) barLine(g milestone.Gradient, width int) string {
	var b strings.Builder
	for i := 0; i < width; {
		color := g.ColorAt(cellCenter(i, width))
		j := i + 1
		for j < width && g.ColorAt(cellCenter(j, width)) == color {
			j++
		}
		b.WriteString(t.style(color).Render(strings.Repeat(barCell, j-i)))
		i = j
	}
	return b.String()
}

func (t *Term) labelLine(labels milestone.Labels, width int) string {
	var b strings.Builder
	col := 0
	for _, c := range layoutLabels(labels, width) {
		b.WriteString(strings.Repeat(" ", c.Col-col))
		b.WriteString(t.style(c.Color).Bold(true).Render(c.Text))
		col = c.Col + len(c.Text)
	}
	return b.String()
}

func (t *Term) style(color string) lipgloss.Style {
	s := t.r.NewStyle()
	if c, ok := TermColor(color); ok {
		s = s.Foreground(lipgloss.Color(c))
	}
	return s
}

func cellCenter(i, width int) float64 {
	return (float64(i) + 0.5) / float64(width) * 100
}

// labelCell is a label positioned on a terminal column.
type labelCell struct {
	Col   int
	Text  string
	Color string
}

// layoutLabels centers each label on its midpoint column. Labels are kept
// in order and at least one cell apart: a label that would collide with the
// previous one is pushed right, and one that no longer fits is dropped.
func layoutLabels(labels milestone.Labels, width int) []labelCell {
	cells := make([]labelCell, 0, len(labels))
	next := 0
	for _, p := range labels {
		text := p.Text()
		n := len(text)
		if n > width {
			continue
		}
		col := int(math.Round(p.Midpoint/100*float64(width))) - n/2
		if col < next {
			col = next
		}
		if col+n > width {
			col = width - n
		}
		if col < next {
			continue
		}
		cells = append(cells, labelCell{Col: col, Text: text, Color: p.Color})
		next = col + n + 1
	}
	return cells
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
