package milestone

import (
	"strconv"
	"strings"
)

// Gradient is the ordered list of color stops of a bar.
type Gradient []Segment

// ComputeGradient turns statuses into contiguous segments covering [0,100].
// Zero counts produce no segment. When the total is zero the result is a
// single FallbackColor segment spanning the whole bar.
func ComputeGradient(statuses []Status) Gradient {
	total := weight(statuses)
	if total == 0 {
		return Gradient{{Color: FallbackColor, Start: 0, End: 100}}
	}

	cumulative := 0.0
	g := make(Gradient, 0, len(statuses))
	for _, s := range statuses {
		if s.Count == 0 {
			continue
		}
		pct := float64(s.Count) / total * 100
		g = append(g, Segment{Color: s.Color, Start: cumulative, End: cumulative + pct})
		cumulative += pct
	}
	return g
}

// CSS renders the argument of a CSS linear-gradient() call,
// e.g. "to right, green 0%, green 50%, red 50%, red 100%".
func (g Gradient) CSS() string {
	var b strings.Builder
	b.WriteString("to right")
	for _, s := range g {
		b.WriteString(", ")
		writeStop(&b, s.Color, s.Start)
		b.WriteString(", ")
		writeStop(&b, s.Color, s.End)
	}
	return b.String()
}

func writeStop(b *strings.Builder, color string, pct float64) {
	b.WriteString(color)
	b.WriteByte(' ')
	b.WriteString(formatPercent(pct))
	b.WriteByte('%')
}

// formatPercent uses the shortest decimal that round-trips.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Colors returns the segment colors in order.
func (g Gradient) Colors() []string {
	colors := make([]string, len(g))
	for i, s := range g {
		colors[i] = s.Color
	}
	return colors
}

// ColorAt returns the color of the segment containing pct. Points on a
// boundary belong to the segment on the right; 100 belongs to the last one.
func (g Gradient) ColorAt(pct float64) string {
	if len(g) == 0 {
		return ""
	}
	for _, s := range g {
		if pct < s.End {
			return s.Color
		}
	}
	return g[len(g)-1].Color
}
