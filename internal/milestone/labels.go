package milestone

// Labels is the ordered list of count label placements of a bar.
type Labels []Placement

// ComputeLabels places one label per non-zero status at the midpoint of
// its segment. The total is computed here again rather than shared with
// ComputeGradient so the two stay independent. When the total is zero the
// result is a single "0" label in EmptyLabelColor at the bar center.
func ComputeLabels(statuses []Status) Labels {
	totalCount := weight(statuses)
	if totalCount == 0 {
		return Labels{{Color: EmptyLabelColor, Count: 0, Midpoint: 50}}
	}

	cumulative := 0.0
	l := make(Labels, 0, len(statuses))
	for _, s := range statuses {
		if s.Count == 0 {
			continue
		}
		pct := float64(s.Count) / totalCount * 100
		l = append(l, Placement{Color: s.Color, Count: s.Count, Midpoint: cumulative + pct/2})
		cumulative += pct
	}
	return l
}

// Colors returns the label colors in order.
func (l Labels) Colors() []string {
	colors := make([]string, len(l))
	for i, p := range l {
		colors[i] = p.Color
	}
	return colors
}
