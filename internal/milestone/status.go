package milestone

import "strconv"

const (
	// FallbackColor paints the whole bar when there is nothing to show.
	FallbackColor = "#ccc"
	// EmptyLabelColor is used for the single "0" label of an empty bar.
	EmptyLabelColor = "#999"
	// Tolerance bounds the floating point drift of the final segment end.
	Tolerance = 1e-6
)

// Status is one weighted status category of a bar.
type Status struct {
	Count int    `json:"count" yaml:"count"`
	Color string `json:"color" yaml:"color"`
	// Label is informational only.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Segment is a contiguous colored region of the bar, in percent.
type Segment struct {
	Color string  `json:"color"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width returns End - Start.
func (s Segment) Width() float64 { return s.End - s.Start }

// Placement positions one count label at the midpoint of its segment.
type Placement struct {
	Color    string  `json:"color"`
	Count    int     `json:"count"`
	Midpoint float64 `json:"midpoint"`
}

// Text returns the label text.
func (p Placement) Text() string { return strconv.Itoa(p.Count) }

// Total returns the sum of all counts.
func Total(statuses []Status) int {
	total := 0
	for _, s := range statuses {
		total += s.Count
	}
	return total
}

// weight sums counts as float64 so that huge counts do not wrap.
func weight(statuses []Status) float64 {
	w := 0.0
	for _, s := range statuses {
		w += float64(s.Count)
	}
	return w
}
