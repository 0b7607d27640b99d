package render

import (
	"encoding/json"
	"io"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

type jsonBar struct {
	ID         string             `json:"id"`
	Title      string             `json:"title,omitempty"`
	Total      int                `json:"total"`
	Gradient   string             `json:"gradient"`
	Segments   milestone.Gradient `json:"segments"`
	Labels     milestone.Labels   `json:"labels,omitempty"`
	Height     string             `json:"height"`
	ShowCounts bool               `json:"show_counts"`
}

// JSON writes the computed geometry of each bar as an indented JSON array.
func JSON(w io.Writer, bars []Bar) error {
	out := make([]jsonBar, 0, len(bars))
	for _, b := range bars {
		g := milestone.ComputeGradient(b.Statuses)
		jb := jsonBar{
			ID:         b.ID,
			Title:      b.Title,
			Total:      milestone.Total(b.Statuses),
			Gradient:   g.CSS(),
			Segments:   g,
			Height:     b.Options.Height,
			ShowCounts: b.Options.ShowCounts,
		}
		if b.Options.ShowCounts {
			jb.Labels = milestone.ComputeLabels(b.Statuses)
		}
		out = append(out, jb)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
