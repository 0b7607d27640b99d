package manifest

import (
	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
)

// Board represents the top-level milestones.yaml manifest.
type Board struct {
	Version     int                `yaml:"version"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Profiles    map[string]Profile `yaml:"profiles,omitempty"`
	Defaults    Defaults           `yaml:"defaults,omitempty"`
	Bars        []Bar              `yaml:"bars"`
}

// Defaults defines display options applied to all bars unless overridden
// at the bar level.
type Defaults struct {
	Height     string `yaml:"height,omitempty"`
	ShowCounts *bool  `yaml:"show_counts,omitempty"`
	Width      int    `yaml:"width,omitempty"`
}

// Profile selects a subset of bars by tags or explicit IDs.
type Profile struct {
	IncludeTags   []string `yaml:"include_tags,omitempty"`
	IncludeBarIDs []string `yaml:"include_bar_ids,omitempty"`
	ExcludeBarIDs []string `yaml:"exclude_bar_ids,omitempty"`
}

// Bar is a single progress bar entry in the manifest.
type Bar struct {
	ID         string             `yaml:"id"`
	Title      string             `yaml:"title,omitempty"`
	Tags       []string           `yaml:"tags,omitempty"`
	Height     string             `yaml:"height,omitempty"`
	ShowCounts *bool              `yaml:"show_counts,omitempty"`
	Width      int                `yaml:"width,omitempty"`
	Class      string             `yaml:"class,omitempty"`
	Style      string             `yaml:"style,omitempty"`
	Statuses   []milestone.Status `yaml:"statuses"`
}

// EffectiveHeight returns the CSS height for this bar, falling back to
// defaults and then to render.DefaultHeight.
func (b *Bar) EffectiveHeight(d Defaults) string {
	if b.Height != "" {
		return b.Height
	}
	if d.Height != "" {
		return d.Height
	}
	return render.DefaultHeight
}

// EffectiveShowCounts returns the show_counts setting (default true).
func (b *Bar) EffectiveShowCounts(d Defaults) bool {
	if b.ShowCounts != nil {
		return *b.ShowCounts
	}
	if d.ShowCounts != nil {
		return *d.ShowCounts
	}
	return true
}

// EffectiveWidth returns the terminal width for this bar.
func (b *Bar) EffectiveWidth(d Defaults) int {
	if b.Width > 0 {
		return b.Width
	}
	if d.Width > 0 {
		return d.Width
	}
	return render.DefaultWidth
}

// Counts returns the status counts in manifest order.
func (b *Bar) Counts() []int {
	out := make([]int, len(b.Statuses))
	for i, s := range b.Statuses {
		out[i] = s.Count
	}
	return out
}

// RenderBar resolves display options and returns a bar ready to paint.
func (b *Bar) RenderBar(d Defaults) render.Bar {
	return render.Bar{
		ID:       b.ID,
		Title:    b.Title,
		Statuses: b.Statuses,
		Options: render.Options{
			Height:     b.EffectiveHeight(d),
			ShowCounts: b.EffectiveShowCounts(d),
			Class:      b.Class,
			Style:      b.Style,
			Width:      b.EffectiveWidth(d),
		},
	}
}
