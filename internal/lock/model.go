package lock

import (
	"fmt"
	"strings"
)

// File represents milestones.lock.yaml.
type File struct {
	Version     int             `yaml:"version"`
	Name        string          `yaml:"name"`
	GeneratedAt string          `yaml:"generated_at"`
	ToolVersion string          `yaml:"tool_version"`
	Bars        map[string]*Bar `yaml:"bars"`
}

// Bar records the pinned counts of a single bar.
type Bar struct {
	Total  int   `yaml:"total"`
	Counts []int `yaml:"counts"`
}

// NewBar pins the given counts.
func NewBar(counts []int) *Bar {
	total := 0
	for _, c := range counts {
		total += c
	}
	return &Bar{Total: total, Counts: append([]int(nil), counts...)}
}

// Diff describes how current differs from the pinned counts, e.g.
// "+2 total, [1]: 3→1". It returns "" when nothing changed.
func (b *Bar) Diff(current []int) string {
	cur := NewBar(current)
	var parts []string
	if d := cur.Total - b.Total; d != 0 {
		parts = append(parts, fmt.Sprintf("%+d total", d))
	}
	if len(current) != len(b.Counts) {
		parts = append(parts, fmt.Sprintf("statuses %d→%d", len(b.Counts), len(current)))
		return strings.Join(parts, ", ")
	}
	for i := range current {
		if current[i] != b.Counts[i] {
			parts = append(parts, fmt.Sprintf("[%d]: %d→%d", i, b.Counts[i], current[i]))
		}
	}
	return strings.Join(parts, ", ")
}
