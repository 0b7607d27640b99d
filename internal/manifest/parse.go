package manifest

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
)

// Validate checks the board manifest for errors.
func Validate(b *Board) error { return validate(b) }

// Save validates and writes a board manifest to disk.
func Save(path string, b *Board) error {
	if err := validate(b); err != nil {
		return err
	}
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Load reads and validates a milestones.yaml file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the board manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates milestones.yaml content.
func Parse(data []byte) (*Board, error) {
	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	if err := validate(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

func validate(b *Board) error {
	if b.Version != 1 {
		return fmt.Errorf("unsupported manifest version: %d (expected 1)", b.Version)
	}
	if b.Name == "" {
		return fmt.Errorf("manifest: name is required")
	}

	if err := validateHeight(b.Defaults.Height, "defaults.height"); err != nil {
		return err
	}
	if b.Defaults.Width < 0 {
		return fmt.Errorf("manifest: defaults.width must not be negative: %d", b.Defaults.Width)
	}

	seen := make(map[string]bool, len(b.Bars))
	for i, bar := range b.Bars {
		if err := validateBar(i, bar, seen); err != nil {
			return err
		}
		seen[bar.ID] = true
	}
	return nil
}

func validateBar(i int, bar Bar, seen map[string]bool) error {
	if bar.ID == "" {
		return fmt.Errorf("manifest: bars[%d].id is required", i)
	}
	if err := ValidateID(bar.ID); err != nil {
		return fmt.Errorf("manifest: bars[%d]: %w", i, err)
	}
	if seen[bar.ID] {
		return fmt.Errorf("manifest: duplicate bar id %q", bar.ID)
	}
	if err := validateHeight(bar.Height, fmt.Sprintf("bars[%d] (%s).height", i, bar.ID)); err != nil {
		return err
	}
	if bar.Width < 0 {
		return fmt.Errorf("manifest: bars[%d] (%s).width must not be negative: %d", i, bar.ID, bar.Width)
	}
	total := 0
	for j, s := range bar.Statuses {
		if s.Count < 0 {
			return fmt.Errorf("manifest: bars[%d] (%s).statuses[%d].count must not be negative: %d", i, bar.ID, j, s.Count)
		}
		if s.Count > math.MaxInt-total {
			return fmt.Errorf("manifest: bars[%d] (%s) total count overflows", i, bar.ID)
		}
		total += s.Count
		if s.Color == "" {
			return fmt.Errorf("manifest: bars[%d] (%s).statuses[%d].color is required", i, bar.ID, j)
		}
		if !render.IsCSSColor(s.Color) {
			return fmt.Errorf("manifest: bars[%d] (%s).statuses[%d].color is not a valid color: %q", i, bar.ID, j, s.Color)
		}
	}
	return nil
}

// ValidateID ensures a bar ID can be used as a file name.
func ValidateID(id string) error {
	if id == "." || id == ".." {
		return fmt.Errorf("invalid bar id %q", id)
	}
	if strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("bar id must not contain path separators: %q", id)
	}
	return nil
}

func validateHeight(v, label string) error {
	if v == "" || render.IsLength(v) {
		return nil
	}
	return fmt.Errorf("manifest: %s must be a CSS length such as 4px: %q", label, v)
}

// FindBar returns the bar with the given id.
func FindBar(b *Board, id string) (*Bar, bool) {
	for i := range b.Bars {
		if b.Bars[i].ID == id {
			return &b.Bars[i], true
		}
	}
	return nil, false
}

// FilterBars returns the subset of bars matching the given profile.
func FilterBars(b *Board, profileName string) ([]Bar, error) {
	prof, ok := b.Profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("profile %q not found in manifest", profileName)
	}
	return filterByProfile(b.Bars, prof), nil
}

func filterByProfile(bars []Bar, prof Profile) []Bar {
	excludeSet := toSet(prof.ExcludeBarIDs)
	includeSet := toSet(prof.IncludeBarIDs)
	tagSet := toSet(prof.IncludeTags)

	var result []Bar
	for _, bar := range bars {
		if excludeSet[bar.ID] {
			continue
		}
		if includeSet[bar.ID] || hasAnyTag(bar.Tags, tagSet) {
			result = append(result, bar)
		}
	}
	return result
}

// FilterByIDs returns bars matching --only / --skip flags.
func FilterByIDs(bars []Bar, only, skip []string) []Bar {
	if len(only) == 0 && len(skip) == 0 {
		return bars
	}
	onlySet := toSet(only)
	skipSet := toSet(skip)

	var result []Bar
	for _, bar := range bars {
		if len(onlySet) > 0 && !onlySet[bar.ID] {
			continue
		}
		if skipSet[bar.ID] {
			continue
		}
		result = append(result, bar)
	}
	return result
}

func toSet(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

func hasAnyTag(tags []string, tagSet map[string]bool) bool {
	for _, t := range tags {
		if tagSet[t] {
			return true
		}
	}
	return false
}
