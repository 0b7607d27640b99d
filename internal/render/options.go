package render

import (
	"fmt"
	"regexp"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

const (
	// DefaultHeight is the CSS height of the gradient bar.
	DefaultHeight = "4px"
	// DefaultWidth is the terminal bar width in cells.
	DefaultWidth = 40
)

// Options configures how a bar is painted.
type Options struct {
	Height     string // CSS length, HTML only
	ShowCounts bool
	Class      string // extra class on the container, HTML only
	Style      string // extra inline style on the container, HTML only
	Width      int    // cells, terminal only
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Height: DefaultHeight, ShowCounts: true, Width: DefaultWidth}
}

// Bar is a titled bar ready to be painted.
type Bar struct {
	ID       string
	Title    string
	Statuses []milestone.Status
	Options  Options
}

// Format selects an output format.
type Format string

const (
	FormatTerm Format = "term"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ParseFormat parses a format string, defaulting to "term".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTerm, "":
		return FormatTerm, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %q (must be term, html, or json)", s)
	}
}

// Ext returns the file extension used when writing this format to disk.
func (f Format) Ext() string {
	switch f {
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

var lengthRe = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem|%|vh|pt)$`)

// IsLength reports whether s is a CSS length this package accepts as a height.
func IsLength(s string) bool {
	return lengthRe.MatchString(s)
}
