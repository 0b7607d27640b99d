package render

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)
	hexRe   = regexp.MustCompile(`^#[0-9a-f]+$`)
)

// IsCSSColor reports whether token is a color token that can be placed
// inside a style attribute as is: a hex color, a keyword, or an
// rgb()/hsl() call with numeric arguments.
func IsCSSColor(token string) bool {
	return colorRe.MatchString(token)
}

// cssColor returns token when it is safe to emit, "transparent" otherwise.
func cssColor(token string) string {
	if IsCSSColor(token) {
		return token
	}
	return "transparent"
}

// namedColors maps the CSS keywords most often used for statuses to hex.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"orange":  "#ffa500",
	"yellow":  "#ffff00",
	"gold":    "#ffd700",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
}

// TermColor converts a CSS color token to something lipgloss understands:
// a #rrggbb hex string or an ANSI color number. The second result is false
// when the token cannot be shown in a terminal.
func TermColor(token string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if hex, ok := namedColors[t]; ok {
		return hex, true
	}
	if hexRe.MatchString(t) {
		switch len(t) {
		case 4:
			return "#" + strings.Repeat(t[1:2], 2) + strings.Repeat(t[2:3], 2) + strings.Repeat(t[3:4], 2), true
		case 7:
			return t, true
		case 9:
			return t[:7], true // drop alpha
		}
		return "", false
	}
	if n, err := strconv.Atoi(t); err == nil && n >= 0 && n <= 255 {
		return t, true
	}
	return "", false
}
