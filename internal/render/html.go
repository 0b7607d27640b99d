package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

// containerClass is always present on the wrapper so pages can target bars.
const containerClass = "milestone-progress-bar"

var barTmpl = template.Must(template.New("bar").Parse(`<div class="{{.Class}}" style="{{.WrapperStyle}}">
{{- range .Labels}}
  <div style="{{.ContainerStyle}}"><span style="{{.SpanStyle}}">{{.Text}}</span></div>
{{- end}}
  <div style="{{.BarStyle}}"></div>
</div>
`))

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; max-width: 960px; margin: 0 auto; padding: 1rem; }
section { margin-bottom: 2rem; }
section h2 { font-size: 1rem; margin-bottom: 28px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Bars}}
<section id="{{.ID}}">
<h2>{{.Title}}</h2>
{{.Markup}}
</section>
{{- end}}
</body>
</html>
`))

type htmlLabel struct {
	ContainerStyle template.CSS
	SpanStyle      template.CSS
	Text           string
}

type htmlBar struct {
	Class        string
	WrapperStyle template.CSS
	BarStyle     template.CSS
	Labels       []htmlLabel
}

// HTML writes the markup of a single bar.
func HTML(w io.Writer, statuses []milestone.Status, opts Options) error {
	if err := barTmpl.Execute(w, buildHTMLBar(statuses, opts)); err != nil {
		return fmt.Errorf("rendering bar: %w", err)
	}
	return nil
}

// Page writes a standalone HTML document with one section per bar.
func Page(w io.Writer, title string, bars []Bar) error {
	type section struct {
		ID     string
		Title  string
		Markup template.HTML
	}
	sections := make([]section, 0, len(bars))
	for _, b := range bars {
		var sb strings.Builder
		if err := HTML(&sb, b.Statuses, b.Options); err != nil {
			return fmt.Errorf("bar %s: %w", b.ID, err)
		}
		t := b.Title
		if t == "" {
			t = b.ID
		}
		// Markup comes from barTmpl, which has already escaped every value.
		sections = append(sections, section{ID: b.ID, Title: t, Markup: template.HTML(sb.String())}) //nolint:gosec // escaped by barTmpl
	}

	data := struct {
		Title string
		Bars  []section
	}{Title: title, Bars: sections}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func buildHTMLBar(statuses []milestone.Status, opts Options) htmlBar {
	safe := make([]milestone.Status, len(statuses))
	for i, s := range statuses {
		safe[i] = milestone.Status{Count: s.Count, Color: cssColor(s.Color), Label: s.Label}
	}

	height := opts.Height
	if !IsLength(height) {
		height = DefaultHeight
	}

	class := containerClass
	if c := strings.TrimSpace(opts.Class); c != "" {
		class += " " + c
	}

	wrapper := "position: relative; width: 100%;"
	if st := sanitizeStyle(opts.Style); st != "" {
		wrapper += " " + st
	}

	bar := htmlBar{
		Class:        class,
		WrapperStyle: template.CSS(wrapper), //nolint:gosec // sanitized above
		BarStyle: template.CSS(fmt.Sprintf( //nolint:gosec // colors and height are validated
			"height: %s; width: 100%%; background: linear-gradient(%s); border-radius: 2px;",
			height, milestone.ComputeGradient(safe).CSS())),
	}

	if !opts.ShowCounts {
		return bar
	}

	empty := milestone.Total(safe) == 0
	for _, p := range milestone.ComputeLabels(safe) {
		container := "position: absolute; top: -20px; transform: translateX(-50%);"
		if !empty {
			container += " left: " + formatPct(p.Midpoint) + "%;"
		}
		bar.Labels = append(bar.Labels, htmlLabel{
			ContainerStyle: template.CSS(container),                                                        //nolint:gosec // numeric
			SpanStyle:      template.CSS("font-size: 0.75rem; font-weight: bold; color: " + p.Color + ";"), //nolint:gosec // validated color
			Text:           p.Text(),
		})
	}
	return bar
}

// sanitizeStyle drops style overrides that could break out of the
// attribute or pull in external resources.
func sanitizeStyle(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, `<>"'{}\@`) {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") {
		return ""
	}
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	return s
}
