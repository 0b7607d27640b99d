package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

func TestHTML_gradientAndLabels(t *testing.T) {
	var buf bytes.Buffer
	statuses := []milestone.Status{
		{Count: 1, Color: "green", Label: "Completed"},
		{Count: 1, Color: "red", Label: "Incomplete"},
	}
	if err := HTML(&buf, statuses, DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		`class="milestone-progress-bar"`,
		"linear-gradient(to right, green 0%, green 50%, red 50%, red 100%)",
		"height: 4px",
		"left: 25%",
		"left: 75%",
		">1</span>",
		"color: green",
		"color: red",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	for _, pair := range [][2]string{
		{"left: 25%", "left: 75%"},
		{"color: green", "color: red"},
	} {
		first, second := strings.Index(out, pair[0]), strings.Index(out, pair[1])
		if first < 0 || second < 0 || first > second {
			t.Errorf("%q should come before %q:\n%s", pair[0], pair[1], out)
		}
	}
}

func TestHTML_countsFromScenario(t *testing.T) {
	var buf bytes.Buffer
	statuses := []milestone.Status{
		{Count: 5, Color: "green"},
		{Count: 3, Color: "yellow"},
		{Count: 2, Color: "red"},
	}
	if err := HTML(&buf, statuses, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, n := range []string{">5<", ">3<", ">2<"} {
		if !strings.Contains(out, n) {
			t.Errorf("missing count %s in output", n)
		}
	}
}

func TestHTML_empty(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, nil, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "linear-gradient(to right, #ccc 0%, #ccc 100%)") {
		t.Errorf("missing fallback gradient:\n%s", out)
	}
	if !strings.Contains(out, ">0</span>") {
		t.Errorf("missing 0 label:\n%s", out)
	}
	if strings.Contains(out, "left:") {
		t.Errorf("empty label should not be offset:\n%s", out)
	}
}

func TestHTML_hideCounts(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowCounts = false
	if err := HTML(&buf, []milestone.Status{{Count: 2, Color: "blue"}}, opts); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<span") {
		t.Errorf("counts rendered although disabled:\n%s", buf.String())
	}
}

func TestHTML_overrides(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Height: "10px", ShowCounts: true, Class: "compact", Style: "margin-top: 24px"}
	if err := HTML(&buf, []milestone.Status{{Count: 2, Color: "#00ff00"}}, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`class="milestone-progress-bar compact"`, "margin-top: 24px;", "height: 10px"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHTML_unsafeInput(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Height: "4px; background: red", ShowCounts: true, Style: `color: red" onclick="x()`}
	statuses := []milestone.Status{{Count: 1, Color: `red;"><script>`}}
	if err := HTML(&buf, statuses, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") || strings.Contains(out, "onclick") {
		t.Fatalf("unsafe input leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "transparent 0%") {
		t.Errorf("unsafe color should be replaced:\n%s", out)
	}
	if !strings.Contains(out, "height: 4px;") {
		t.Errorf("invalid height should fall back to default:\n%s", out)
	}
}

func TestPage(t *testing.T) {
	var buf bytes.Buffer
	bars := []Bar{
		{ID: "q3", Title: "Q3 <milestones>", Statuses: []milestone.Status{{Count: 1, Color: "green"}}, Options: DefaultOptions()},
		{ID: "q4", Statuses: nil, Options: DefaultOptions()},
	}
	if err := Page(&buf, "Roadmap", bars); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<title>Roadmap</title>", `<section id="q3">`, "Q3 &lt;milestones&gt;", "<h2>q4</h2>", `<div class="milestone-progress-bar"`} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q:\n%s", want, out)
		}
	}
}

func TestIsLength(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"4px", true},
		{"0.5rem", true},
		{"100%", true},
		{"4", false},
		{"px", false},
		{"4px;", false},
	}
	for _, tt := range tests {
		if got := IsLength(tt.in); got != tt.want {
			t.Errorf("IsLength(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTerm, "term": FormatTerm, "html": FormatHTML, "json": FormatJSON} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("svg"); err == nil {
		t.Error("expected error for unknown format")
	}
}
