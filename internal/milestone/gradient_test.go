package milestone

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

func covered(g Gradient) float64 {
	sum := 0.0
	for _, s := range g {
		sum += s.Width()
	}
	return sum
}

func TestComputeGradient_proportional(t *testing.T) {
	statuses := []Status{
		{Count: 5, Color: "green", Label: "Completed"},
		{Count: 3, Color: "yellow", Label: "In Progress"},
		{Count: 2, Color: "red", Label: "Incomplete"},
	}
	want := Gradient{
		{Color: "green", Start: 0, End: 50},
		{Color: "yellow", Start: 50, End: 80},
		{Color: "red", Start: 80, End: 100},
	}

	got := ComputeGradient(statuses)
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Color != want[i].Color {
			t.Errorf("segment[%d].color = %q, want %q", i, got[i].Color, want[i].Color)
		}
		if !approx(got[i].Start, want[i].Start) || !approx(got[i].End, want[i].End) {
			t.Errorf("segment[%d] = [%v, %v], want [%v, %v]", i, got[i].Start, got[i].End, want[i].Start, want[i].End)
		}
	}
}

func TestComputeGradient_empty(t *testing.T) {
	for _, statuses := range [][]Status{nil, {}, {{Count: 0, Color: "green"}, {Count: 0, Color: "red"}}} {
		got := ComputeGradient(statuses)
		if len(got) != 1 {
			t.Fatalf("got %d segments, want 1", len(got))
		}
		if got[0] != (Segment{Color: FallbackColor, Start: 0, End: 100}) {
			t.Errorf("fallback segment = %+v", got[0])
		}
	}
}

func TestComputeGradient_leadingZero(t *testing.T) {
	got := ComputeGradient([]Status{
		{Count: 0, Color: "green"},
		{Count: 4, Color: "blue"},
	})
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1: %+v", len(got), got)
	}
	if got[0] != (Segment{Color: "blue", Start: 0, End: 100}) {
		t.Errorf("segment = %+v, want blue 0..100", got[0])
	}
}

func TestComputeGradient_zeroInMiddleKeepsContiguity(t *testing.T) {
	got := ComputeGradient([]Status{
		{Count: 1, Color: "green"},
		{Count: 0, Color: "yellow"},
		{Count: 1, Color: "red"},
		{Count: 0, Color: "gray"},
	})
	if !slices.Equal(got.Colors(), []string{"green", "red"}) {
		t.Fatalf("colors = %v", got.Colors())
	}
	if got[0].End != got[1].Start {
		t.Errorf("gap between segments: %v != %v", got[0].End, got[1].Start)
	}
	if got[1].End != 100 {
		t.Errorf("last end = %v, want 100", got[1].End)
	}
}

func TestComputeGradient_properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	colors := []string{"green", "yellow", "red", "blue", "gray"}

	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(8)
		statuses := make([]Status, n)
		var nonZero []string
		for i := range statuses {
			c := rng.Intn(50)
			if rng.Intn(3) == 0 {
				c = 0
			}
			statuses[i] = Status{Count: c, Color: colors[rng.Intn(len(colors))]}
			if c > 0 {
				nonZero = append(nonZero, statuses[i].Color)
			}
		}

		g := ComputeGradient(statuses)
		l := ComputeLabels(statuses)

		if Total(statuses) == 0 {
			if len(g) != 1 || g[0].Color != FallbackColor || len(l) != 1 || l[0].Text() != "0" {
				t.Fatalf("iter %d: bad degenerate output: %+v %+v", iter, g, l)
			}
			continue
		}

		if !approx(covered(g), 100) {
			t.Fatalf("iter %d: covered = %v, want 100", iter, covered(g))
		}
		if !approx(g[len(g)-1].End, 100) {
			t.Fatalf("iter %d: last end = %v", iter, g[len(g)-1].End)
		}
		if g[0].Start != 0 {
			t.Fatalf("iter %d: first start = %v", iter, g[0].Start)
		}
		for i := 1; i < len(g); i++ {
			if g[i-1].End != g[i].Start {
				t.Fatalf("iter %d: segments %d and %d not contiguous", iter, i-1, i)
			}
		}
		if !slices.Equal(g.Colors(), nonZero) {
			t.Fatalf("iter %d: colors = %v, want %v", iter, g.Colors(), nonZero)
		}
		if !slices.Equal(l.Colors(), g.Colors()) {
			t.Fatalf("iter %d: label colors %v differ from segment colors %v", iter, l.Colors(), g.Colors())
		}
		for i, p := range l {
			if p.Midpoint < g[i].Start || p.Midpoint > g[i].End {
				t.Fatalf("iter %d: label %d midpoint %v outside segment %+v", iter, i, p.Midpoint, g[i])
			}
		}
	}
}

func TestGradient_CSS(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     string
	}{
		{"empty", nil, "to right, #ccc 0%, #ccc 100%"},
		{"halves", []Status{{Count: 1, Color: "green"}, {Count: 1, Color: "red"}},
			"to right, green 0%, green 50%, red 50%, red 100%"},
		{"quarters", []Status{{Count: 1, Color: "#0f0"}, {Count: 0, Color: "gray"}, {Count: 3, Color: "#f00"}},
			"to right, #0f0 0%, #0f0 25%, #f00 25%, #f00 100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGradient(tt.statuses).CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGradient_ColorAt(t *testing.T) {
	g := ComputeGradient([]Status{
		{Count: 5, Color: "green"},
		{Count: 3, Color: "yellow"},
		{Count: 2, Color: "red"},
	})
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "green"},
		{49.9, "green"},
		{50, "yellow"},
		{79, "yellow"},
		{95, "red"},
		{100, "red"},
	}
	for _, tt := range tests {
		if got := g.ColorAt(tt.pct); got != tt.want {
			t.Errorf("ColorAt(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}

	if got := (Gradient{}).ColorAt(10); got != "" {
		t.Errorf("empty gradient ColorAt = %q, want empty", got)
	}
}

func TestComputeGradient_negativeCountDoesNotPanic(t *testing.T) {
	g := ComputeGradient([]Status{{Count: 3, Color: "green"}, {Count: -1, Color: "red"}})
	if len(g) != 2 {
		t.Errorf("got %d segments, want 2", len(g))
	}
	l := ComputeLabels([]Status{{Count: 1, Color: "green"}, {Count: -1, Color: "red"}})
	if len(l) != 1 || l[0].Color != EmptyLabelColor {
		t.Errorf("zero-sum input should fall back, got %+v", l)
	}
}

func TestComputeGradient_hugeCounts(t *testing.T) {
	statuses := []Status{{Count: 1 << 62, Color: "a"}, {Count: 1 << 62, Color: "b"}}

	g := ComputeGradient(statuses)
	want := Gradient{{Color: "a", Start: 0, End: 50}, {Color: "b", Start: 50, End: 100}}
	if !slices.Equal(g, want) {
		t.Errorf("ComputeGradient = %+v, want %+v", g, want)
	}

	l := ComputeLabels(statuses)
	if len(l) != 2 || l[0].Midpoint != 25 || l[1].Midpoint != 75 {
		t.Errorf("ComputeLabels = %+v, want midpoints 25 and 75", l)
	}
}
