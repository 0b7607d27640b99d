package milestone

import "testing"

func TestComputeLabels_midpoints(t *testing.T) {
	statuses := []Status{
		{Count: 5, Color: "green"},
		{Count: 3, Color: "yellow"},
		{Count: 2, Color: "red"},
	}
	want := Labels{
		{Color: "green", Count: 5, Midpoint: 25},
		{Color: "yellow", Count: 3, Midpoint: 65},
		{Color: "red", Count: 2, Midpoint: 90},
	}

	got := ComputeLabels(statuses)
	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Color != want[i].Color || got[i].Count != want[i].Count {
			t.Errorf("label[%d] = %+v, want %+v", i, got[i], want[i])
		}
		if !approx(got[i].Midpoint, want[i].Midpoint) {
			t.Errorf("label[%d].midpoint = %v, want %v", i, got[i].Midpoint, want[i].Midpoint)
		}
	}
}

func TestComputeLabels_empty(t *testing.T) {
	got := ComputeLabels(nil)
	if len(got) != 1 {
		t.Fatalf("got %d labels, want 1", len(got))
	}
	if got[0].Text() != "0" {
		t.Errorf("text = %q, want %q", got[0].Text(), "0")
	}
	if got[0].Color != EmptyLabelColor {
		t.Errorf("color = %q, want %q", got[0].Color, EmptyLabelColor)
	}
}

func TestComputeLabels_leadingZero(t *testing.T) {
	got := ComputeLabels([]Status{
		{Count: 0, Color: "green"},
		{Count: 4, Color: "blue"},
	})
	if len(got) != 1 {
		t.Fatalf("got %d labels, want 1: %+v", len(got), got)
	}
	if got[0] != (Placement{Color: "blue", Count: 4, Midpoint: 50}) {
		t.Errorf("label = %+v, want blue/4/50", got[0])
	}
}

func TestComputeLabels_skipsZeroAnywhere(t *testing.T) {
	got := ComputeLabels([]Status{
		{Count: 2, Color: "green"},
		{Count: 0, Color: "yellow"},
		{Count: 2, Color: "red"},
		{Count: 0, Color: "gray"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d labels, want 2", len(got))
	}
	if got[0].Midpoint != 25 || got[1].Midpoint != 75 {
		t.Errorf("midpoints = %v, %v; want 25, 75", got[0].Midpoint, got[1].Midpoint)
	}
}
