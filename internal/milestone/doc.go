// Package milestone computes the geometry of a milestone progress bar.
// Given an ordered list of status counts it derives the gradient color
// stops of the bar and the midpoint positions of the count labels.
// Both computations are pure and recompute everything from their input.
package milestone
