// Package manifest handles parsing and validation of milestones.yaml, the
// board file listing every bar, its status counts and its display options.
package manifest
