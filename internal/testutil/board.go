// Package testutil provides helpers shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleBoard is a manifest with a populated bar, an empty bar and a
// release profile.
const SampleBoard = `version: 1
name: roadmap
defaults:
  width: 20
profiles:
  release:
    include_tags: ["release"]
bars:
  - id: q3
    title: Q3 milestones
    tags: ["release"]
    statuses:
      - {count: 5, color: green, label: Completed}
      - {count: 3, color: yellow, label: In Progress}
      - {count: 2, color: red, label: Incomplete}
  - id: q4
    title: Q4 milestones
    statuses:
      - {count: 0, color: green, label: Completed}
      - {count: 0, color: red, label: Incomplete}
`

// WriteBoard creates a temp board root containing milestones.yaml with the
// given content and returns the root.
func WriteBoard(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, filepath.Join(dir, "milestones.yaml"), content)
	return dir
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}
