// Package board integrates manifest and lock loading with path resolution.
// It provides the Context type that holds the resolved board root and the
// loaded milestones.yaml and milestones.lock.yaml files.
package board
