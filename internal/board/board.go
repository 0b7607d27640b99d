package board

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/lock"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
)

const (
	// ManifestFile is the board manifest name inside the root.
	ManifestFile = "milestones.yaml"
	// LockFile is the pinned snapshot name inside the root.
	LockFile = "milestones.lock.yaml"
)

// Context holds the resolved paths and loaded config for a board.
type Context struct {
	Root         string
	ManifestPath string
	LockPath     string
	Manifest     *manifest.Board
	Lock         *lock.File // may be nil
}

// Load resolves board paths and loads the manifest (and lock if present).
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving board root: %w", err)
	}

	manifestPath := filepath.Join(root, ManifestFile)
	lockPath := filepath.Join(root, LockFile)

	b, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Root:         root,
		ManifestPath: manifestPath,
		LockPath:     lockPath,
		Manifest:     b,
	}

	if _, statErr := os.Stat(lockPath); statErr == nil {
		lf, err := lock.Load(lockPath)
		if err != nil {
			return nil, err
		}
		ctx.Lock = lf
	}

	return ctx, nil
}

// OutputPath returns the file the bar with the given id is written to
// under dir. Relative dirs are resolved against the board root.
func (c *Context) OutputPath(dir, id string, f render.Format) string {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.Root, dir)
	}
	return filepath.Join(dir, id+f.Ext())
}

// LockDiff describes how bar moved since the last pin, or "" when there
// is no lock entry or nothing changed.
func (c *Context) LockDiff(bar manifest.Bar) string {
	if c.Lock == nil {
		return ""
	}
	pinned, ok := c.Lock.Bars[bar.ID]
	if !ok {
		return "new"
	}
	return pinned.Diff(bar.Counts())
}

// Select applies the profile and --only/--skip filters to the board's bars.
func (c *Context) Select(profile string, only, skip []string) ([]manifest.Bar, error) {
	bars := c.Manifest.Bars
	if profile != "" {
		var err error
		bars, err = manifest.FilterBars(c.Manifest, profile)
		if err != nil {
			return nil, err
		}
	}
	return manifest.FilterByIDs(bars, only, skip), nil
}
