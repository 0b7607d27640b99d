package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new board interactively or from a manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().String("from", "", "Import manifest from a local path")
	cmd.Flags().Bool("force", false, "Overwrite existing board")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("root")
	from, _ := cmd.Flags().GetString("from")
	force, _ := cmd.Flags().GetBool("force")

	if filepath.IsAbs(name) || strings.Contains(filepath.Clean(name), "..") {
		return fmt.Errorf("invalid board name %q: must be a simple directory name (no absolute paths or ..)", name)
	}

	boardDir := filepath.Join(root, name)
	manifestPath := filepath.Join(boardDir, board.ManifestFile)

	if _, err := os.Stat(manifestPath); err == nil && !force {
		return fmt.Errorf("board %q already exists (use --force to overwrite)", name)
	}

	// Build manifest data before creating the directory to avoid leaving empty dirs on error.
	var data []byte
	if from != "" {
		src, err := os.ReadFile(from) //nolint:gosec // user-provided --from path
		if err != nil {
			return fmt.Errorf("reading --from source: %w", err)
		}
		if _, err := manifest.Parse(src); err != nil {
			return fmt.Errorf("invalid manifest from %s: %w", from, err)
		}
		data = src
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --from to specify a manifest")
		}
		bars, err := interactiveAddBars(nil)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		data, err = buildBoard(name, bars)
		if err != nil {
			return fmt.Errorf("building board manifest: %w", err)
		}
	}

	if err := os.MkdirAll(boardDir, 0755); err != nil { //nolint:gosec // board dir needs to be world-readable
		return fmt.Errorf("creating board directory: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0644); err != nil { //nolint:gosec // manifest file needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Board %q created at %s\n", name, boardDir)
	return nil
}
