package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add bars to the board interactively",
		Args:  cobra.NoArgs,
		RunE:  runAdd,
	}
}

func runAdd(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")

	ctx, err := board.Load(root)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("add requires a TTY")
	}

	existing := make(map[string]bool, len(ctx.Manifest.Bars))
	for _, b := range ctx.Manifest.Bars {
		existing[b.ID] = true
	}

	bars, err := interactiveAddBars(existing)
	if err != nil {
		return err
	}
	return appendBars(cmd, ctx, bars)
}

// appendBars adds bars to the manifest and saves it.
func appendBars(cmd *cobra.Command, ctx *board.Context, bars []manifest.Bar) error {
	ctx.Manifest.Bars = append(ctx.Manifest.Bars, bars...)
	if err := manifest.Save(ctx.ManifestPath, ctx.Manifest); err != nil {
		return err
	}
	for _, b := range bars {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d statuses)\n", b.ID, len(b.Statuses))
	}
	return nil
}
