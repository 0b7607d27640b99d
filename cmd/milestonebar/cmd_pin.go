package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/lock"
)

func newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin",
		Short: "Pin current status counts to the lock file",
		RunE:  runPin,
	}
}

func runPin(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")

	ctx, err := board.Load(root)
	if err != nil {
		return err
	}

	lf := &lock.File{
		Version:     1,
		Name:        ctx.Manifest.Name,
		GeneratedAt: time.Now().Format(time.RFC3339),
		ToolVersion: version,
		Bars:        make(map[string]*lock.Bar, len(ctx.Manifest.Bars)),
	}

	out := cmd.OutOrStdout()
	for _, b := range ctx.Manifest.Bars {
		pinned := lock.NewBar(b.Counts())
		lf.Bars[b.ID] = pinned
		_, _ = fmt.Fprintf(out, "Pinned %s (total %d)\n", b.ID, pinned.Total)
	}

	if err := lock.Save(ctx.LockPath, lf); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Lock file written to %s\n", ctx.LockPath)
	return nil
}
