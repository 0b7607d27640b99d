package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <bar> <status> <count>",
		Short: "Set the count of a status (by label or index)",
		Args:  cobra.ExactArgs(3),
		RunE:  runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	barID, statusRef, countStr := args[0], args[1], args[2]

	count, err := strconv.Atoi(countStr)
	if err != nil || count < 0 {
		return fmt.Errorf("invalid count %q: must be a non-negative integer", countStr)
	}

	ctx, err := board.Load(root)
	if err != nil {
		return err
	}
	bar, ok := manifest.FindBar(ctx.Manifest, barID)
	if !ok {
		return fmt.Errorf("bar %q not found in manifest", barID)
	}
	idx, err := findStatus(bar, statusRef)
	if err != nil {
		return err
	}

	prev := bar.Statuses[idx].Count
	bar.Statuses[idx].Count = count
	if err := manifest.Save(ctx.ManifestPath, ctx.Manifest); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %d → %d\n", bar.ID, statusName(bar.Statuses[idx]), prev, count)
	return nil
}

// findStatus resolves a status by label (case-insensitive) or by 0-based index.
func findStatus(bar *manifest.Bar, ref string) (int, error) {
	for i, s := range bar.Statuses {
		if s.Label != "" && strings.EqualFold(s.Label, ref) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(ref); err == nil {
		if i >= 0 && i < len(bar.Statuses) {
			return i, nil
		}
		return 0, fmt.Errorf("status index %d out of range (bar %s has %d statuses)", i, bar.ID, len(bar.Statuses))
	}
	return 0, fmt.Errorf("status %q not found in bar %s", ref, bar.ID)
}

func statusName(s milestone.Status) string {
	if s.Label != "" {
		return s.Label
	}
	return s.Color
}
