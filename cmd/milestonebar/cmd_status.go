package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show totals and proportions of every bar",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().String("profile", "", "Show only bars matching the profile")
	return cmd
}

type barStatus struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Total    int    `json:"total"`
	Segments string `json:"segments"`
	LockDiff string `json:"lock_diff,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")
	profile, _ := cmd.Flags().GetString("profile")

	ctx, err := board.Load(root)
	if err != nil {
		return err
	}
	bars, err := ctx.Select(profile, nil, nil)
	if err != nil {
		return err
	}

	statuses := make([]barStatus, 0, len(bars))
	for _, b := range bars {
		statuses = append(statuses, collectStatus(ctx, b))
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "BAR", "TITLE", "TOTAL", "SEGMENTS", "LOCK DIFF")
	for _, s := range statuses {
		tbl.Row(s.ID, s.Title, s.Total, s.Segments, s.LockDiff)
	}
	return tbl.Flush()
}

func collectStatus(ctx *board.Context, b manifest.Bar) barStatus {
	s := barStatus{
		ID:       b.ID,
		Title:    b.Title,
		Total:    milestone.Total(b.Statuses),
		LockDiff: ctx.LockDiff(b),
	}
	if s.Total == 0 {
		s.Segments = "(empty)"
		return s
	}
	s.Segments = segmentSummary(b.Statuses, milestone.ComputeGradient(b.Statuses))
	return s
}

// segmentSummary pairs every non-zero status with the width of its
// segment, e.g. "Completed 50%, In Progress 30%".
func segmentSummary(statuses []milestone.Status, g milestone.Gradient) string {
	parts := make([]string, 0, len(g))
	k := 0
	for _, st := range statuses {
		if st.Count == 0 || k >= len(g) {
			continue
		}
		name := st.Label
		if name == "" {
			name = st.Color
		}
		parts = append(parts, fmt.Sprintf("%s %.0f%%", name, g[k].Width()))
		k++
	}
	return strings.Join(parts, ", ")
}
