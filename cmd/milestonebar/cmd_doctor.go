package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/milestone"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the board and terminal for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	root, _ := cmd.Flags().GetString("root")

	profile := render.NewTerm(out).Renderer().ColorProfile()
	_, _ = fmt.Fprintf(out, "Terminal colors: %s\n", profileName(profile))
	if profile == termenv.Ascii {
		_, _ = fmt.Fprintln(out, "  Note: colors are disabled; terminal bars render without segment colors")
	}

	_, _ = fmt.Fprint(out, "Checking manifest... ")
	ctx, err := board.Load(root)
	if err != nil {
		_, _ = fmt.Fprintln(out, "FAILED")
		_, _ = fmt.Fprintf(out, "  %v\n", err)
		return fmt.Errorf("doctor checks failed")
	}
	_, _ = fmt.Fprintf(out, "OK (%s, %d bars)\n", ctx.Manifest.Name, len(ctx.Manifest.Bars))

	warnings := 0
	for _, b := range ctx.Manifest.Bars {
		if milestone.Total(b.Statuses) == 0 {
			_, _ = fmt.Fprintf(out, "  Warning: %s has no counts; it renders the empty fallback\n", b.ID)
			warnings++
		}
		for _, s := range b.Statuses {
			if _, ok := render.TermColor(s.Color); !ok {
				_, _ = fmt.Fprintf(out, "  Warning: %s: color %q has no terminal equivalent\n", b.ID, s.Color)
				warnings++
			}
		}
	}

	if ctx.Lock == nil {
		_, _ = fmt.Fprintln(out, "No lock file (run `milestonebar pin` to track changes)")
	}

	if warnings == 0 {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
	} else {
		_, _ = fmt.Fprintf(out, "\nAll checks passed with %d warning(s).\n", warnings)
	}
	return nil
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "true color"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "none"
	}
}
