package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/board"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/manifest"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/render"
	"github.com/AyoAlfonso/milestone-progress-bar/internal/ui"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [bar...]",
		Short: "Render bars to the terminal, HTML or JSON",
		RunE:  runRender,
	}
	cmd.Flags().String("format", "term", "Output format: term, html, json")
	cmd.Flags().String("profile", "", "Render only bars matching the profile")
	cmd.Flags().StringSlice("only", nil, "Render only these bar IDs")
	cmd.Flags().StringSlice("skip", nil, "Skip these bar IDs")
	cmd.Flags().String("out", "", "Write one file per bar into this directory")
	cmd.Flags().Int("jobs", 4, "Number of parallel render workers (with --out)")
	cmd.Flags().Int("width", 0, "Terminal bar width in cells (0: manifest default)")
	cmd.Flags().Bool("no-counts", false, "Hide count labels")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	formatStr, _ := cmd.Flags().GetString("format")
	profile, _ := cmd.Flags().GetString("profile")
	only, _ := cmd.Flags().GetStringSlice("only")
	skip, _ := cmd.Flags().GetStringSlice("skip")
	outDir, _ := cmd.Flags().GetString("out")
	jobs, _ := cmd.Flags().GetInt("jobs")
	width, _ := cmd.Flags().GetInt("width")
	noCounts, _ := cmd.Flags().GetBool("no-counts")

	format, err := render.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	if jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1 (got %d)", jobs)
	}
	if width < 0 {
		return fmt.Errorf("--width must be >= 0 (got %d)", width)
	}

	ctx, err := board.Load(root)
	if err != nil {
		return err
	}

	for _, id := range args {
		if _, ok := manifest.FindBar(ctx.Manifest, id); !ok {
			return fmt.Errorf("bar %q not found in manifest", id)
		}
	}
	bars, err := ctx.Select(profile, append(only, args...), skip)
	if err != nil {
		return err
	}
	if len(bars) == 0 {
		return fmt.Errorf("no bars selected")
	}

	out := cmd.OutOrStdout()
	if width == 0 && outDir == "" {
		width = fitWidth(out, bars, ctx.Manifest.Defaults)
	}
	rbars := make([]render.Bar, len(bars))
	for i, b := range bars {
		rbars[i] = b.RenderBar(ctx.Manifest.Defaults)
		if width > 0 {
			rbars[i].Options.Width = width
		}
		if noCounts {
			rbars[i].Options.ShowCounts = false
		}
	}

	if outDir == "" {
		return writeBars(out, ctx.Manifest.Name, rbars, format)
	}

	dir := outDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(ctx.Root, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // output dir needs to be world-readable
		return fmt.Errorf("creating output directory: %w", err)
	}

	progress := ui.NewProgress(cmd.ErrOrStderr(), len(rbars))
	progress.Log("Rendering %d bars to %s (%d jobs)", len(rbars), dir, jobs)
	if err := runParallelRender(ctx, outDir, rbars, format, jobs, progress); err != nil {
		return fmt.Errorf("%d of %d bars failed: %w", progress.Failed(), len(rbars), err)
	}
	_, _ = fmt.Fprintf(out, "Rendered %d bars to %s\n", len(rbars), dir)
	return nil
}

// writeBars writes bars to w in the given format.
func writeBars(w io.Writer, title string, bars []render.Bar, format render.Format) error {
	switch format {
	case render.FormatHTML:
		return render.Page(w, title, bars)
	case render.FormatJSON:
		return render.JSON(w, bars)
	default:
		t := render.NewTerm(w)
		heading := t.Renderer().NewStyle().Bold(true)
		for i, b := range bars {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			name := b.Title
			if name == "" {
				name = b.ID
			}
			if _, err := fmt.Fprintf(w, "%s\n%s\n", heading.Render(name), t.Bar(b.Statuses, b.Options)); err != nil {
				return err
			}
		}
		return nil
	}
}

func runParallelRender(ctx *board.Context, outDir string, bars []render.Bar, format render.Format, jobs int, progress *ui.Progress) error {
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	errCh := make(chan error, len(bars))

	for _, b := range bars {
		wg.Add(1)
		go func(b render.Bar) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			path := ctx.OutputPath(outDir, b.ID, format)
			if err := renderFile(path, ctx.Manifest.Name, b, format); err != nil {
				progress.Fail(filepath.Base(path), err)
				errCh <- fmt.Errorf("bar %s: %w", b.ID, err)
				return
			}
			progress.Done(filepath.Base(path))
		}(b)
	}

	wg.Wait()
	close(errCh)

	for e := range errCh {
		return e
	}
	return nil
}

func renderFile(path, boardName string, b render.Bar, format render.Format) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from the output dir and a validated bar id
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	title := boardName
	if b.Title != "" {
		title = boardName + " · " + b.Title
	}
	return writeBars(f, title, []render.Bar{b}, format)
}

// fitWidth shrinks the terminal bar width when stdout is a terminal
// narrower than the widest configured bar. It returns 0 to keep the
// manifest widths.
func fitWidth(out io.Writer, bars []manifest.Bar, d manifest.Defaults) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0
	}
	widest := 0
	for _, b := range bars {
		widest = max(widest, b.EffectiveWidth(d))
	}
	if widest <= cols {
		return 0
	}
	return cols
}
