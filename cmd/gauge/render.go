package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/measure"
	"github.com/garrettladley/gaugeview/internal/paths"
	"github.com/garrettladley/gaugeview/internal/render/braille"
	"github.com/garrettladley/gaugeview/internal/render/raster"
	"github.com/garrettladley/gaugeview/internal/render/scenejson"
	"github.com/garrettladley/gaugeview/internal/render/svg"
	"github.com/garrettladley/gaugeview/internal/xslog"
)

const (
	formatBraille = "braille"
	formatPNG     = "png"
	formatSVG     = "svg"
	formatJSON    = "json"
)

var formats = []string{formatBraille, formatPNG, formatSVG, formatJSON}

// extensions maps a format to its output file extension.
var extensions = map[string]string{
	formatBraille: "txt",
	formatPNG:     "png",
	formatSVG:     "svg",
	formatJSON:    "json",
}

func renderCmd(flags *gaugeFlags) *cobra.Command {
	var (
		formatList string
		outDir     string
		dots       int
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the gauge",
		Long: "Lays out the gauge once and writes it in one or more formats.\n" +
			"Without --out a single format is written to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := xslog.FromContext(ctx)

			selected, err := parseFormats(formatList)
			if err != nil {
				return err
			}
			if outDir == "" && len(selected) > 1 {
				return fmt.Errorf("writing %d formats requires --out", len(selected))
			}
			if !cmd.Flags().Changed("dots") {
				dots = e.cfg.Gauge.BrailleDots
			}

			start := time.Now()
			scene, err := gauge.Layout(e.settings, e.viewport, measure.Basic())
			if err != nil {
				logger.ErrorContext(ctx, "layout failed", xslog.SettingsGroup(e.settings), xslog.ErrorGroup(err))
				return fmt.Errorf("failed to lay out gauge: %w", err)
			}
			logger.DebugContext(ctx, "layout done", xslog.SceneGroup(scene), xslog.Duration(time.Since(start)))

			if slices.Contains(selected, formatPNG) && e.viewport.SideLength > raster.MaxSide {
				return fmt.Errorf("png output needs --side at most %d, got %g", raster.MaxSide, e.viewport.SideLength)
			}

			w := writer{scene: scene, dots: dots, color: !noColor}

			if outDir == "" {
				out := bufio.NewWriter(cmd.OutOrStdout())
				if err := w.write(out, selected[0]); err != nil {
					return err
				}
				return out.Flush()
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}

			// every writer reads the same immutable scene
			g, _ := errgroup.WithContext(ctx)
			for _, format := range selected {
				path := paths.Output(outDir, extensions[format])
				g.Go(func() error {
					if err := w.writeFile(path, format); err != nil {
						return err
					}
					logger.InfoContext(ctx, "wrote gauge", xslog.Format(format), xslog.Path(path))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				logger.ErrorContext(ctx, "render failed", xslog.Error(err))
				return err
			}
			logger.InfoContext(ctx, "render complete", xslog.Count(len(selected)), xslog.Duration(time.Since(start)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatList, "format", "f", formatBraille, "comma separated formats: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write gauge.<ext> files into")
	cmd.Flags().IntVar(&dots, "dots", 64, "braille canvas side in dots")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "strip ANSI colors from braille output")
	return cmd
}

func parseFormats(list string) ([]string, error) {
	var selected []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !slices.Contains(formats, f) {
			return nil, fmt.Errorf("unknown format %q (valid: %s)", f, strings.Join(formats, ", "))
		}
		if !slices.Contains(selected, f) {
			selected = append(selected, f)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no format given (valid: %s)", strings.Join(formats, ", "))
	}
	return selected, nil
}

type writer struct {
	scene gauge.Scene
	dots  int
	color bool
}

func (w writer) write(out io.Writer, format string) error {
	switch format {
	case formatBraille:
		opts := braille.DefaultOptions()
		opts.Dots = w.dots
		s := braille.Render(w.scene, opts)
		if !w.color {
			s = braille.StripANSI(s)
		}
		_, err := fmt.Fprintln(out, s)
		return err
	case formatPNG:
		img, err := raster.Render(w.scene)
		if err != nil {
			return err
		}
		return raster.EncodePNG(out, img)
	case formatSVG:
		return svg.Write(out, w.scene)
	case formatJSON:
		return scenejson.Encode(out, w.scene, true)
	}
	return fmt.Errorf("unknown format %q", format)
}

func (w writer) writeFile(path, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := w.write(bw, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return bw.Flush()
}
