package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/garrettladley/gaugeview/internal/gauge"
	"github.com/garrettladley/gaugeview/internal/measure"
	"github.com/garrettladley/gaugeview/internal/validator"
	"github.com/garrettladley/gaugeview/internal/xslog"
)

func ticksCmd(flags *gaugeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ticks",
		Short: "Print the computed tick layout",
		Long:  "Prints one row per tick: angle, tick segment, label text and label box.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			if err := validator.Validate("invalid gauge layout", e.settings, e.viewport); err != nil {
				xslog.FromContext(cmd.Context()).ErrorContext(cmd.Context(), "invalid settings", xslog.ErrorGroup(err))
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "index\tangle\tstart\tend\tlabel\tlabel rect\t")
			for _, t := range gauge.LayoutTicks(e.settings, e.viewport, measure.Basic()) {
				fmt.Fprintf(tw, "%d\t%.2f\t(%.2f, %.2f)\t(%.2f, %.2f)\t%s\t[%.2f %.2f %.2f %.2f]\t\n",
					t.Index, t.AngleDegrees,
					t.Start.X, t.Start.Y,
					t.End.X, t.End.Y,
					t.LabelText,
					t.LabelRect.X, t.LabelRect.Y, t.LabelRect.Width, t.LabelRect.Height,
				)
			}
			return tw.Flush()
		},
	}
}
