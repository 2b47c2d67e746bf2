package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/soda-dev/soda/internal/demo"
	"github.com/soda-dev/soda/internal/errors"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
)

func benchCmd(a *app) *cobra.Command {
	var (
		items   int
		frames  int
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the circles benchmark",
		Long: `Animate a grid of boxes: on every frame each box moves along a circle,
changes its background and relabels itself. The run reports frames per
second and the host mutations needed.

Examples:
  soda bench
  soda bench --items 500 --frames 200
  soda bench --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("items") {
				items = a.cfg.Bench.Items
			}
			if !cmd.Flags().Changed("frames") {
				frames = a.cfg.Bench.Frames
			}
			if !cmd.Flags().Changed("metrics") {
				metrics = a.cfg.Metrics
			}
			if items <= 0 || frames <= 0 {
				return errors.New("E101").WithDetail("--items and --frames must be positive")
			}

			opts := []soda.Option{soda.WithLogger(a.logger), soda.WithDebug(a.cfg.Debug)}
			reg := prometheus.NewRegistry()
			if metrics {
				opts = append(opts, soda.WithMetrics(reg))
			}

			res, err := demo.RunBench(cmd.Context(), items, frames, opts...)
			if err != nil {
				return err
			}

			a.heading("circles: %d boxes, %d %s", res.Items, res.Frames, plural(res.Frames, "frame"))
			a.info("elapsed    %s", res.Elapsed)
			a.info("fps        %.1f", res.FPS())
			a.info("mutations  %s", countLine(res.Mutations))
			a.info("instances  %d", res.Instances)
			if metrics {
				fmt.Fprintln(a.out)
				return writeMetrics(a.out, reg)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&items, "items", 0, "Number of boxes (default from config)")
	cmd.Flags().IntVar(&frames, "frames", 0, "Number of frames (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print renderer metrics after the run")

	return cmd
}

// plural returns word with an s unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func countLine(counts map[dom.MutationType]int) string {
	types := []dom.MutationType{
		dom.MutationChildList,
		dom.MutationAttributes,
		dom.MutationStyle,
		dom.MutationCharacterData,
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s=%d", t, counts[t]))
	}
	return strings.Join(parts, " ")
}
