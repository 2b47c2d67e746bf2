package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/soda-dev/soda/internal/demo"
	"github.com/soda-dev/soda/pkg/dom"
	"github.com/soda-dev/soda/pkg/soda"
)

func demoCmd(a *app) *cobra.Command {
	var (
		clicks    int
		mutations bool
		metrics   bool
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Run a demo application",
		Long: `Mount a demo application on an in-memory document, simulate user
interactions and print the document after each one.

Without a name, the available demos are listed.

Examples:
  soda demo
  soda demo counter --clicks 5
  soda demo todo --mutations`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.listDemos()
				return nil
			}
			if !cmd.Flags().Changed("clicks") {
				clicks = a.cfg.Demo.Clicks
			}
			if !cmd.Flags().Changed("metrics") {
				metrics = a.cfg.Metrics
			}
			return a.runDemo(args[0], clicks, mutations, metrics)
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Number of simulated interactions (default from config)")
	cmd.Flags().BoolVarP(&mutations, "mutations", "m", false, "Print the host mutations of each step")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print renderer metrics after the run")

	return cmd
}

func (a *app) listDemos() {
	a.heading("Available demos:")
	for _, name := range demo.Names() {
		d, _ := demo.Lookup(name)
		a.info("%-10s %s", d.Name, d.Description)
	}
}

func (a *app) runDemo(name string, clicks int, showMutations, showMetrics bool) error {
	d, err := demo.Lookup(name)
	if err != nil {
		return err
	}

	var updateErrs []error
	opts := []soda.Option{
		soda.WithLogger(a.logger),
		soda.WithDebug(a.cfg.Debug),
		soda.WithErrorHandler(func(err error) { updateErrs = append(updateErrs, err) }),
	}
	reg := prometheus.NewRegistry()
	if showMetrics {
		opts = append(opts, soda.WithMetrics(reg))
	}

	doc := dom.NewDocument()
	r := soda.New(doc, opts...)
	root, step := d.New()
	if _, err := r.Render(root, doc.Body()); err != nil {
		return err
	}

	a.heading("%s: mounted", d.Name)
	a.info("%s", doc.Body().InnerHTML())

	rec := dom.NewRecorder(doc)
	defer rec.Stop()

	for i := 0; i < clicks; i++ {
		rec.Reset()
		desc, err := step(doc.Body(), i)
		if err != nil {
			return err
		}
		if len(updateErrs) > 0 {
			return updateErrs[0]
		}

		a.heading("step %d: %s (%d mutations)", i+1, desc, rec.Len())
		a.info("%s", doc.Body().InnerHTML())
		if showMutations {
			for _, m := range rec.Records() {
				a.dim("%s", m)
			}
		}
	}

	a.success("%s: %d steps, %d instances", d.Name, clicks, r.Len())
	if showMetrics {
		fmt.Fprintln(a.out)
		return writeMetrics(a.out, reg)
	}
	return nil
}
