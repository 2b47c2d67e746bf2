package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/soda-dev/soda/internal/config"
	"github.com/soda-dev/soda/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┌─┐┌┬┐┌─┐
  └─┐│ │ ││├─┤
  └─┘└─┘─┴┘┴ ┴
`

// app is the state shared by all subcommands, filled in before any of
// them runs.
type app struct {
	out    io.Writer
	cfg    *config.Config
	logger *slog.Logger

	configPath string
	logLevel   string
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "soda",
		Short: "A retained-mode UI renderer with hooks",
		Long: `Soda renders component trees onto an in-memory document and keeps
them up to date with minimal mutations.

The CLI runs the bundled demo applications and the circles benchmark:

  • soda demo counter    click a counter and watch the patches
  • soda demo todo       add, toggle and remove keyed todos
  • soda bench           animate N boxes for M frames`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, logOut)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./soda.{yaml,json,toml} if present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable renderer debug logging")

	rootCmd.AddCommand(
		demoCmd(a),
		benchCmd(a),
		versionCmd(a),
	)
	rootCmd.SetOut(out)
	return rootCmd
}

// load reads the configuration and applies the global flags on top of it.
func (a *app) load(cmd *cobra.Command, logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))
	if path := cfg.Path(); path != "" {
		a.logger.Debug("config loaded", "path", path)
	}
	return nil
}

// success prints a success message.
func (a *app) success(format string, args ...any) {
	fmt.Fprintf(a.out, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// info prints an indented info line.
func (a *app) info(format string, args ...any) {
	fmt.Fprintf(a.out, "  %s\n", fmt.Sprintf(format, args...))
}

// heading prints a bold heading.
func (a *app) heading(format string, args ...any) {
	fmt.Fprintln(a.out, color.New(color.Bold).Sprintf(format, args...))
}

// dim prints a faint line.
func (a *app) dim(format string, args ...any) {
	fmt.Fprintf(a.out, "    %s\n", color.New(color.Faint).Sprintf(format, args...))
}
