// Package main provides the ontoview binary entry point.
// Ontoview reads RDF ontology documents, reports their metadata and
// exports their classes, properties and individuals as tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/config"
	"github.com/c360studio/ontoview/metric"
	"github.com/c360studio/ontoview/pipeline"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontoview"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "RDF ontology inspector",
		Long: `Ontoview reads RDF ontology documents (Turtle, N-Triples, N-Quads, TriG)
and summarizes them.

It provides:
- Ontology metadata (IRI, name, version, description, license)
- An element table of classes, properties and individuals
- CSV export of element tables and JSON/YAML metadata reports
- Watch mode that re-processes files as they change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.inspectCmd(),
		a.exportCmd(),
		a.convertCmd(),
		a.watchCmd(),
		fieldsCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// setup loads configuration and configures logging.
func (a *app) setup(logOut io.Writer) error {
	bootLevel := a.logLevel
	if bootLevel == "" {
		bootLevel = "info"
	}

	cfg, err := config.NewLoader(newLogger(logOut, bootLevel)).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	a.cfg = cfg
	a.logger = newLogger(logOut, cfg.LogLevel)
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) runner(m *metric.Metrics) *pipeline.Runner {
	opts := []pipeline.RunnerOption{pipeline.WithLogger(a.logger)}
	if m != nil {
		opts = append(opts, pipeline.WithMetrics(m))
	}
	return pipeline.NewRunner(opts...)
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// batchError turns per-document failures into a non-zero exit.
func batchError(results []pipeline.Result, runErr error) error {
	if runErr != nil {
		return runErr
	}
	if n := pipeline.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d documents failed", n, len(results))
	}
	return nil
}
