package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontoview/metric"
	"github.com/c360studio/ontoview/watch"
)

func (a *app) watchCmd() *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Process ontology files under a directory and re-process them on change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = a.cfg.Metrics.Addr
			}
			return a.runWatch(cmd.Context(), cmd, args[0], metricsAddr)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")

	return cmd
}

func (a *app) runWatch(ctx context.Context, cmd *cobra.Command, root, metricsAddr string) error {
	reg, m, err := metric.NewRegistry()
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		srv, err := metric.NewServer(metricsAddr, reg)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Start(); err != nil {
				a.logger.Error("Metrics server failed", "error", err)
			}
		}()
		a.logger.Info("Metrics server started", "url", srv.Address())
		defer a.stopMetrics(srv)
	}

	w, err := watch.New(root, watch.Options{
		DebounceDelay: a.cfg.Watch.DebounceDelay,
		Extensions:    a.cfg.Watch.Extensions,
		ExcludeDirs:   a.cfg.Watch.ExcludeDirs,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	runner := a.runner(m)
	p := newPrinter(cmd.OutOrStdout())

	docs, err := w.Scan()
	if err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}
	results, err := runner.Run(ctx, docs)
	for _, res := range results {
		p.printSummary(res)
	}
	if err != nil {
		// Interrupted during the initial pass.
		return nil
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for ev := range w.Events() {
		if ev.Operation == watch.OpDelete {
			a.logger.Info("Ontology removed", "path", ev.Path)
			continue
		}
		p.printSummary(runner.Process(ctx, ev.Document))
	}

	a.logger.Info("Watcher stopped", "dropped_events", w.DroppedEvents())
	return nil
}

type stopper interface {
	Stop() error
}

func (a *app) stopMetrics(srv stopper) {
	if err := srv.Stop(); err != nil {
		a.logger.Warn("Failed to stop metrics server", "error", err)
	}
}
