package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wirefish/Wyrm/internal/compiler"
	"github.com/wirefish/Wyrm/internal/observability"
	"github.com/wirefish/Wyrm/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <layout-file>",
	Short: "Recompile a region layout whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringP("output", "o", "", "output path (default: <input basename>.wyrm)")
	watchCmd.Flags().String("manifest", "", "also write a YAML build manifest to this path")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	job, err := makeJob(cmd, cfg, args[0])
	if err != nil {
		return err
	}
	comp := compiler.New(logger)

	// A failed compile keeps the watch loop alive; only watcher failures
	// and signals end it.
	compileOnce := func() {
		if err := comp.Run(job); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	compileOnce()

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	w, err := watch.New(job.InputPath, debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", zap.String("input", job.InputPath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			logger.Info("input changed", zap.String("input", path))
			compileOnce()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", job.InputPath, err)
		}
	}
}
