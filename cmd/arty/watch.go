package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	lifecycleadapter "github.com/aretw0/arty/pkg/adapters/lifecycle"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var sync bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print image changes in the managed folder until interrupted",
		Long: `Watch reports image files created, modified or removed in the managed
folder. With --sync every change also reloads the collection, so new files are
recorded right away.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			dir, err := ctx.directory(nil)
			if err != nil {
				return err
			}

			// Load first so the folder is validated and reconciled before watching.
			c, err := svc.Load(cmd.Context(), dir)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			events, err := svc.Watch(signalCtx, c.WorkDirectory())
			if err != nil {
				return err
			}

			src := lifecycleadapter.NewSource(events)
			if err := src.Start(signalCtx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "watching %s (Ctrl+C to stop)\n", c.WorkDirectory())
			for e := range src.Events() {
				fmt.Fprintln(out, e.String())
				if !sync {
					continue
				}
				if _, err := svc.Load(signalCtx, c.WorkDirectory()); err != nil && signalCtx.Err() == nil {
					slog.Warn("failed to reload collection", "dir", c.WorkDirectory(), "error", err)
				}
			}

			// A signal ends the watch normally; only a cancelled parent is an error.
			return cmd.Context().Err()
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "Reload the collection on every change")
	return cmd
}
