package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		verbose    bool
		configFlag string
		dirFlag    string
		formatFlag string
		lockFlag   bool
	)

	ctx := newCommandContext(&configFlag, &dirFlag, &formatFlag, &lockFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:   "arty",
		Short: "Curate folders of artwork images with a metadata sidecar",
		Long: `Arty keeps the metadata of the images in a folder (title, artist, year,
technique, dimensions, conservation site) in a hidden .collection file and
keeps it in step with the files on disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			opts := &slog.HandlerOptions{
				Level: ctx.logLevel(),
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Managed directory (defaults to the nearest folder holding a .collection)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Sidecar format: json or yaml (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&lockFlag, "lock", false, "Hold an advisory lock while reading and writing the sidecar")

	rootCmd.AddCommand(newLoadCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newSetCommand(ctx))
	rootCmd.AddCommand(newSortCommand(ctx))
	rootCmd.AddCommand(newMoveCommand(ctx))
	rootCmd.AddCommand(newTitleCommand(ctx))
	rootCmd.AddCommand(newRefCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
