package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add [file...]",
		Short: "Copy image files into the collection",
		Long: `Add copies each file into the managed folder and records it in the
collection. Files that are not jpg, jpeg, png, webp or tiff images are
rejected; the remaining files are still added.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				var errs []error
				for _, source := range args {
					img, err := c.AddImage(cmd.Context(), source)
					if err != nil {
						slog.Warn("failed to add image", "source", source, "error", err)
						errs = append(errs, fmt.Errorf("%s: %w", source, err))
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", img.Filename)
				}
				return errors.Join(errs...)
			})
		},
	}
}
