package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newRefCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ref [filename...]",
		Short: "Print academic references",
		Long: `Ref prints the citation of the given images, or of every image in the
collection. Images missing required metadata are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				out := cmd.OutOrStdout()

				if len(args) == 0 {
					refs, errs := c.References()
					for _, ref := range refs {
						fmt.Fprintln(out, ref)
					}
					for _, err := range errs {
						slog.Warn("skipped image", "error", err)
					}
					return nil
				}

				var errs []error
				for _, name := range args {
					img, ok := c.Get(name)
					if !ok {
						errs = append(errs, fmt.Errorf("%w: %s", core.ErrImageNotFound, name))
						continue
					}
					ref, err := img.ToReference()
					if err != nil {
						errs = append(errs, err)
						continue
					}
					fmt.Fprintln(out, ref)
				}
				return errors.Join(errs...)
			})
		},
	}
}
