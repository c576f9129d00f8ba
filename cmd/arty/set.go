package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set [filename] [field=value...]",
		Short: "Set metadata fields of an image",
		Long: `Set updates descriptive fields of one image. Known fields: ` +
			strings.Join(core.MetadataFields, ", ") + `.
An empty value clears the field.`,
		Example: `  arty set water-lilies.jpg artist="Claude Monet" year=1906`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				img, ok := c.Get(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", core.ErrImageNotFound, args[0])
				}

				for _, pair := range args[1:] {
					field, value, ok := strings.Cut(pair, "=")
					if !ok {
						return fmt.Errorf("expected field=value, got %q", pair)
					}
					var err error
					img, err = img.SetField(strings.TrimSpace(field), strings.TrimSpace(value))
					if err != nil {
						return err
					}
				}

				if err := c.UpdateImage(cmd.Context(), img); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", img.Filename)
				return nil
			})
		},
	}
}
