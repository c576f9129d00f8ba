package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newSortCommand(ctx *commandContext) *cobra.Command {
	var descending bool

	cmd := &cobra.Command{
		Use:   "sort [field]",
		Short: "Reorder the collection by a field",
		Long:  `Sort reorders the collection by a field. Images with the field unset go last.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				if err := c.SortBy(cmd.Context(), args[0], descending); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sorted %d images by %s\n", c.Len(), args[0])
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&descending, "desc", false, "Sort in descending order")
	return cmd
}
