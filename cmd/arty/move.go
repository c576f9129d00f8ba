package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move [filename] [position]",
		Short: "Move an image to a position in the collection",
		Long:  `Move places an image at a 1-based position, as shown by "arty list".`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil || position < 1 {
				return fmt.Errorf("position must be a positive number, got %q", args[1])
			}

			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				if err := c.Move(cmd.Context(), args[0], position-1); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "moved %s to %d\n", args[0], position)
				return nil
			})
		},
	}
}
