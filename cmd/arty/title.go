package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

func newTitleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "title [new title]",
		Short: "Show or change the collection title",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				if len(args) > 0 {
					if err := c.SetTitle(cmd.Context(), strings.Join(args, " ")); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.Title())
				return nil
			})
		},
	}
}
