package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "load [dir]",
		Short: "Open a folder, creating or reconciling its .collection",
		Long: `Load opens a folder of images. On first use it creates the hidden
.collection sidecar; afterwards it appends any image files copied in since the
last run, keeping known entries and their metadata untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}
			dir, err := ctx.directory(args)
			if err != nil {
				return err
			}

			c, err := svc.Load(cmd.Context(), dir)
			if err != nil {
				return err
			}

			bare := 0
			for _, img := range c.Images() {
				if img.IsBare() {
					bare++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d images (%d without metadata) in %s\n",
				c.Title(), c.Len(), bare, c.WorkDirectory())
			return nil
		},
	}
}
