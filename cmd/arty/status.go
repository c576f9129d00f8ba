package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var statusJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show files added or removed since the collection was last saved",
		Long: `Status compares the .collection sidecar with the folder without changing
either. Added files are picked up by the next load; missing entries are kept
with their metadata.`,
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

			c, err := svc.Inspect(cmd.Context(), dir)
			if err != nil {
				return err
			}
			report, err := svc.Status(cmd.Context(), c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if statusJSON {
				return writeJSON(out, report)
			}

			if report.Clean() {
				fmt.Fprintf(out, "%s is up to date (%d images)\n", c.Title(), c.Len())
				return nil
			}

			rows := make([][]string, 0, len(report.Added)+len(report.Missing))
			for _, name := range report.Added {
				rows = append(rows, []string{"added", name})
			}
			for _, name := range report.Missing {
				rows = append(rows, []string{"missing", name})
			}
			fmt.Fprintln(out, renderTable(out, []string{"State", "Filename"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	return cmd
}
