package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

type listOutput struct {
	Title     string       `json:"title"`
	Directory string       `json:"directory"`
	Images    []core.Image `json:"images"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		listJSON bool
		filter   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the images of the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(_ *core.Service, c *core.Collection) error {
				images := c.Images()
				if filter != "" {
					field, query, ok := strings.Cut(filter, "=")
					if !ok {
						return fmt.Errorf("filter must look like field=text, got %q", filter)
					}
					var err error
					images, err = c.Filter(field, query)
					if err != nil {
						return err
					}
				}

				out := cmd.OutOrStdout()
				if listJSON {
					if images == nil {
						images = []core.Image{}
					}
					return writeJSON(out, listOutput{
						Title:     c.Title(),
						Directory: c.WorkDirectory(),
						Images:    images,
					})
				}

				fmt.Fprintln(out, c.Title())
				if len(images) == 0 {
					fmt.Fprintln(out, "No images.")
					return nil
				}

				rows := make([][]string, 0, len(images))
				for i, img := range images {
					size, modified := "missing", "-"
					if info, err := os.Stat(c.GetAbsolutePath(img)); err == nil {
						size = humanize.Bytes(uint64(info.Size()))
						modified = humanize.Time(info.ModTime())
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						img.Filename,
						valueOrDash(img.Title),
						valueOrDash(img.Artist),
						valueOrDash(img.Year),
						size,
						modified,
					})
				}
				fmt.Fprintln(out, renderTable(out,
					[]string{"#", "Filename", "Title", "Artist", "Year", "Size", "Modified"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&filter, "filter", "", "Only show images whose field contains text (field=text)")
	return cmd
}
