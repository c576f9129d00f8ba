package main

import (
	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/arty/pkg/core"
)

type componentInfo struct {
	Type  string `json:"type"`
	State any    `json:"state"`
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the internal state of the service and its repository as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCollection(cmd.Context(), func(svc *core.Service, c *core.Collection) error {
				components := []componentInfo{describe(svc)}
				if repo, ok := svc.Repository().(introspection.Introspectable); ok {
					components = append(components, describe(repo))
				}

				return writeJSON(cmd.OutOrStdout(), struct {
					Directory  string          `json:"directory"`
					Title      string          `json:"title"`
					Images     int             `json:"images"`
					Components []componentInfo `json:"components"`
				}{
					Directory:  c.WorkDirectory(),
					Title:      c.Title(),
					Images:     c.Len(),
					Components: components,
				})
			})
		},
	}
}

func describe(v introspection.Introspectable) componentInfo {
	info := componentInfo{Type: "unknown", State: v.State()}
	if comp, ok := v.(introspection.Component); ok {
		info.Type = comp.ComponentType()
	}
	return info
}
