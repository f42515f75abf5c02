package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

func (a *App) documentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "documents",
		Short: "List uploaded documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.deps.Guard.Require(cmd.Context(), model.ViewDashboard, func(ctx context.Context) error {
				docs, err := a.deps.Backend.Documents(ctx)
				if err != nil {
					return fmt.Errorf("failed to list documents: %w", err)
				}
				a.present.Documents(docs)
				return nil
			})
		},
	}
}

func (a *App) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := a.deps.Backend.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to check health: %w", err)
			}
			a.present.Health(h)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tmpl := `Build version: %s
Build date: %s
Build commit: %s
`
			fmt.Fprintf(cmd.OutOrStdout(), tmpl, a.deps.Build.Version, a.deps.Build.Date, a.deps.Build.Commit)
		},
	}
}
