package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lifedash/internal/structures"
)

func newServeCommand(ctx context.Context, factory Factory, flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP daemon until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.App(flags)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}
			defer app.Close()
			return app.Run(ctx)
		},
	}
}
