package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifedash/internal"
	"lifedash/internal/di"
	"lifedash/internal/structures"
)

// Factory builds the application graph for a command. Commands that only touch the
// store use Core; serve uses App.
type Factory struct {
	Core func(flags *structures.CliFlags) (*internal.Core, error)
	App  func(flags *structures.CliFlags) (*internal.App, error)
}

// NewRootCommand creates the top-level Cobra command and its subcommands.
func NewRootCommand(ctx context.Context, factory Factory) *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:           "lifedash",
		Short:         "Keep dashboard state, visibility toggles and backups.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to the config file")
	cmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "Mirror logs to stderr")

	cmd.AddCommand(
		newServeCommand(ctx, factory, flags),
		newExportCommand(factory, flags),
		newImportCommand(factory, flags),
		newClearCommand(factory, flags),
		newVisibilityCommand(factory, flags),
	)

	return cmd
}

// ExecuteCommand runs the root command wired through di.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, Factory{Core: di.InitCore, App: di.InitApp})
	return cmd.Execute()
}

// Main is a helper used by cmd/lifedash/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// withCore opens the core for the duration of fn.
func withCore(factory Factory, flags *structures.CliFlags, fn func(core *internal.Core) error) error {
	core, err := factory.Core(flags)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer core.Close()
	return fn(core)
}
