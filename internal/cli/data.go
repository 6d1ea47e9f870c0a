package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"lifedash/internal"
	"lifedash/internal/backup"
	"lifedash/internal/structures"
)

var errConfirmRequired = errors.New("refusing to delete all data without --yes")

func newExportCommand(factory Factory, flags *structures.CliFlags) *cobra.Command {
	var (
		out      string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of all dashboard data.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(factory, flags, func(core *internal.Core) error {
				if out == "" && !compress {
					data, err := backup.EncodeSnapshot(core.Snapshots.GetSnapshot())
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}

				target := exportPath(out, compress, time.Now())
				if err := core.FileManager.SaveToFile(target); err != nil {
					return fmt.Errorf("export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout, or a dated file with --compress)")
	cmd.Flags().BoolVar(&compress, "compress", false, "Write a zstd-compressed .zst file")

	return cmd
}

func exportPath(out string, compress bool, now time.Time) string {
	if out == "" {
		out = backup.DefaultFileName(now)
	}
	if compress && !strings.HasSuffix(out, ".zst") {
		out += ".zst"
	}
	return out
}

func newImportCommand(factory Factory, flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore dashboard data from a backup file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(factory, flags, func(core *internal.Core) error {
				candidate, err := core.FileManager.Load(args[0])
				if err != nil {
					return err
				}
				if !core.Snapshots.ValidateSnapshot(candidate) {
					return backup.ErrInvalidSnapshot
				}
				if err = core.Snapshots.RestoreSnapshot(candidate); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
				return nil
			})
		},
	}
}

func newClearCommand(factory Factory, flags *structures.CliFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all dashboard data from the store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errConfirmRequired
			}
			return withCore(factory, flags, func(core *internal.Core) error {
				if err := core.Snapshots.ClearAll(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All data cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}
