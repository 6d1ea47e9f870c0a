package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"lifedash/internal"
	"lifedash/internal/models"
	"lifedash/internal/structures"
)

func newVisibilityCommand(factory Factory, flags *structures.CliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visibility",
		Short: "Show or change which dashboard widgets are visible.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(factory, flags, func(core *internal.Core) error {
				return printVisibility(cmd.OutOrStdout(), core.Visibility.Get())
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the visibility of every widget.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCore(factory, flags, func(core *internal.Core) error {
					return printVisibility(cmd.OutOrStdout(), core.Visibility.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "toggle NAME",
			Short: "Flip the visibility of one widget.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				component, err := models.ParseComponent(args[0])
				if err != nil {
					return err
				}
				return withCore(factory, flags, func(core *internal.Core) error {
					if err := core.Visibility.Toggle(component); err != nil {
						return err
					}
					return printVisibility(cmd.OutOrStdout(), core.Visibility.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "set NAME true|false",
			Short: "Show or hide one widget.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				component, err := models.ParseComponent(args[0])
				if err != nil {
					return err
				}
				visible, err := strconv.ParseBool(args[1])
				if err != nil {
					return fmt.Errorf("parse visible: %w", err)
				}
				return withCore(factory, flags, func(core *internal.Core) error {
					if err := core.Visibility.SetVisibility(component, visible); err != nil {
						return err
					}
					return printVisibility(cmd.OutOrStdout(), core.Visibility.Get())
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Show every widget again.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withCore(factory, flags, func(core *internal.Core) error {
					core.Visibility.ResetToDefaults()
					return printVisibility(cmd.OutOrStdout(), core.Visibility.Get())
				})
			},
		},
	)

	return cmd
}

func printVisibility(w io.Writer, flags models.VisibilityFlags) error {
	for _, component := range models.Components {
		visible, err := flags.Get(component)
		if err != nil {
			return err
		}
		state := "hidden"
		if visible {
			state = "visible"
		}
		if _, err = fmt.Fprintf(w, "%-9s %s\n", component, state); err != nil {
			return err
		}
	}
	return nil
}
