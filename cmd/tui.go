package cmd

import (
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	var preset string
	cmd := &cobra.Command{
		Use:   "tui [color]",
		Short: "Edit a palette interactively",
		Long: `Opens the interactive palette editor.

Adjust the number of tints and shades, cycle formats and presets, copy
values to the clipboard and export without leaving the terminal. Press
'h' inside the editor for the full key list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			base, err := application.ResolveBase(arg, preset)
			if err != nil {
				return err
			}
			return application.RunTUI(cmd.Context(), base)
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "Start from a named preset")
	return cmd
}
