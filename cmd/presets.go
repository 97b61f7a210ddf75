package cmd

import (
	"github.com/spf13/cobra"

	"tintshade/internal/cli"
)

func newPresetsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the configured preset colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}

			presets := application.Settings().Presets
			rows := make([][]string, 0, len(presets))
			for _, p := range presets {
				rows = append(rows, []string{p.Name, p.Color})
			}
			printer := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: f, NoColor: noColor})
			return printer.Print([]string{"name", "color"}, rows, presets)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}
