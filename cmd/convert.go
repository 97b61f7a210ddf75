package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tintshade/internal/cli"
	"tintshade/internal/color"
	"tintshade/pkg/logging"
)

type convertOptions struct {
	to     string
	all    bool
	output string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color between hex, RGB and HSL",
		Long: `Converts a color string to another format.

With --to the conversion is lenient: input that cannot be parsed is printed
unchanged and a warning is logged. With --all the color is parsed strictly
and shown in every supported format, including CMYK and HSV.

Examples:
  tintshade convert "#3b82f6" --to rgb
  tintshade convert "rgb(59, 130, 246)" --to hsl
  tintshade convert 3b82f6 --all -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.to, "to", "hex", "Target format: hex, rgb or hsl")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Show the color in every format")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format for --all: table, json or yaml")
	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *convertOptions) error {
	if _, err := newApplication(cmd); err != nil {
		return err
	}

	if opts.all {
		return describeColor(cmd, input, opts.output)
	}

	target, err := color.ParseFormat(opts.to)
	if err != nil {
		return err
	}
	res := color.Convert(input, target)
	if !res.OK() {
		logging.Warn(logging.SubsystemColor, "%s; printing the input unchanged", res.Warning.Error())
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	return nil
}

func describeColor(cmd *cobra.Command, input, output string) error {
	f, err := cli.ParseOutputFormat(output)
	if err != nil {
		return err
	}
	hex, err := color.Normalize(input)
	if err != nil {
		return err
	}
	sw, err := color.Describe(hex)
	if err != nil {
		return err
	}
	printer := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: f, NoColor: noColor})
	return printer.PrintKeyValue(sw.Entries(), sw)
}
