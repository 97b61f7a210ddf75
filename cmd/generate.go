package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"tintshade/internal/app"
	"tintshade/internal/cli"
	"tintshade/internal/color"
	"tintshade/internal/export"
	"tintshade/internal/palette"
	"tintshade/internal/tui/view"
	"tintshade/pkg/logging"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

const previewWidth = 80

// paletteOptions are the flags shared by generate and export.
type paletteOptions struct {
	tints  int
	shades int
	format string
	preset string
}

func (o *paletteOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.tints, "tints", "t", 0, "Number of tints (default from config)")
	cmd.Flags().IntVarP(&o.shades, "shades", "s", 0, "Number of shades (default from config)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Color format: hex, rgb or hsl (default from config)")
	cmd.Flags().StringVarP(&o.preset, "preset", "p", "", "Use a named preset as the base color")
}

// resolve builds the palette from flags, arguments and configuration.
func (o *paletteOptions) resolve(cmd *cobra.Command, application *app.Application, args []string) (palette.Palette, color.Format, error) {
	settings := application.Settings()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	base, err := application.ResolveBase(arg, o.preset)
	if err != nil {
		return palette.Palette{}, 0, err
	}

	tints, shades := settings.Tints, settings.Shades
	if cmd.Flags().Changed("tints") {
		tints = o.tints
	}
	if cmd.Flags().Changed("shades") {
		shades = o.shades
	}

	format := settings.ColorFormat()
	if o.format != "" {
		if format, err = color.ParseFormat(o.format); err != nil {
			return palette.Palette{}, 0, err
		}
	}

	p, err := application.Palette(base, tints, shades)
	if err != nil {
		return palette.Palette{}, 0, err
	}
	return p, format, nil
}

type generateOptions struct {
	paletteOptions
	noPreview bool
	copy      bool
	output    string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [color]",
		Short: "Generate tints and shades of a base color",
		Long: `Generates lighter tints and darker shades of a base color.

The base color may be given as #rrggbb, #rgb, rrggbb, rgb(r, g, b) or
hsl(h, s%, l%). Without an argument the --preset or the configured base
color is used. Counts default to the configured values and may not exceed
maxVariants.

Examples:
  tintshade generate "#3b82f6" --tints 5 --shades 5
  tintshade generate --preset "Forest Green" --format hsl
  tintshade generate f97316 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "Do not print the color swatches")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the generated values to the clipboard")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Print as table, json or yaml instead of the swatch list")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	p, format, err := opts.resolve(cmd, application, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		if err := printPalette(cmd, p, format, opts.output); err != nil {
			return err
		}
	} else {
		if !opts.noPreview {
			fmt.Fprintln(out, view.Strip(p, -1, previewWidth))
		}
		fmt.Fprint(out, view.List(p, format))
	}

	if opts.copy {
		values := paletteValues(p, format)
		if err := writeClipboard(strings.Join(values, "\n")); err != nil {
			logging.Error(logging.SubsystemPalette, err, "Failed to copy palette")
			return fmt.Errorf("failed to copy palette to clipboard: %w", err)
		}
		logging.Info(logging.SubsystemPalette, "Copied %d colors to the clipboard", len(values))
	}
	return nil
}

func printPalette(cmd *cobra.Command, p palette.Palette, format color.Format, output string) error {
	f, err := cli.ParseOutputFormat(output)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, p.Len())
	for _, v := range p.Variants() {
		rows = append(rows, []string{v.Name(), v.Hex, color.ConvertColor(v.Hex, format)})
	}
	printer := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: f, NoColor: noColor})
	return printer.Print([]string{"name", "hex", "value"}, rows, export.JSONPalette(p, format))
}

func paletteValues(p palette.Palette, format color.Format) []string {
	values := make([]string, 0, p.Len())
	for _, v := range p.Variants() {
		values = append(values, color.ConvertColor(v.Hex, format))
	}
	return values
}
