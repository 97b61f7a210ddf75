package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tintshade/internal/export"
	"tintshade/pkg/logging"
)

type exportOptions struct {
	paletteOptions
	kind   string
	out    string
	stdout bool
}

func newExportCmd() *cobra.Command {
	opts := &exportOptions{}
	cmd := &cobra.Command{
		Use:   "export [color]",
		Short: "Export a palette as JSON, Figma JSON or CSS",
		Long: `Generates a palette and writes it to a file.

Kinds:
  json   color-palette-<hex>.json with the base color, tints and shades
  figma  figma-palette-<hex>.json with a document, styles and import notes
  css    palette-<hex>.css with custom properties under :root

Files go to --out, or to export.directory from the configuration, or to
the current directory.

Examples:
  tintshade export "#3b82f6" --kind figma
  tintshade export --preset "Sunset Orange" --kind css --stdout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "json", "Export kind: json, figma or css")
	cmd.Flags().StringVar(&opts.out, "out", "", "Directory to write into (default from config)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Print the export instead of writing a file")
	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *exportOptions) error {
	kind, err := export.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	p, format, err := opts.resolve(cmd, application, args)
	if err != nil {
		return err
	}

	data, err := application.Exporter().Render(kind, p, format)
	if err != nil {
		return err
	}
	if opts.stdout {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	dir := opts.out
	if dir == "" {
		dir = application.Settings().Export.Directory
	}
	path, err := export.WriteFile(dir, export.FileName(kind, p), data)
	if err != nil {
		logging.Error(logging.SubsystemExport, err, "Export failed")
		return err
	}
	logging.Info(logging.SubsystemExport, "Wrote %s export to %s", kind, path)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
