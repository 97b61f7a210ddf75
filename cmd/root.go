package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"tintshade/internal/app"
)

// Persistent flags shared by every subcommand.
var (
	debugMode  bool
	logLevel   string
	configPath string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

// Assigned in init to break the initialization cycle through
// newSelfUpdateCmd -> runSelfUpdate, which reads rootCmd.Version.
func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tintshade",
		Short: "Generate tints and shades of a base color",
		Long: `tintshade converts colors between hex, RGB and HSL and builds palettes of
lighter tints and darker shades from a single base color.

Palettes can be previewed in the terminal, edited interactively with
'tintshade tui', and exported as JSON, Figma-compatible JSON or CSS
custom properties.

Configuration:
  tintshade layers ~/.config/tintshade/config.yaml, then .tintshade/config.yaml
  in the current directory, then a .env file and TINTSHADE_* environment
  variables. Use --config to load a single file instead.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. invalid colors, out of range counts)
		SilenceUsage: true,
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newTUICmd())
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSelfUpdateCmd())

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the configured level")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file instead of the default locations")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored table output")
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tintshade version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication loads configuration and logging for a command run.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(debugMode, logLevel, configPath)
	cfg.LogOutput = cmd.ErrOrStderr()
	return app.NewApplication(cfg)
}
