package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/furiosa-ai/furiosa-version/internal/domain/buildinfo"
	"github.com/furiosa-ai/furiosa-version/internal/domain/catalog"
	"github.com/furiosa-ai/furiosa-version/internal/service/reporter"
	"github.com/furiosa-ai/furiosa-version/internal/version"
)

// examples is shown at the end of the help text.
const examples = `  # Print a git hash of libcompiler
  furiosa-version libcompiler --hash

  # Print a version and build time of libhal
  furiosa-version libhal --version --build-time`

// newRootCommand builds the command printing version metadata of a native library.
func newRootCommand() *cobra.Command {
	var (
		// configPath stores the path to the optional configuration YAML file.
		configPath string
		// logLevel overrides the configured diagnostic level.
		logLevel string
		// selection collects the --version, --hash and --build-time flags.
		selection buildinfo.Selection
	)

	names := catalog.Names()

	rootCmd := &cobra.Command{
		Use:   "furiosa-version <name>",
		Short: "Print version metadata of a Furiosa native library.",
		Long: `Loads a Furiosa shared library and prints the version, git hash and build time it reports.

The name is one of: ` + strings.Join(names, ", ") + `.
Without --version, --hash or --build-time all three fields are printed,
separated by single spaces, in the order version, hash, build time.`,
		Example:      examples,
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    names,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No library name: show help instead of failing.
			if len(args) == 0 {
				return cmd.Help()
			}

			options := &reporter.Options{
				ConfigPath: configPath,
				Name:       args[0],
				LogLevel:   logLevel,
				Selection:  selection,
				Output:     cmd.OutOrStdout(),
			}

			return reporter.Run(cmd.Context(), options)
		},
	}

	rootCmd.Flags().BoolVar(&selection.Version, "version", false, "print the version string")
	rootCmd.Flags().BoolVar(&selection.Hash, "hash", false, "print the git hash string")
	rootCmd.Flags().BoolVar(&selection.BuildTime, "build-time", false, "print the build time")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to optional configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "diagnostic log level (debug, info, warn, error)")

	version.AttachCobraVersionCommand(rootCmd)

	return rootCmd
}

// Execute runs the furiosa-version CLI and exits with non-zero status on error.
func Execute() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
