/*
Copyright © 2025 The jarcraft authors
*/
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jarcraft/jarcraft/pkg/buildinfo"
	"github.com/jarcraft/jarcraft/pkg/config"
	"github.com/jarcraft/jarcraft/pkg/exitcode"
	"github.com/jarcraft/jarcraft/pkg/logger"
)

// errInvalidOptions marks a run that failed option validation. The individual
// error lines have already been printed by the time it is returned.
var errInvalidOptions = errors.New("invalid options")

// errFileAccess marks a failure to open or read a user-supplied file.
var errFileAccess = errors.New("file access failed")

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jarcraft",
		Short: "JVM dependency resolution and launcher generation",
		Long: `Jarcraft resolves JVM dependencies and generates standalone launchers
from resolved classpaths.

Examples:
   jarcraft bootstrap org:app:1.0.0 -o app   # Generate a launcher
   jarcraft fetch org:lib:2.3.1              # Resolve dependencies
   jarcraft version                          # Show version`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().String("config", "", "Config file (default: .jarcraft.yaml in . or $HOME)")

	// Wire Cobra's built-in --version using jarcraft's binary version
	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("jarcraft {{.Version}}\n")

	return cmd
}

// registerSubcommands adds fresh subcommand instances to the root command, so
// every tree built through it has its own flag state.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(newBootstrapCommand())
	cmd.AddCommand(newFetchCommand())
	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newEnvinfoCommand())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, errInvalidOptions) {
			os.Exit(exitcode.ValidationError)
		}
		if errors.Is(err, errFileAccess) {
			logger.Error("Command execution failed", logger.Err(err))
			os.Exit(exitcode.FileSystemError)
		}
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	// Register all subcommands with the production rootCmd
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	logger.Initialize(logger.Config{
		Level:    logger.ParseLevel(logLevelStr),
		UseColor: !noColor,
		JSON:     jsonLogs,
	})
}

// loadToolConfig loads the tool configuration, honoring the --config flag.
func loadToolConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
