// Package cmd provides the CLI commands for appledocsmcp.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/appledeepdocs/appledocsmcp/internal/config"
	"github.com/appledeepdocs/appledocsmcp/internal/logging"
	"github.com/appledeepdocs/appledocsmcp/pkg/version"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the appledocsmcp CLI. Running it
// with no subcommand starts the MCP server on stdio, so MCP clients can
// point straight at the binary.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appledocsmcp",
		Short: "MCP server for Xcode's hidden documentation and Apple developer resources",
		Long: `appledocsmcp indexes the AdditionalDocumentation markdown corpora hidden
inside installed Xcode versions and serves them over the Model Context
Protocol, alongside Apple Developer documentation, Swift Evolution
proposals, Apple's open-source repositories, WWDC notes, and the Human
Interface Guidelines.

Run 'appledocsmcp' with no arguments to start the MCP server on stdio.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runServe(cmd.Context(), "stdio")
		},
	}

	cmd.SetVersionTemplate("appledocsmcp version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.appledocsmcp/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.appledocsmcp/logs/")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = teardownLogging

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupLogging configures file logging for every command. Logs are
// mirrored to stderr only for interactive terminal use; the MCP stdio
// transport must keep both stdout and stderr clean.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Server.LogLevel
	if debugMode {
		logCfg.Level = "debug"
	}

	name := cmd.Name()
	serving := name == "serve" || name == "appledocsmcp"
	logCfg.WriteToStderr = !serving && isatty.IsTerminal(os.Stderr.Fd())

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// loadConfig loads the configuration from --config or the default path.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.LoadDefault()
}
