package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/logger"
	"github.com/Norgate-AV/dvrc/internal/version"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

// RootCmd is the root command for the dvrc CLI application.
var RootCmd = &cobra.Command{
	Use:          "dvrc",
	Short:        "dvrc - Control DaVinci Resolve from the command line",
	Version:      version.GetVersion(),
	RunE:         runRoot,
	SilenceUsage: true, // Don't show usage on runtime errors
}

func init() {
	// Set custom version template to show full version info
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// Add flags
	RootCmd.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolP("logs", "l", false, "print the current log file to stdout and exit")
	RootCmd.PersistentFlags().StringP("path", "p", "", "path to the Resolve executable (overrides RESOLVE_PATH)")
}

// runRoot handles the bare invocation, which only makes sense with --logs.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg := NewConfigFromFlags(cmd)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return err
	}

	return cmd.Help()
}

// handleLogsFlag processes the --logs flag and exits if needed
func handleLogsFlag(cfg *Config, exitFunc func(int)) error {
	if !cfg.ShowLogs {
		return nil
	}

	if err := logger.PrintLogFile(nil, logger.LoggerOptions{}); err != nil {
		if os.IsNotExist(err) {
			logPath := logger.GetLogPath(logger.LoggerOptions{})
			fmt.Fprintf(os.Stderr, "Log file does not exist: %s\n", logPath)
			exitFunc(1)
		}

		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		exitFunc(1)
	}

	exitFunc(0)
	return nil // Won't actually reach here due to exitFunc
}

// initializeLogger creates a logger for a command run
func initializeLogger(cfg *Config) (logger.LoggerInterface, error) {
	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		Compress: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

// setupRun is the shared preamble for subcommands: config, logger, env
// override for --path, installation check, panic logging.
func setupRun(cmd *cobra.Command) (*Config, logger.LoggerInterface, func(), error) {
	cfg := NewConfigFromFlags(cmd)

	if err := handleLogsFlag(cfg, os.Exit); err != nil {
		return nil, nil, nil, err
	}

	log, err := initializeLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug("Starting dvrc", slog.String("command", cmd.Name()))

	if cfg.ExecutablePath != "" {
		// Downstream path lookups read RESOLVE_PATH.
		if err := os.Setenv("RESOLVE_PATH", cfg.ExecutablePath); err != nil {
			log.Close()
			return nil, nil, nil, fmt.Errorf("failed to apply executable path override: %w", err)
		}
	}

	cleanup := func() {
		if r := recover(); r != nil {
			log.Error("PANIC RECOVERED",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			fmt.Fprintf(os.Stderr, "\n*** PANIC: %v ***\n", r)
			fmt.Fprintf(os.Stderr, "Check log file for details\n")
		}

		log.Close()
	}

	return cfg, log, cleanup, nil
}

// newClient validates the installation and builds a scripting client.
func newClient(log logger.LoggerInterface) (*resolve.Client, error) {
	if err := resolve.ValidateInstallation(); err != nil {
		log.Error("Resolve installation check failed", slog.Any("error", err))
		return nil, err
	}

	return resolve.NewClient(log), nil
}
