package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/cpu-scheduler/config"
	"github.com/cpusched/cpu-scheduler/internal/logging"
)

var (
	configPath string // Path to a config file; empty searches ./config.yaml
	logLevel   string // Log verbosity level, overrides config
	logFormat  string // Log format (text or json), overrides config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpusched",
	Short:         "CPU scheduling simulator (FCFS and non-preemptive SJF)",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.SchedulerConfig, error) {
	var shared *config.SchedulerConfig
	var err error
	if configPath == "" {
		shared, err = config.GetSchedulerConfig()
	} else {
		shared, err = config.Load(configPath)
	}
	if err != nil {
		return nil, err
	}

	cfg := *shared
	if cmd.Flags().Changed("log") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	return &cfg, nil
}

// newLogger builds the process logger; a bad level or format is fatal.
func newLogger(cfg *config.SchedulerConfig) *logrus.Logger {
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("Invalid logging configuration: %v", err)
	}
	return logger
}

// init sets up persistent flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(algorithmsCmd)
}
