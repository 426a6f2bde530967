package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memcore/internal/config"
	"github.com/joshuapare/memcore/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	logLevel   string

	// cfg is loaded before every command runs.
	cfg = config.Default()

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "memctl",
	Short: "Inspect counts, indexes, arrays and shticks",
	Long: `memctl drives the memcore primitives: it resolves indexes against
counts, shows how a Shtick switches between its inline and heap
representations, prints capacity growth sequences, and benchmarks arrays
on the heap and manual allocator backends.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := closeLog(); err != nil {
			printError("closing log: %v\n", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default: nearest "+config.FileName+")")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Enable logging to stderr at this level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and starts the logger. Flags win over the
// config file.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		return err
	}

	opts := logger.Options{
		Enabled: cfg.Log.Enabled,
		JSON:    cfg.Log.JSON,
		File:    cfg.Log.File,
	}
	level := cfg.Log.Level
	if logLevel != "" {
		opts.Enabled = true
		level = logLevel
	}
	if opts.Enabled {
		if opts.Level, err = logger.ParseLevel(level); err != nil {
			return err
		}
	}
	if closeLog, err = logger.Init(opts); err != nil {
		return err
	}
	logger.Debug("config loaded", "path", cfg.Path, "backend", cfg.Alloc.Backend)
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
