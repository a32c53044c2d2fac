package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/projectpokemon/recoversave/internal/config"
	"github.com/projectpokemon/recoversave/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	logLevel   string
	logFile    string
)

var (
	cfg       = config.Default()
	logCloser io.Closer
	num       = message.NewPrinter(language.English)
)

var rootCmd = &cobra.Command{
	Use:   "recoversave",
	Short: "Rebuild corrupted handheld save images",
	Long: `recoversave reconstructs damaged 128 KiB third-generation save images.

For every logical block it keeps the best surviving copy, brings all blocks
to the newest save generation, reseals checksums and writes both save slots
identically. Half-size dumps are inflated to a full image. The input file is
never modified; the result is written next to it.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Write JSON logs to a rotating file")
}

// setup loads the configuration and starts logging. Flags win over the file.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadDefault(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	level := cfg.Logs.Level
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	if verbose && logLevel == "" {
		lvl = slog.LevelDebug
	}
	file := cfg.Logs.File
	if logFile != "" {
		file = logFile
	}

	closer, err := logger.Init(logger.Options{
		Enabled:    verbose || file != "" || logLevel != "",
		Level:      lvl,
		File:       file,
		MaxSizeMB:  cfg.Logs.MaxSizeMB,
		MaxBackups: cfg.Logs.MaxBackups,
		MaxAgeDays: cfg.Logs.MaxAgeDays,
		Compress:   cfg.Logs.Compress,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logCloser = closer
	logger.Debug("configuration loaded", "config", configPath, "suffix", cfg.OutputSuffix)
	return nil
}

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	os.Exit(1)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// bytesLabel renders n with thousands separators.
func bytesLabel(n int64) string {
	return num.Sprintf("%d bytes", n)
}
