// Package main is the entry point for the name picker
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/cmd/picker/client"
	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

var (
	configPath string
	logLevel   string
	logFile    string

	// settings is filled from the environment before any command runs
	settings *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "picker",
	Short: "Classroom name picker",
	Long: `Picker draws names and groups from a roster, either in rotation or by
weighted chance, and shows each result with its configured presentation.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).Exit())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "roster file (default $PICKER_CONFIG or config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log destination for the terminal UI")

	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadSettings reads the environment and lets explicit flags win
func loadSettings(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		loaded.Config = configPath
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		loaded.LogFile = logFile
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	settings = loaded
	return setupLogging(os.Stderr)
}
