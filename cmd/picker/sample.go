package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/config"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write an example roster file",
	Long: `Write an example roster file. The format follows the extension
(.json, .yaml or .yml). Existing files are never replaced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	path := settings.Config
	if len(args) == 1 {
		path = args[0]
	}

	if err := config.WriteSample(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample roster to %s\n", path)
	return nil
}
