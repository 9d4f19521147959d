package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/mirror"
)

var (
	mirrorSource string
	mirrorDest   string
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy new camera files into a folder",
	Long: `Watch a folder (usually a camera import folder) and copy every new or
changed file into the destination, keeping the directory layout.`,
	RunE: runMirror,
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorSource, "source", "", "folder to watch (default $PICKER_MIRROR_SOURCE)")
	mirrorCmd.Flags().StringVar(&mirrorDest, "dest", "", "folder to copy into (default $PICKER_MIRROR_DEST)")
}

func runMirror(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := &mirror.Config{Source: settings.MirrorSource, Dest: settings.MirrorDest}
	if cmd.Flags().Changed("source") {
		cfg.Source = mirrorSource
	}
	if cmd.Flags().Changed("dest") {
		cfg.Dest = mirrorDest
	}

	m, err := mirror.New(cfg)
	if err != nil {
		return err
	}

	return m.Run(ctx)
}
