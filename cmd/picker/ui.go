package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/instance"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
	"github.com/KirkDiggler/name-picker/internal/tui"
)

var (
	uiSeed  uint64
	uiEggs  bool
	uiVoice bool
	uiGRPC  bool
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Run the picker in the terminal",
	Long: `Run the interactive picker. Only one picker UI may run per machine;
a second launch exits with an error.`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().Uint64Var(&uiSeed, "seed", 0, "fixed seed for a reproducible session")
	uiCmd.Flags().BoolVar(&uiEggs, "eggs", true, "apply egg cases")
	uiCmd.Flags().BoolVar(&uiVoice, "voice", true, "speak results")
	uiCmd.Flags().BoolVar(&uiGRPC, "grpc", false, "also accept remote commands on the gRPC port")
}

func runUI(cmd *cobra.Command, _ []string) error {
	lock, err := instance.Acquire(settings.InstancePort)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	restoreLogs, err := logToFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer restoreLogs()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := buildRuntime(ctx, settings, pickerOptions{
		seed:    uiSeed,
		seeded:  cmd.Flags().Changed("seed"),
		eggs:    uiEggs,
		voice:   uiVoice,
		speaker: true,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	autoClose := true
	if status, err := rt.service.GetStatus(ctx, &picker.GetStatusInput{}); err == nil {
		autoClose = status.Status.AutoClose
	}

	app, err := tui.New(&tui.Config{
		PickerService: rt.service,
		Context:       ctx,
		AutoClose:     autoClose,
	})
	if err != nil {
		return err
	}

	served := make(chan error, 1)
	if uiGRPC {
		srv, err := newGRPCServer(rt.service)
		if err != nil {
			return err
		}
		go func() { served <- serveGRPC(ctx, srv, settings.GRPCPort) }()
	} else {
		close(served)
	}

	slog.Info("Starting picker UI", "config", settings.Config, "instance", lock.Addr())
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "terminal UI failed")
	}

	cancel()
	if err := <-served; err != nil {
		slog.Error("gRPC server stopped", "error", err)
	}
	return nil
}
