package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var resetCmd = &cobra.Command{
	Use:   "reset [names|groups]",
	Short: "Clear the draw state of the active mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReset,
}

var modeCmd = &cobra.Command{
	Use:   "mode [names|groups] [rotation|weighted]",
	Short: "Switch a roster's mode",
	Long: `Set a roster's mode, or toggle it when no mode is given. Examples:

  mode
  mode groups
  mode names weighted`,
	Args: cobra.MaximumNArgs(2),
	RunE: runMode,
}

func runReset(_ *cobra.Command, args []string) error {
	kind, err := parseKindArg(args)
	if err != nil {
		return err
	}

	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Reset(ctx, &picker.ResetInput{Kind: kind})
	if err != nil {
		return errors.Wrap(err, "failed to reset")
	}

	fmt.Printf("Reset %s state for %s\n", resp.Mode, kind)
	return nil
}

func runMode(_ *cobra.Command, args []string) error {
	kind, err := parseKindArg(args)
	if err != nil {
		return err
	}

	var mode entities.Mode
	if len(args) == 2 {
		mode = entities.Mode(args[1])
		if !mode.Valid() {
			return errors.InvalidArgumentf("unknown mode %q, expected rotation or weighted", args[1])
		}
	}

	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetMode(ctx, &picker.SetModeInput{Kind: kind, Mode: mode})
	if err != nil {
		return errors.Wrap(err, "failed to set mode")
	}

	fmt.Printf("%s now use %s\n", kind, resp.Mode)
	return nil
}
