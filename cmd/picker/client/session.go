package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var eggsCmd = &cobra.Command{
	Use:   "eggs [on|off]",
	Short: "Turn egg cases on or off",
	Args:  cobra.ExactArgs(1),
	RunE:  runEggs,
}

var voiceCmd = &cobra.Command{
	Use:   "voice [on|off]",
	Short: "Turn spoken results on or off",
	Args:  cobra.ExactArgs(1),
	RunE:  runVoice,
}

var reseedCmd = &cobra.Command{
	Use:   "reseed [seed]",
	Short: "Reseed the random source",
	Long: `Reseed the random source. A fixed seed makes the rest of the session
reproducible; without one a fresh seed is drawn.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReseed,
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the roster file",
	Args:  cobra.NoArgs,
	RunE:  runReload,
}

func runEggs(_ *cobra.Command, args []string) error {
	enabled, err := parseToggle(args[0])
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

	resp, err := client.SetEggsEnabled(ctx, &picker.SetEggsEnabledInput{Enabled: enabled})
	if err != nil {
		return errors.Wrap(err, "failed to set eggs")
	}

	fmt.Printf("Eggs %s\n", onOff(resp.Enabled))
	return nil
}

func runVoice(_ *cobra.Command, args []string) error {
	enabled, err := parseToggle(args[0])
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

	resp, err := client.SetVoiceEnabled(ctx, &picker.SetVoiceEnabledInput{Enabled: enabled})
	if err != nil {
		return errors.Wrap(err, "failed to set voice")
	}

	if enabled && !resp.Enabled {
		fmt.Printf("Voice unavailable for this session\n")
		return nil
	}
	fmt.Printf("Voice %s\n", onOff(resp.Enabled))
	return nil
}

func runReseed(_ *cobra.Command, args []string) error {
	input := &picker.ReseedInput{}
	if len(args) == 1 {
		seed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return errors.InvalidArgumentf("seed must be an unsigned integer, got %q", args[0])
		}
		input.Seed = &seed
	}

	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Reseed(ctx, input)
	if err != nil {
		return errors.Wrap(err, "failed to reseed")
	}

	fmt.Printf("Reseeded (%d)\n", resp.Seed)
	return nil
}

func runReload(_ *cobra.Command, _ []string) error {
	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Reload(ctx, &picker.ReloadInput{})
	if err != nil {
		return errors.Wrap(err, "failed to reload")
	}

	fmt.Printf("Reloaded %d names and %d groups\n", resp.Names, resp.Groups)
	return nil
}
