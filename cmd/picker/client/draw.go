package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var drawCmd = &cobra.Command{
	Use:   "draw [names|groups]",
	Short: "Draw the next name or group",
	Long: `Draw from a roster using its current mode. Examples:

  draw
  draw groups`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDraw,
}

var previewCmd = &cobra.Command{
	Use:   "preview [entry]",
	Short: "Show how an entry would be presented",
	Long:  `Resolve an entry's presentation without drawing it or changing any state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewAnnounce bool

func init() {
	previewCmd.Flags().BoolVar(&previewAnnounce, "announce", false, "speak the result on the server")
}

func runDraw(_ *cobra.Command, args []string) error {
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

	resp, err := client.Draw(ctx, &picker.DrawInput{Kind: kind})
	if err != nil {
		if errors.IsCommitted(err) {
			return errors.Wrap(err, "draw was recorded but could not be presented")
		}
		return errors.Wrap(err, "failed to draw")
	}

	fmt.Printf("🎯 %s\n", resp.Presentation.DisplayText)
	fmt.Printf("  Entry: %s\n", resp.Entry.ID)
	fmt.Printf("  Mode: %s\n", resp.Mode)
	fmt.Printf("  Color: %s\n", resp.Presentation.Color)
	if resp.Presentation.EggApplied {
		fmt.Printf("  Egg applied\n")
	}
	if resp.Presentation.ImagePath != "" {
		fmt.Printf("  Image: %s\n", resp.Presentation.ImagePath)
	}
	if resp.Refilled {
		fmt.Printf("  New round started\n")
	}
	if len(resp.Discarded) > 0 {
		fmt.Printf("  Skipped (away): %s\n", strings.Join(resp.Discarded, ", "))
	}
	fmt.Printf("  Record: %s\n", resp.RecordID)

	return nil
}

func runPreview(_ *cobra.Command, args []string) error {
	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Preview(ctx, &picker.PreviewInput{ID: args[0], Announce: previewAnnounce})
	if err != nil {
		return errors.Wrap(err, "failed to preview")
	}

	p := resp.Presentation
	fmt.Printf("🔍 Preview of %s (%s)\n", resp.Entry.ID, resp.Entry.Kind)
	fmt.Printf("  Text: %s\n", p.DisplayText)
	fmt.Printf("  Spoken: %s\n", p.SpokenText)
	fmt.Printf("  Color: %s\n", p.Color)
	if p.ImagePath != "" {
		fmt.Printf("  Image: %s\n", p.ImagePath)
	}
	if p.AudioPath != "" {
		fmt.Printf("  Audio: %s\n", p.AudioPath)
	}
	fmt.Printf("  Egg applied: %t\n", p.EggApplied)

	return nil
}
