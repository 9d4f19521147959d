package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the picker's current state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetStatus(ctx, &picker.GetStatusInput{})
	if err != nil {
		return errors.Wrap(err, "failed to get status")
	}

	st := resp.Status
	fmt.Printf("📋 Picker Status\n")
	fmt.Printf("===============\n")
	fmt.Printf("Config: %s\n", st.ConfigPath)
	fmt.Printf("Eggs: %s  Voice: %s  Auto close: %s\n", onOff(st.EggsEnabled), onOff(st.VoiceEnabled), onOff(st.AutoClose))
	if st.SeedRefresh > 0 {
		fmt.Printf("Seed refresh: every %s\n", st.SeedRefresh)
	}
	if !st.ReseededAt.IsZero() {
		fmt.Printf("Last reseed: %s\n", st.ReseededAt.Format("15:04:05"))
	}
	if len(st.LeaveList) > 0 {
		fmt.Printf("Away: %s\n", strings.Join(st.LeaveList, ", "))
	}

	for _, roster := range st.Rosters {
		fmt.Printf("\n%s (%s)\n", roster.Kind, roster.Mode)
		fmt.Printf("  Size: %d\n", roster.Size)
		fmt.Printf("  Eligible: %d\n", roster.Eligible)
		if roster.Mode == entities.ModeRotation {
			fmt.Printf("  Left this round: %d\n", roster.PoolSize)
		}
		if roster.LastSelected != "" {
			fmt.Printf("  Last: %s\n", roster.LastSelected)
		}
		if roster.Mode == entities.ModeWeighted && len(roster.Weights) > 0 {
			ids := make([]string, 0, len(roster.Weights))
			for id := range roster.Weights {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Printf("  %-20s %.4f\n", id, roster.Weights[id])
			}
		}
	}

	return nil
}
