package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var (
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or clear past draws",
}

var historyListCmd = &cobra.Command{
	Use:   "list [names|groups]",
	Short: "List past draws, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear [names|groups]",
	Short: "Remove past draws",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum records to show (0 for all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

// historyKind is like parseKindArg but no argument means every roster
func historyKind(args []string) (entities.Kind, error) {
	if len(args) == 0 {
		return "", nil
	}
	return parseKindArg(args)
}

func runHistoryList(_ *cobra.Command, args []string) error {
	kind, err := historyKind(args)
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

	resp, err := client.ListHistory(ctx, &picker.ListHistoryInput{Kind: kind, Limit: historyLimit})
	if err != nil {
		return errors.Wrap(err, "failed to list history")
	}

	if len(resp.Records) == 0 {
		fmt.Printf("No draws recorded\n")
		return nil
	}
	for _, record := range resp.Records {
		line := fmt.Sprintf("%s  %-8s %-8s %s", record.DrawnAt.Format("2006-01-02 15:04:05"), record.Kind, record.Mode, record.DisplayText)
		if record.EggApplied {
			line += " 🥚"
		}
		if record.ResolveError != "" {
			line += fmt.Sprintf(" (not shown: %s)", record.ResolveError)
		}
		fmt.Printf("%s\n", line)
	}
	return nil
}

func runHistoryClear(_ *cobra.Command, args []string) error {
	kind, err := historyKind(args)
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

	resp, err := client.ClearHistory(ctx, &picker.ClearHistoryInput{Kind: kind})
	if err != nil {
		return errors.Wrap(err, "failed to clear history")
	}

	fmt.Printf("Removed %d records\n", resp.Removed)
	return nil
}
