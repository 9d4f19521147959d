package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Show or replace the leave list",
}

var leaveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the leave list",
	Args:  cobra.NoArgs,
	RunE:  runLeaveShow,
}

var leaveSetCmd = &cobra.Command{
	Use:   "set [entry...]",
	Short: "Replace the leave list",
	Long: `Replace the leave list with the given entries. Run with no entries to
clear it. Examples:

  leave set Alice "Table 3"
  leave set`,
	RunE: runLeaveSet,
}

func init() {
	leaveCmd.AddCommand(leaveShowCmd)
	leaveCmd.AddCommand(leaveSetCmd)
}

func runLeaveShow(_ *cobra.Command, _ []string) error {
	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetLeaveList(ctx, &picker.GetLeaveListInput{})
	if err != nil {
		return errors.Wrap(err, "failed to get leave list")
	}

	if len(resp.Entries) == 0 {
		fmt.Printf("Leave list is empty\n")
		return nil
	}
	for _, entry := range resp.Entries {
		fmt.Printf("%s\n", entry)
	}
	return nil
}

func runLeaveSet(_ *cobra.Command, args []string) error {
	client, err := createPickerClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetLeaveList(ctx, &picker.SetLeaveListInput{Entries: args})
	if err != nil {
		return errors.Wrap(err, "failed to set leave list")
	}

	fmt.Printf("Leave list: %d\n", len(resp.Entries))
	if len(resp.Unknown) > 0 {
		fmt.Printf("  Not in any roster: %s\n", strings.Join(resp.Unknown, ", "))
	}
	return nil
}
