// Package client provides commands that drive a running picker over gRPC
package client

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	v1alpha1 "github.com/KirkDiggler/name-picker/internal/handlers/picker/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Control a running picker",
	Long:  `Client commands send requests to a picker started with "serve" or "ui --grpc".`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(drawCmd)
	ClientCmd.AddCommand(previewCmd)
	ClientCmd.AddCommand(resetCmd)
	ClientCmd.AddCommand(modeCmd)
	ClientCmd.AddCommand(leaveCmd)
	ClientCmd.AddCommand(eggsCmd)
	ClientCmd.AddCommand(voiceCmd)
	ClientCmd.AddCommand(reseedCmd)
	ClientCmd.AddCommand(reloadCmd)
	ClientCmd.AddCommand(statusCmd)
	ClientCmd.AddCommand(historyCmd)
}

// createPickerClient connects to the server. The client closes the connection.
func createPickerClient() (*v1alpha1.Client, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to server").
			WithMeta("server", serverAddr)
	}

	client, err := v1alpha1.NewClient(&v1alpha1.ClientConfig{Conn: conn})
	if err != nil {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
		return nil, err
	}
	return client, nil
}

// parseKindArg reads an optional roster argument, defaulting to names
func parseKindArg(args []string) (entities.Kind, error) {
	if len(args) == 0 {
		return entities.KindPersonal, nil
	}
	kind, ok := entities.ParseKind(strings.ToLower(args[0]))
	if !ok {
		return "", errors.InvalidArgumentf("unknown roster %q, expected names or groups", args[0])
	}
	return kind, nil
}

// parseToggle accepts on/off style switches
func parseToggle(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, errors.InvalidArgumentf("expected on or off, got %q", arg)
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
