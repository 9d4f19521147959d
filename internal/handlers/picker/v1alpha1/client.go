package v1alpha1

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

// ClientConfig holds the connection used by the client
type ClientConfig struct {
	Conn grpc.ClientConnInterface
}

// Validate ensures a connection is present
func (c *ClientConfig) Validate() error {
	if c == nil || c.Conn == nil {
		return errors.InvalidArgument("connection is required")
	}
	return nil
}

// Client calls a remote picker. It satisfies picker.Service so a running
// server can be driven the same way as a local orchestrator.
type Client struct {
	conn grpc.ClientConnInterface
}

var _ picker.Service = (*Client)(nil)

// NewClient creates a picker client over an existing connection
func NewClient(cfg *ClientConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{conn: cfg.Conn}, nil
}

func invoke[Req, Resp any](ctx context.Context, conn grpc.ClientConnInterface, method string, req *Req) (*Resp, error) {
	in, err := encode(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := decode(out, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Draw selects the next entry from a roster
func (c *Client) Draw(ctx context.Context, input *picker.DrawInput) (*picker.DrawOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[kindRequest, drawResponse](ctx, c.conn, MethodDraw, &kindRequest{Kind: string(input.Kind)})
	if err != nil {
		return nil, err
	}

	return &picker.DrawOutput{
		Entry:        toEntry(resp.Entry, resp.Kind),
		Mode:         entities.Mode(resp.Mode),
		Presentation: fromPresentationMessage(resp.Presentation),
		Discarded:    resp.Discarded,
		Refilled:     resp.Refilled,
		RecordID:     resp.RecordID,
	}, nil
}

// Preview resolves an entry without drawing
func (c *Client) Preview(ctx context.Context, input *picker.PreviewInput) (*picker.PreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[previewRequest, previewResponse](ctx, c.conn, MethodPreview, &previewRequest{
		ID:       input.ID,
		Announce: input.Announce,
	})
	if err != nil {
		return nil, err
	}

	return &picker.PreviewOutput{
		Entry:        toEntry(resp.Entry, resp.Kind),
		Presentation: fromPresentationMessage(resp.Presentation),
	}, nil
}

// Reset clears the active mode's state for a roster
func (c *Client) Reset(ctx context.Context, input *picker.ResetInput) (*picker.ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[kindRequest, modeMessage](ctx, c.conn, MethodReset, &kindRequest{Kind: string(input.Kind)})
	if err != nil {
		return nil, err
	}
	return &picker.ResetOutput{Mode: entities.Mode(resp.Mode)}, nil
}

// SetMode switches a roster's mode
func (c *Client) SetMode(ctx context.Context, input *picker.SetModeInput) (*picker.SetModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[modeMessage, modeMessage](ctx, c.conn, MethodSetMode, &modeMessage{
		Kind: string(input.Kind),
		Mode: string(input.Mode),
	})
	if err != nil {
		return nil, err
	}
	return &picker.SetModeOutput{Mode: entities.Mode(resp.Mode)}, nil
}

// SetLeaveList replaces the leave list
func (c *Client) SetLeaveList(ctx context.Context, input *picker.SetLeaveListInput) (*picker.SetLeaveListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[leaveListMessage, leaveListMessage](ctx, c.conn, MethodSetLeaveList, &leaveListMessage{
		Entries: input.Entries,
	})
	if err != nil {
		return nil, err
	}
	return &picker.SetLeaveListOutput{Entries: resp.Entries, Unknown: resp.Unknown}, nil
}

// GetLeaveList returns the leave list
func (c *Client) GetLeaveList(ctx context.Context, _ *picker.GetLeaveListInput) (*picker.GetLeaveListOutput, error) {
	resp, err := invoke[emptyMessage, leaveListMessage](ctx, c.conn, MethodGetLeaveList, &emptyMessage{})
	if err != nil {
		return nil, err
	}
	return &picker.GetLeaveListOutput{Entries: resp.Entries}, nil
}

// SetEggsEnabled flips the egg toggle
func (c *Client) SetEggsEnabled(ctx context.Context, input *picker.SetEggsEnabledInput) (*picker.SetEggsEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[toggleMessage, toggleMessage](ctx, c.conn, MethodSetEggsEnabled, &toggleMessage{Enabled: input.Enabled})
	if err != nil {
		return nil, err
	}
	return &picker.SetEggsEnabledOutput{Enabled: resp.Enabled}, nil
}

// SetVoiceEnabled flips speech synthesis
func (c *Client) SetVoiceEnabled(ctx context.Context, input *picker.SetVoiceEnabledInput) (*picker.SetVoiceEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resp, err := invoke[toggleMessage, toggleMessage](ctx, c.conn, MethodSetVoiceEnabled, &toggleMessage{Enabled: input.Enabled})
	if err != nil {
		return nil, err
	}
	return &picker.SetVoiceEnabledOutput{Enabled: resp.Enabled}, nil
}

// Reseed replaces the random source state
func (c *Client) Reseed(ctx context.Context, input *picker.ReseedInput) (*picker.ReseedOutput, error) {
	req := &reseedMessage{}
	if input != nil && input.Seed != nil {
		req.Seed = strconv.FormatUint(*input.Seed, 10)
	}

	resp, err := invoke[reseedMessage, reseedMessage](ctx, c.conn, MethodReseed, req)
	if err != nil {
		return nil, err
	}

	seed, err := strconv.ParseUint(resp.Seed, 10, 64)
	if err != nil {
		return nil, errors.Internalf("server returned invalid seed %q", resp.Seed)
	}
	return &picker.ReseedOutput{Seed: seed, Applied: resp.Applied}, nil
}

// Reload asks the server to re-read its roster file
func (c *Client) Reload(ctx context.Context, _ *picker.ReloadInput) (*picker.ReloadOutput, error) {
	resp, err := invoke[emptyMessage, reloadResponse](ctx, c.conn, MethodReload, &emptyMessage{})
	if err != nil {
		return nil, err
	}
	return &picker.ReloadOutput{Names: resp.Names, Groups: resp.Groups}, nil
}

// GetStatus returns the server's picker status
func (c *Client) GetStatus(ctx context.Context, _ *picker.GetStatusInput) (*picker.GetStatusOutput, error) {
	resp, err := invoke[emptyMessage, statusResponse](ctx, c.conn, MethodGetStatus, &emptyMessage{})
	if err != nil {
		return nil, err
	}

	status := &picker.Status{
		ConfigPath:   resp.ConfigPath,
		EggsEnabled:  resp.EggsEnabled,
		VoiceEnabled: resp.VoiceEnabled,
		AutoClose:    resp.AutoClose,
		SeedRefresh:  time.Duration(resp.SeedRefreshSeconds) * time.Second,
		ReseededAt:   resp.ReseededAt,
		LeaveList:    resp.LeaveList,
	}
	for _, r := range resp.Rosters {
		status.Rosters = append(status.Rosters, &picker.RosterStatus{
			Kind:         entities.Kind(r.Kind),
			Mode:         entities.Mode(r.Mode),
			Size:         r.Size,
			Eligible:     r.Eligible,
			PoolSize:     r.PoolSize,
			Weights:      r.Weights,
			LastSelected: r.LastSelected,
		})
	}
	return &picker.GetStatusOutput{Status: status}, nil
}

// ListHistory returns recorded draws newest first
func (c *Client) ListHistory(ctx context.Context, input *picker.ListHistoryInput) (*picker.ListHistoryOutput, error) {
	req := &historyRequest{}
	if input != nil {
		req.Kind = string(input.Kind)
		req.Limit = input.Limit
	}

	resp, err := invoke[historyRequest, historyResponse](ctx, c.conn, MethodListHistory, req)
	if err != nil {
		return nil, err
	}
	return &picker.ListHistoryOutput{Records: resp.Records}, nil
}

// ClearHistory removes recorded draws
func (c *Client) ClearHistory(ctx context.Context, input *picker.ClearHistoryInput) (*picker.ClearHistoryOutput, error) {
	req := &kindRequest{}
	if input != nil {
		req.Kind = string(input.Kind)
	}

	resp, err := invoke[kindRequest, clearHistoryResponse](ctx, c.conn, MethodClearHistory, req)
	if err != nil {
		return nil, err
	}
	return &picker.ClearHistoryOutput{Removed: resp.Removed}, nil
}

// Close closes the underlying connection when the client owns one
func (c *Client) Close() {
	closer, ok := c.conn.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("Failed to close picker connection", "error", err)
	}
}
