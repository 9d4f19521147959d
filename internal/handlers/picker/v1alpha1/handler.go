package v1alpha1

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
)

// HandlerConfig holds dependencies for the picker handler
type HandlerConfig struct {
	PickerService picker.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.PickerService == nil {
		return errors.InvalidArgument("picker service is required")
	}
	return nil
}

// Handler implements the picker gRPC service
type Handler struct {
	pickerService picker.Service
}

var _ PickerServiceServer = (*Handler)(nil)

// NewHandler creates a new picker handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		pickerService: cfg.PickerService,
	}, nil
}

// handle decodes the request, runs fn and encodes its response. Every
// error leaves as a gRPC status.
func handle[Req, Resp any](
	ctx context.Context,
	in *structpb.Struct,
	fn func(context.Context, *Req) (*Resp, error),
) (*structpb.Struct, error) {
	req := new(Req)
	if err := decode(in, req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := fn(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// Draw selects the next entry from a roster
func (h *Handler) Draw(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *kindRequest) (*drawResponse, error) {
		kind, err := parseKind(req.Kind, false)
		if err != nil {
			return nil, err
		}

		out, err := h.pickerService.Draw(ctx, &picker.DrawInput{Kind: kind})
		if err != nil {
			return nil, err
		}

		return &drawResponse{
			Entry:        out.Entry.ID,
			Kind:         string(out.Entry.Kind),
			Mode:         string(out.Mode),
			Presentation: toPresentationMessage(out.Presentation),
			Discarded:    out.Discarded,
			Refilled:     out.Refilled,
			RecordID:     out.RecordID,
		}, nil
	})
}

// Preview resolves an entry's presentation without drawing
func (h *Handler) Preview(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *previewRequest) (*previewResponse, error) {
		if req.ID == "" {
			return nil, errors.InvalidArgument("id is required")
		}

		out, err := h.pickerService.Preview(ctx, &picker.PreviewInput{ID: req.ID, Announce: req.Announce})
		if err != nil {
			return nil, err
		}

		return &previewResponse{
			Entry:        out.Entry.ID,
			Kind:         string(out.Entry.Kind),
			Presentation: toPresentationMessage(out.Presentation),
		}, nil
	})
}

// Reset clears the active mode's state for a roster
func (h *Handler) Reset(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *kindRequest) (*modeMessage, error) {
		kind, err := parseKind(req.Kind, false)
		if err != nil {
			return nil, err
		}

		out, err := h.pickerService.Reset(ctx, &picker.ResetInput{Kind: kind})
		if err != nil {
			return nil, err
		}
		return &modeMessage{Kind: string(kind), Mode: string(out.Mode)}, nil
	})
}

// SetMode switches a roster's mode
func (h *Handler) SetMode(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *modeMessage) (*modeMessage, error) {
		kind, err := parseKind(req.Kind, false)
		if err != nil {
			return nil, err
		}

		out, err := h.pickerService.SetMode(ctx, &picker.SetModeInput{
			Kind: kind,
			Mode: entities.Mode(req.Mode),
		})
		if err != nil {
			return nil, err
		}
		return &modeMessage{Kind: string(kind), Mode: string(out.Mode)}, nil
	})
}

// SetLeaveList replaces the leave list
func (h *Handler) SetLeaveList(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *leaveListMessage) (*leaveListMessage, error) {
		out, err := h.pickerService.SetLeaveList(ctx, &picker.SetLeaveListInput{Entries: req.Entries})
		if err != nil {
			return nil, err
		}
		return &leaveListMessage{Entries: out.Entries, Unknown: out.Unknown}, nil
	})
}

// GetLeaveList returns the leave list
func (h *Handler) GetLeaveList(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, _ *emptyMessage) (*leaveListMessage, error) {
		out, err := h.pickerService.GetLeaveList(ctx, &picker.GetLeaveListInput{})
		if err != nil {
			return nil, err
		}
		return &leaveListMessage{Entries: out.Entries}, nil
	})
}

// SetEggsEnabled flips the egg toggle
func (h *Handler) SetEggsEnabled(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *toggleMessage) (*toggleMessage, error) {
		out, err := h.pickerService.SetEggsEnabled(ctx, &picker.SetEggsEnabledInput{Enabled: req.Enabled})
		if err != nil {
			return nil, err
		}
		return &toggleMessage{Enabled: out.Enabled}, nil
	})
}

// SetVoiceEnabled flips speech synthesis
func (h *Handler) SetVoiceEnabled(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *toggleMessage) (*toggleMessage, error) {
		out, err := h.pickerService.SetVoiceEnabled(ctx, &picker.SetVoiceEnabledInput{Enabled: req.Enabled})
		if err != nil {
			return nil, err
		}
		return &toggleMessage{Enabled: out.Enabled}, nil
	})
}

// Reseed replaces the random source state
func (h *Handler) Reseed(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *reseedMessage) (*reseedMessage, error) {
		input := &picker.ReseedInput{}
		if req.Seed != "" {
			seed, err := strconv.ParseUint(req.Seed, 10, 64)
			if err != nil {
				return nil, errors.InvalidArgumentf("seed must be an unsigned integer: %q", req.Seed)
			}
			input.Seed = &seed
		}

		out, err := h.pickerService.Reseed(ctx, input)
		if err != nil {
			return nil, err
		}
		return &reseedMessage{Seed: strconv.FormatUint(out.Seed, 10), Applied: out.Applied}, nil
	})
}

// Reload re-reads the roster file
func (h *Handler) Reload(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, _ *emptyMessage) (*reloadResponse, error) {
		out, err := h.pickerService.Reload(ctx, &picker.ReloadInput{})
		if err != nil {
			return nil, err
		}
		return &reloadResponse{Names: out.Names, Groups: out.Groups}, nil
	})
}

// GetStatus returns the picker status
func (h *Handler) GetStatus(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, _ *emptyMessage) (*statusResponse, error) {
		out, err := h.pickerService.GetStatus(ctx, &picker.GetStatusInput{})
		if err != nil {
			return nil, err
		}

		st := out.Status
		resp := &statusResponse{
			ConfigPath:         st.ConfigPath,
			EggsEnabled:        st.EggsEnabled,
			VoiceEnabled:       st.VoiceEnabled,
			AutoClose:          st.AutoClose,
			SeedRefreshSeconds: int64(st.SeedRefresh / time.Second),
			ReseededAt:         st.ReseededAt,
			LeaveList:          st.LeaveList,
		}
		for _, r := range st.Rosters {
			resp.Rosters = append(resp.Rosters, &rosterStatusMessage{
				Kind:         string(r.Kind),
				Mode:         string(r.Mode),
				Size:         r.Size,
				Eligible:     r.Eligible,
				PoolSize:     r.PoolSize,
				Weights:      r.Weights,
				LastSelected: r.LastSelected,
			})
		}
		return resp, nil
	})
}

// ListHistory returns recorded draws newest first
func (h *Handler) ListHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *historyRequest) (*historyResponse, error) {
		kind, err := parseKind(req.Kind, true)
		if err != nil {
			return nil, err
		}
		if req.Limit < 0 {
			return nil, errors.InvalidArgument("limit cannot be negative")
		}

		out, err := h.pickerService.ListHistory(ctx, &picker.ListHistoryInput{Kind: kind, Limit: req.Limit})
		if err != nil {
			return nil, err
		}
		return &historyResponse{Records: out.Records}, nil
	})
}

// ClearHistory removes recorded draws
func (h *Handler) ClearHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return handle(ctx, in, func(ctx context.Context, req *kindRequest) (*clearHistoryResponse, error) {
		kind, err := parseKind(req.Kind, true)
		if err != nil {
			return nil, err
		}

		out, err := h.pickerService.ClearHistory(ctx, &picker.ClearHistoryInput{Kind: kind})
		if err != nil {
			return nil, err
		}
		return &clearHistoryResponse{Removed: out.Removed}, nil
	})
}
