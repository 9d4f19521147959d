package v1alpha1

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	drawhistory "github.com/KirkDiggler/name-picker/internal/repositories/draw_history"
)

type emptyMessage struct{}

type kindRequest struct {
	Kind string `json:"kind,omitempty"`
}

type presentationMessage struct {
	Entry       string `json:"entry"`
	Kind        string `json:"kind"`
	DisplayText string `json:"display_text"`
	Color       string `json:"color"`
	ImagePath   string `json:"image_path,omitempty"`
	AudioPath   string `json:"audio_path,omitempty"`
	SpokenText  string `json:"spoken_text,omitempty"`
	EggApplied  bool   `json:"egg_applied,omitempty"`
}

type drawResponse struct {
	Entry        string               `json:"entry"`
	Kind         string               `json:"kind"`
	Mode         string               `json:"mode"`
	Presentation *presentationMessage `json:"presentation,omitempty"`
	Discarded    []string             `json:"discarded,omitempty"`
	Refilled     bool                 `json:"refilled,omitempty"`
	RecordID     string               `json:"record_id,omitempty"`
}

type previewRequest struct {
	ID       string `json:"id"`
	Announce bool   `json:"announce,omitempty"`
}

type previewResponse struct {
	Entry        string               `json:"entry"`
	Kind         string               `json:"kind"`
	Presentation *presentationMessage `json:"presentation,omitempty"`
}

type modeMessage struct {
	Kind string `json:"kind,omitempty"`
	Mode string `json:"mode,omitempty"`
}

type leaveListMessage struct {
	Entries []string `json:"entries,omitempty"`
	Unknown []string `json:"unknown,omitempty"`
}

type toggleMessage struct {
	Enabled bool `json:"enabled"`
}

// seeds are strings because Struct numbers are float64
type reseedMessage struct {
	Seed    string `json:"seed,omitempty"`
	Applied bool   `json:"applied,omitempty"`
}

type reloadResponse struct {
	Names  int `json:"names"`
	Groups int `json:"groups"`
}

type rosterStatusMessage struct {
	Kind         string             `json:"kind"`
	Mode         string             `json:"mode"`
	Size         int                `json:"size"`
	Eligible     int                `json:"eligible"`
	PoolSize     int                `json:"pool_size"`
	Weights      map[string]float64 `json:"weights,omitempty"`
	LastSelected string             `json:"last_selected,omitempty"`
}

type statusResponse struct {
	ConfigPath         string                 `json:"config_path,omitempty"`
	EggsEnabled        bool                   `json:"eggs_enabled"`
	VoiceEnabled       bool                   `json:"voice_enabled"`
	AutoClose          bool                   `json:"auto_close"`
	SeedRefreshSeconds int64                  `json:"seed_refresh_seconds"`
	ReseededAt         time.Time              `json:"reseeded_at"`
	LeaveList          []string               `json:"leave_list,omitempty"`
	Rosters            []*rosterStatusMessage `json:"rosters,omitempty"`
}

type historyRequest struct {
	Kind  string `json:"kind,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

type historyResponse struct {
	Records []*drawhistory.Record `json:"records,omitempty"`
}

type clearHistoryResponse struct {
	Removed int `json:"removed"`
}

// encode converts a message into a Struct through its JSON form
func encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}

// decode fills v from a Struct; unknown fields are ignored
func decode(in *structpb.Struct, v any) error {
	if in == nil {
		return nil
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	return nil
}

func toPresentationMessage(p *entities.Presentation) *presentationMessage {
	if p == nil {
		return nil
	}
	return &presentationMessage{
		Entry:       p.Entry,
		Kind:        string(p.Kind),
		DisplayText: p.DisplayText,
		Color:       string(p.Color),
		ImagePath:   p.ImagePath,
		AudioPath:   p.AudioPath,
		SpokenText:  p.SpokenText,
		EggApplied:  p.EggApplied,
	}
}

func fromPresentationMessage(m *presentationMessage) *entities.Presentation {
	if m == nil {
		return nil
	}
	return &entities.Presentation{
		Entry:       m.Entry,
		Kind:        entities.Kind(m.Kind),
		DisplayText: m.DisplayText,
		Color:       entities.Color(m.Color),
		ImagePath:   m.ImagePath,
		AudioPath:   m.AudioPath,
		SpokenText:  m.SpokenText,
		EggApplied:  m.EggApplied,
	}
}

func toEntry(id, kind string) *entities.Entry {
	if id == "" {
		return nil
	}
	return &entities.Entry{ID: id, Kind: entities.Kind(kind)}
}

// parseKind accepts the roster aliases; an empty kind is rejected unless optional
func parseKind(s string, optional bool) (entities.Kind, error) {
	if s == "" {
		if optional {
			return "", nil
		}
		return "", errors.InvalidArgument("kind is required")
	}
	kind, ok := entities.ParseKind(s)
	if !ok {
		return "", errors.InvalidArgumentf("unknown roster kind %q", s).WithMeta(errors.MetaKind, s)
	}
	return kind, nil
}
