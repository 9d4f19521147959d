// Package eggs resolves drawn entries into presentations, applying the
// per-entry overrides ("eggs") from the configuration.
package eggs

import (
	"os"
	"slices"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

const (
	errInvalidColor = "invalid color"
	errMissingImage = "missing image asset"
	errMissingVoice = "missing voice asset"
)

// Resolver turns a drawn identifier into a presentation
type Resolver interface {
	// Resolve looks up the first egg case named id in the kind's table.
	// A case applies when eggs are enabled or when it is forced.
	Resolve(id string, kind entities.Kind, eggEnabled bool) (*entities.Presentation, error)
}

// FileExists reports whether a referenced asset is present
type FileExists func(path string) bool

// Config holds the egg tables
type Config struct {
	Personal []entities.EggCase
	Group    []entities.EggCase

	// FileExists defaults to an os.Stat check
	FileExists FileExists
}

type resolver struct {
	tables map[entities.Kind][]entities.EggCase
	exists FileExists
}

// NewResolver creates a resolver over copies of the egg tables
func NewResolver(cfg *Config) (Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	exists := cfg.FileExists
	if exists == nil {
		exists = StatExists
	}

	return &resolver{
		tables: map[entities.Kind][]entities.EggCase{
			entities.KindPersonal: slices.Clone(cfg.Personal),
			entities.KindGroup:    slices.Clone(cfg.Group),
		},
		exists: exists,
	}, nil
}

// StatExists checks the path with os.Stat
func StatExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve applies the matching egg case, if any, to the default presentation
func (r *resolver) Resolve(id string, kind entities.Kind, eggEnabled bool) (*entities.Presentation, error) {
	table, ok := r.tables[kind]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown roster kind %q", kind)
	}

	presentation := &entities.Presentation{
		Entry:       id,
		Kind:        kind,
		DisplayText: id,
		Color:       entities.DefaultColor,
		SpokenText:  id,
	}

	egg, found := lookup(table, id)
	if !found || (!eggEnabled && !egg.Force) {
		return presentation, nil
	}

	if egg.NewName != "" {
		presentation.DisplayText = egg.NewName
		presentation.SpokenText = egg.NewName
	}

	if egg.Color != "" {
		color, ok := entities.ParseColor(egg.Color)
		if !ok {
			return nil, errors.InvalidArgument(errInvalidColor).
				WithMeta(errors.MetaEntry, id).
				WithMeta(errors.MetaKind, string(kind)).
				WithMeta(errors.MetaColor, egg.Color)
		}
		presentation.Color = color
	}

	if egg.Image != "" {
		if !r.exists(egg.Image) {
			return nil, missingAsset(errMissingImage, id, kind, egg.Image)
		}
		presentation.ImagePath = egg.Image
	}

	if egg.Voice != "" {
		if !r.exists(egg.Voice) {
			return nil, missingAsset(errMissingVoice, id, kind, egg.Voice)
		}
		presentation.AudioPath = egg.Voice
	}

	if egg.SpeakText != "" {
		presentation.SpokenText = egg.SpeakText
	}

	presentation.EggApplied = true
	return presentation, nil
}

func lookup(table []entities.EggCase, id string) (entities.EggCase, bool) {
	for _, egg := range table {
		if egg.Name == id {
			return egg, true
		}
	}
	return entities.EggCase{}, false
}

func missingAsset(message, id string, kind entities.Kind, path string) *errors.Error {
	return errors.NotFound(message).
		WithMeta(errors.MetaEntry, id).
		WithMeta(errors.MetaKind, string(kind)).
		WithMeta(errors.MetaPath, path)
}
