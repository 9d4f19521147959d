// Package config loads and validates roster files and process settings.
//
// A roster file is JSON or YAML, picked by extension. The raw bytes are
// normalised to UTF-8 before decoding so files saved by legacy editors
// (UTF-16 with BOM, GB18030) load the same as plain UTF-8.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

const (
	// DefaultSeedRefreshMinutes is used when the file omits seed_refresh_minutes
	DefaultSeedRefreshMinutes = 5

	// MinSeedRefreshMinutes and MaxSeedRefreshMinutes bound seed_refresh_minutes
	MinSeedRefreshMinutes = 1
	MaxSeedRefreshMinutes = 1440
)

// Top-level keys every roster file must contain
const (
	KeyNames         = "names"
	KeyGroups        = "groups"
	KeyEggCases      = "egg_cases"
	KeyEggCasesGroup = "egg_cases_group"
)

// RequiredKeys lists the keys checked for presence before decoding
var RequiredKeys = []string{KeyNames, KeyGroups, KeyEggCases, KeyEggCasesGroup}

// Format is the on-disk encoding of a roster file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// File is the roster file schema
type File struct {
	Names         []string           `json:"names" yaml:"names"`
	Groups        []string           `json:"groups" yaml:"groups"`
	EggCases      []entities.EggCase `json:"egg_cases" yaml:"egg_cases"`
	EggCasesGroup []entities.EggCase `json:"egg_cases_group" yaml:"egg_cases_group"`

	AutoClose          *bool         `json:"auto_close,omitempty" yaml:"auto_close,omitempty"`
	SeedRefreshMinutes *int          `json:"seed_refresh_minutes,omitempty" yaml:"seed_refresh_minutes,omitempty"`
	PersonalMode       entities.Mode `json:"personal_mode,omitempty" yaml:"personal_mode,omitempty"`
	GroupMode          entities.Mode `json:"group_mode,omitempty" yaml:"group_mode,omitempty"`
}

// AutoCloseEnabled reports whether results dismiss themselves, true when unset
func (f *File) AutoCloseEnabled() bool {
	return f.AutoClose == nil || *f.AutoClose
}

// SeedRefresh returns the reseed interval
func (f *File) SeedRefresh() time.Duration {
	minutes := DefaultSeedRefreshMinutes
	if f.SeedRefreshMinutes != nil {
		minutes = *f.SeedRefreshMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// ModeFor returns the configured mode of a roster, rotation when unset
func (f *File) ModeFor(kind entities.Kind) entities.Mode {
	mode := f.PersonalMode
	if kind == entities.KindGroup {
		mode = f.GroupMode
	}
	if mode == "" {
		return entities.ModeRotation
	}
	return mode
}

// Roster returns the entries of a roster
func (f *File) Roster(kind entities.Kind) []string {
	if kind == entities.KindGroup {
		return f.Groups
	}
	return f.Names
}

// Load reads, decodes and validates a roster file. Image and voice
// paths are checked against the filesystem.
func Load(path string) (*File, error) {
	return LoadWithExists(path, StatExists)
}

// LoadWithExists is Load with a custom asset check
func LoadWithExists(path string, exists func(string) bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "config file not found").
				WithMeta(errors.MetaPath, path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read config file").
			WithMeta(errors.MetaPath, path)
	}

	file, err := Parse(data, FormatFromPath(path), exists)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path).
			WithMeta(errors.MetaPath, path)
	}
	return file, nil
}

// Parse decodes and validates roster file bytes
func Parse(data []byte, format Format, exists func(string) bool) (*File, error) {
	text, err := ToUTF8(data)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config text")
	}

	raw := make(map[string]any)
	if err := unmarshal(text, format, &raw); err != nil {
		return nil, err
	}

	var file File
	if err := unmarshal(text, format, &file); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	for _, key := range RequiredKeys {
		if _, ok := raw[key]; !ok {
			vb.RequiredField(key)
		}
	}
	file.validate(vb, exists)

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks the decoded file. Key presence is only checked by Parse.
func (f *File) Validate(exists func(string) bool) error {
	vb := errors.NewValidationBuilder()
	f.validate(vb, exists)
	return vb.Build()
}

func (f *File) validate(vb *errors.ValidationBuilder, exists func(string) bool) {
	if exists == nil {
		exists = StatExists
	}

	if len(f.Names) == 0 {
		vb.Field(KeyNames, "must contain at least one entry")
	}
	errors.ValidateUnique(KeyNames, f.Names, vb)
	errors.ValidateUnique(KeyGroups, f.Groups, vb)

	validateEggs(KeyEggCases, f.EggCases, exists, vb)
	validateEggs(KeyEggCasesGroup, f.EggCasesGroup, exists, vb)

	if f.PersonalMode != "" {
		errors.ValidateEnum("personal_mode", string(f.PersonalMode), entities.Modes, vb)
	}
	if f.GroupMode != "" {
		errors.ValidateEnum("group_mode", string(f.GroupMode), entities.Modes, vb)
	}
	if f.SeedRefreshMinutes != nil {
		errors.ValidateRange("seed_refresh_minutes", *f.SeedRefreshMinutes,
			MinSeedRefreshMinutes, MaxSeedRefreshMinutes, vb)
	}
}

func validateEggs(section string, cases []entities.EggCase, exists func(string) bool, vb *errors.ValidationBuilder) {
	for i, egg := range cases {
		prefix := fmt.Sprintf("%s[%d]", section, i)

		if egg.Name == "" {
			vb.RequiredField(prefix + ".name")
		}
		if egg.Color != "" {
			errors.ValidateEnum(prefix+".color", egg.Color, entities.Colors, vb)
		}
		if egg.Image != "" && !exists(egg.Image) {
			vb.Fieldf(prefix+".image", "file does not exist: %s", egg.Image)
		}
		if egg.Voice != "" && !exists(egg.Voice) {
			vb.Fieldf(prefix+".voice", "file does not exist: %s", egg.Voice)
		}
	}
}

func unmarshal(data []byte, format Format, target any) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, target)
	default:
		err = json.Unmarshal(data, target)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed config")
	}
	return nil
}

// StatExists checks the path with os.Stat
func StatExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
