package config

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
)

// Sample returns a small roster that passes validation
func Sample() *File {
	autoClose := true
	refresh := DefaultSeedRefreshMinutes

	return &File{
		Names:  []string{"Sample Name 1", "Sample Name 2", "Sample Name 3"},
		Groups: []string{"Sample Group 1", "Sample Group 2"},
		EggCases: []entities.EggCase{{
			Name:      "Sample Name 1",
			NewName:   "Display name for Sample Name 1",
			Color:     string(entities.ColorBlue),
			SpeakText: "Spoken text for Sample Name 1",
		}},
		EggCasesGroup: []entities.EggCase{{
			Name:      "Sample Group 1",
			NewName:   "Display name for Sample Group 1",
			Color:     string(entities.ColorBlue),
			SpeakText: "Spoken text for Sample Group 1",
		}},
		AutoClose:          &autoClose,
		SeedRefreshMinutes: &refresh,
		PersonalMode:       entities.ModeRotation,
		GroupMode:          entities.ModeRotation,
	}
}

// Marshal encodes a roster file in the given format
func Marshal(file *File, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(file)
	default:
		data, err = json.MarshalIndent(file, "", "    ")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config")
	}
	return data, nil
}

// WriteSample writes Sample to path, refusing to replace an existing file
func WriteSample(path string) error {
	data, err := Marshal(Sample(), FormatFromPath(path))
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.AlreadyExists("config file already exists").WithMeta(errors.MetaPath, path)
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create config file").
			WithMeta(errors.MetaPath, path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write config file").
			WithMeta(errors.MetaPath, path)
	}
	return nil
}
