package testutils

import (
	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/entities"
)

// Roster entries used across tests
var (
	TestNames  = []string{"Alice", "Bob", "Carol"}
	TestGroups = []string{"Red Team", "Blue Team"}
)

// CreateTestConfig returns a valid roster file with one egg per table.
// The image and voice paths are not set so no assets are needed.
func CreateTestConfig() *config.File {
	refresh := 5

	return &config.File{
		Names:  append([]string(nil), TestNames...),
		Groups: append([]string(nil), TestGroups...),
		EggCases: []entities.EggCase{{
			Name:      "Alice",
			NewName:   "Queen Alice",
			Color:     string(entities.ColorPurple),
			SpeakText: "all hail the queen",
		}},
		EggCasesGroup: []entities.EggCase{{
			Name:  "Blue Team",
			Color: string(entities.ColorBlue),
			Force: true,
		}},
		SeedRefreshMinutes: &refresh,
	}
}
