package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/rng"
)

// History backends
const (
	HistoryMemory = "memory"
	HistoryRedis  = "redis"
	HistorySQLite = "sqlite"
)

// HistoryBackends lists the supported history backends
var HistoryBackends = []string{HistoryMemory, HistoryRedis, HistorySQLite}

// DefaultInstancePort is the loopback port held by a running UI
const DefaultInstancePort = 28758

// Settings are the process level options read from the environment.
// Command line flags override them.
type Settings struct {
	Config   string `env:"PICKER_CONFIG" envDefault:"config.json"`
	LogLevel string `env:"PICKER_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"PICKER_LOG_FILE" envDefault:"picker.log"`

	HistoryBackend string `env:"PICKER_HISTORY_BACKEND" envDefault:"memory"`
	HistoryLimit   int    `env:"PICKER_HISTORY_LIMIT" envDefault:"500"`
	RedisAddr      string `env:"PICKER_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath     string `env:"PICKER_SQLITE_PATH" envDefault:"picker.db"`

	GRPCPort     int `env:"PICKER_GRPC_PORT" envDefault:"50051"`
	InstancePort int `env:"PICKER_INSTANCE_PORT" envDefault:"28758"`

	RandomSource  string `env:"PICKER_RANDOM_SOURCE" envDefault:"pcg"`
	SpeechCommand string `env:"PICKER_SPEECH_COMMAND"`
	AudioCommand  string `env:"PICKER_AUDIO_COMMAND"`

	MirrorSource string `env:"PICKER_MIRROR_SOURCE"`
	MirrorDest   string `env:"PICKER_MIRROR_DEST"`
}

// LoadSettings parses Settings from the environment
func LoadSettings() (*Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks the settings ranges and enums
func (s *Settings) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Config", s.Config, vb)
	errors.ValidateEnum("LogLevel", s.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("HistoryBackend", s.HistoryBackend, HistoryBackends, vb)
	errors.ValidateRange("HistoryLimit", s.HistoryLimit, 1, 100000, vb)
	errors.ValidateRange("GRPCPort", s.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("InstancePort", s.InstancePort, 1, 65535, vb)
	errors.ValidateEnum("RandomSource", s.RandomSource, []string{rng.SourcePCG, rng.SourceDice}, vb)

	return vb.Build()
}
