package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/orchestrators/picker"
	"github.com/KirkDiggler/name-picker/internal/pkg/clock"
	"github.com/KirkDiggler/name-picker/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/name-picker/internal/redis"
	drawhistory "github.com/KirkDiggler/name-picker/internal/repositories/draw_history"
	"github.com/KirkDiggler/name-picker/internal/rng"
	"github.com/KirkDiggler/name-picker/internal/speech"
)

// pickerOptions are the per-command switches shared by ui and serve
type pickerOptions struct {
	seed    uint64
	seeded  bool
	eggs    bool
	voice   bool
	speaker bool
}

// runtime owns everything built for a picker session
type runtime struct {
	service picker.Service
	closers []func()
}

// Close releases resources in reverse order of creation
func (r *runtime) Close() {
	if r.service != nil {
		r.service.Close()
	}
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// buildHistory opens the configured history backend
func buildHistory(ctx context.Context, s *config.Settings) (drawhistory.Repository, func(), error) {
	switch s.HistoryBackend {
	case config.HistoryRedis:
		client, err := redisclient.NewClient(s.RedisAddr, &redisclient.Options{MaxRetries: 2})
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis").
				WithMeta("addr", s.RedisAddr)
		}
		repo, err := drawhistory.NewRedis(&drawhistory.RedisConfig{Client: client, MaxRecords: s.HistoryLimit})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil

	case config.HistorySQLite:
		repo, err := drawhistory.OpenSQLite(&drawhistory.SQLiteConfig{Path: s.SQLitePath, MaxRecords: s.HistoryLimit})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		return drawhistory.NewInMemory(s.HistoryLimit), func() {}, nil
	}
}

// buildQueue detects the speech and audio tools
func buildQueue(s *config.Settings, voice bool) (*speech.Queue, error) {
	synth, err := speech.DetectSynthesizer(s.SpeechCommand, nil)
	if err != nil {
		return nil, err
	}
	player, err := speech.DetectPlayer(s.AudioCommand, nil)
	if err != nil {
		return nil, err
	}
	slog.Info("Speech tools", "synthesizer", synth.Name, "player", player.Name)

	return speech.NewQueue(&speech.QueueConfig{
		Synthesizer:  synth,
		Player:       player,
		VoiceEnabled: voice,
		OnDisabled: func(err error) {
			slog.Warn("Speech disabled for this session", "error", err)
		},
	})
}

// buildRuntime wires history, speech and the orchestrator together
func buildRuntime(ctx context.Context, s *config.Settings, opts pickerOptions) (*runtime, error) {
	rt := &runtime{}

	repo, closeRepo, err := buildHistory(ctx, s)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, closeRepo)

	cfg := &picker.Config{
		ConfigPath:  s.Config,
		HistoryRepo: repo,
		IDGenerator: idgen.NewUUID("draw"),
		Clock:       clock.New(),
		Source: func(seed uint64) (rng.Source, error) {
			return rng.New(s.RandomSource, seed)
		},
		EggsEnabled: opts.eggs,
	}
	if opts.seeded {
		if s.RandomSource == rng.SourceDice {
			slog.Warn("The dice source ignores seeds, draws will not repeat", "seed", opts.seed)
		}
		seed := opts.seed
		cfg.Seed = &seed
	}

	if opts.speaker {
		queue, err := buildQueue(s, opts.voice)
		if err != nil {
			rt.Close()
			return nil, err
		}
		rt.closers = append(rt.closers, queue.Close)
		cfg.Announcer = queue
	}

	svc, err := picker.NewOrchestrator(cfg)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.service = svc

	return rt, nil
}
