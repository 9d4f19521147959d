// Package picker implements the picker orchestrator: it owns the draw
// engine and egg resolver for the loaded roster and serializes every
// operation through a dispatch loop.
package picker

//go:generate mockgen -destination=mock/mock_service.go -package=pickermock github.com/KirkDiggler/name-picker/internal/orchestrators/picker Service,Announcer

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/name-picker/internal/config"
	"github.com/KirkDiggler/name-picker/internal/dispatch"
	"github.com/KirkDiggler/name-picker/internal/eggs"
	"github.com/KirkDiggler/name-picker/internal/engine"
	"github.com/KirkDiggler/name-picker/internal/entities"
	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/pkg/clock"
	"github.com/KirkDiggler/name-picker/internal/pkg/idgen"
	drawhistory "github.com/KirkDiggler/name-picker/internal/repositories/draw_history"
	"github.com/KirkDiggler/name-picker/internal/rng"
	"github.com/KirkDiggler/name-picker/internal/speech"
)

const (
	errPresentationFailed = "draw committed but presentation failed"
	errUnknownEntry       = "entry is not in any roster"
)

// Service defines the picker operations shared by the terminal UI and the gRPC handler
type Service interface {
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
	SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error)

	SetLeaveList(ctx context.Context, input *SetLeaveListInput) (*SetLeaveListOutput, error)
	GetLeaveList(ctx context.Context, input *GetLeaveListInput) (*GetLeaveListOutput, error)

	SetEggsEnabled(ctx context.Context, input *SetEggsEnabledInput) (*SetEggsEnabledOutput, error)
	SetVoiceEnabled(ctx context.Context, input *SetVoiceEnabledInput) (*SetVoiceEnabledOutput, error)

	Reseed(ctx context.Context, input *ReseedInput) (*ReseedOutput, error)
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Close stops the reseed timer and the dispatch loop
	Close()
}

// Announcer speaks draw results
type Announcer interface {
	Enqueue(item speech.Item)
	SetVoiceEnabled(enabled bool)
	VoiceEnabled() bool
}

// SourceFactory builds the entropy source for a freshly loaded roster
type SourceFactory func(seed uint64) (rng.Source, error)

// Config holds the dependencies for the picker orchestrator
type Config struct {
	// ConfigPath is the roster file read by Reload
	ConfigPath string
	// File is the initial roster; loaded from ConfigPath when nil
	File *config.File
	// Loader reads roster files, config.Load by default
	Loader func(path string) (*config.File, error)
	// FileExists checks egg assets, os.Stat by default
	FileExists eggs.FileExists

	HistoryRepo drawhistory.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// Source builds the entropy source, a PCG source by default
	Source SourceFactory
	// Seed fixes the first seed; a random seed is used when nil
	Seed *uint64

	// Announcer is optional
	Announcer Announcer

	EggsEnabled bool
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.File == nil && c.ConfigPath == "" {
		vb.Field("ConfigPath", "is required when no file is provided")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.File != nil {
		if err := c.File.Validate(c.FileExists); err != nil {
			return errors.Wrap(err, "invalid roster")
		}
	}
	return nil
}

// state is only touched from the dispatch loop
type state struct {
	file        *config.File
	engine      engine.Engine
	resolver    eggs.Resolver
	eggsEnabled bool
	reseededAt  time.Time
	stopReseed  func()
}

type orchestrator struct {
	configPath  string
	loader      func(string) (*config.File, error)
	fileExists  eggs.FileExists
	historyRepo drawhistory.Repository
	idGen       idgen.Generator
	clock       clock.Clock
	source      SourceFactory
	announcer   Announcer

	loop  *dispatch.Loop
	state *state
}

// NewOrchestrator creates a picker orchestrator and arms the reseed timer
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		configPath:  cfg.ConfigPath,
		loader:      cfg.Loader,
		fileExists:  cfg.FileExists,
		historyRepo: cfg.HistoryRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		source:      cfg.Source,
		announcer:   cfg.Announcer,
	}
	if o.loader == nil {
		o.loader = func(path string) (*config.File, error) {
			return config.LoadWithExists(path, o.fileExists)
		}
	}
	if o.source == nil {
		o.source = func(seed uint64) (rng.Source, error) {
			return rng.New(rng.SourcePCG, seed)
		}
	}

	file := cfg.File
	if file == nil {
		loaded, err := o.loader(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	seed, err := seedOrRandom(cfg.Seed)
	if err != nil {
		return nil, err
	}
	st, err := o.build(file, seed)
	if err != nil {
		return nil, err
	}
	st.eggsEnabled = cfg.EggsEnabled

	o.state = st
	o.loop = dispatch.New()
	var armErr error
	if err := o.loop.Do(context.Background(), func() { armErr = o.armReseed() }); err != nil {
		o.loop.Close()
		return nil, err
	}
	if armErr != nil {
		o.loop.Close()
		return nil, armErr
	}

	slog.Info("Picker ready",
		"names", len(file.Names),
		"groups", len(file.Groups),
		"personal_mode", file.ModeFor(entities.KindPersonal),
		"group_mode", file.ModeFor(entities.KindGroup),
		"seed_refresh", file.SeedRefresh().String())

	return o, nil
}

func seedOrRandom(seed *uint64) (uint64, error) {
	if seed != nil {
		return *seed, nil
	}
	return rng.NewSeed()
}

// build creates fresh engine and resolver state for a roster file
func (o *orchestrator) build(file *config.File, seed uint64) (*state, error) {
	source, err := o.source(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create random source")
	}

	eng, err := engine.New(&engine.Config{
		Names:        file.Names,
		Groups:       file.Groups,
		PersonalMode: file.ModeFor(entities.KindPersonal),
		GroupMode:    file.ModeFor(entities.KindGroup),
		Source:       source,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	resolver, err := eggs.NewResolver(&eggs.Config{
		Personal:   file.EggCases,
		Group:      file.EggCasesGroup,
		FileExists: o.fileExists,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create egg resolver")
	}

	return &state{
		file:       file,
		engine:     eng,
		resolver:   resolver,
		reseededAt: o.clock.Now(),
	}, nil
}

// armReseed replaces the reseed timer; runs on the loop
func (o *orchestrator) armReseed() error {
	if o.state.stopReseed != nil {
		o.state.stopReseed()
		o.state.stopReseed = nil
	}
	stop, err := o.loop.Every(o.state.file.SeedRefresh(), o.reseedFromTimer)
	if err != nil {
		return errors.Wrap(err, "failed to arm reseed timer")
	}
	o.state.stopReseed = stop
	return nil
}

func (o *orchestrator) reseedFromTimer() {
	seed, err := rng.NewSeed()
	if err != nil {
		slog.Warn("Scheduled reseed skipped", "error", err)
		return
	}
	o.applySeed(seed)
}

// applySeed runs on the loop
func (o *orchestrator) applySeed(seed uint64) bool {
	applied := o.state.engine.Reseed(seed)
	if applied {
		o.state.reseededAt = o.clock.Now()
	}
	slog.Debug("Random source reseeded", "applied", applied)
	return applied
}

// run executes fn on the dispatch loop
func (o *orchestrator) run(ctx context.Context, fn func()) error {
	return o.loop.Do(ctx, fn)
}

func validKind(kind entities.Kind) error {
	if !kind.Valid() {
		return errors.InvalidArgumentf("unknown roster kind %q", kind).
			WithMeta(errors.MetaKind, string(kind))
	}
	return nil
}

// Draw selects an entry and resolves its presentation. A resolver failure
// is returned after the draw has committed; the error carries committed=true.
func (o *orchestrator) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validKind(input.Kind); err != nil {
		return nil, err
	}

	var (
		result       *engine.DrawResult
		presentation *entities.Presentation
		drawErr      error
		resolveErr   error
	)
	err := o.run(ctx, func() {
		result, drawErr = o.state.engine.Draw(input.Kind)
		if drawErr != nil {
			return
		}
		presentation, resolveErr = o.state.resolver.Resolve(result.Entry.ID, input.Kind, o.state.eggsEnabled)
	})
	if err != nil {
		return nil, err
	}
	if drawErr != nil {
		slog.Info("Draw failed", "kind", input.Kind, "error", drawErr)
		return nil, drawErr
	}

	record := &drawhistory.Record{
		ID:      o.idGen.Generate(),
		Kind:    input.Kind,
		Entry:   result.Entry.ID,
		Mode:    result.Mode,
		DrawnAt: o.clock.Now(),
	}
	if resolveErr != nil {
		record.DisplayText = result.Entry.ID
		record.Color = entities.DefaultColor
		record.ResolveError = errors.GetMessage(resolveErr)
	} else {
		record.DisplayText = presentation.DisplayText
		record.Color = presentation.Color
		record.EggApplied = presentation.EggApplied
	}
	o.appendHistory(ctx, record)

	if resolveErr != nil {
		slog.Warn("Draw committed but presentation failed",
			"kind", input.Kind,
			"entry", result.Entry.ID,
			"error", resolveErr)
		return nil, errors.Wrap(resolveErr, errPresentationFailed).
			WithMeta(errors.MetaCommitted, true).
			WithMeta(errors.MetaEntry, result.Entry.ID).
			WithMeta(errors.MetaKind, string(input.Kind))
	}

	slog.Info("Draw completed",
		"kind", input.Kind,
		"mode", result.Mode,
		"entry", result.Entry.ID,
		"discarded", len(result.Discarded),
		"egg", presentation.EggApplied)

	o.announce(presentation)

	return &DrawOutput{
		Entry:        result.Entry,
		Mode:         result.Mode,
		Presentation: presentation,
		Discarded:    result.Discarded,
		Refilled:     result.Refilled,
		RecordID:     record.ID,
	}, nil
}

func (o *orchestrator) appendHistory(ctx context.Context, record *drawhistory.Record) {
	if _, err := o.historyRepo.Append(ctx, &drawhistory.AppendInput{Record: record}); err != nil {
		slog.Warn("Failed to record draw", "id", record.ID, "entry", record.Entry, "error", err)
	}
}

func (o *orchestrator) announce(p *entities.Presentation) {
	if o.announcer == nil {
		return
	}
	o.announcer.Enqueue(speech.Item{Text: p.SpokenText, AudioPath: p.AudioPath})
}

// Preview resolves an entry from either roster without touching draw state
func (o *orchestrator) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("entry ID is required")
	}

	var (
		entry        *entities.Entry
		found        bool
		presentation *entities.Presentation
		resolveErr   error
	)
	err := o.run(ctx, func() {
		entry, found = o.state.engine.Lookup(input.ID)
		if !found {
			return
		}
		presentation, resolveErr = o.state.resolver.Resolve(entry.ID, entry.Kind, o.state.eggsEnabled)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound(errUnknownEntry).WithMeta(errors.MetaEntry, input.ID)
	}
	if resolveErr != nil {
		return nil, resolveErr
	}

	if input.Announce {
		o.announce(presentation)
	}

	return &PreviewOutput{Entry: entry, Presentation: presentation}, nil
}

// Reset clears the active mode's state of a roster
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validKind(input.Kind); err != nil {
		return nil, err
	}

	var (
		mode     entities.Mode
		resetErr error
	)
	err := o.run(ctx, func() {
		mode = o.state.engine.Mode(input.Kind)
		resetErr = o.state.engine.Reset(input.Kind)
	})
	if err != nil {
		return nil, err
	}
	if resetErr != nil {
		return nil, resetErr
	}

	slog.Info("Roster reset", "kind", input.Kind, "mode", mode)
	return &ResetOutput{Mode: mode}, nil
}

// SetMode switches a roster's mode, toggling when no mode is given
func (o *orchestrator) SetMode(ctx context.Context, input *SetModeInput) (*SetModeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validKind(input.Kind); err != nil {
		return nil, err
	}
	if input.Mode != "" && !input.Mode.Valid() {
		return nil, errors.InvalidArgumentf("unknown mode %q", input.Mode)
	}

	var (
		mode    entities.Mode
		modeErr error
	)
	err := o.run(ctx, func() {
		mode = input.Mode
		if mode == "" {
			mode = o.state.engine.Mode(input.Kind).Toggle()
		}
		modeErr = o.state.engine.SetMode(input.Kind, mode)
	})
	if err != nil {
		return nil, err
	}
	if modeErr != nil {
		return nil, modeErr
	}

	slog.Info("Mode changed", "kind", input.Kind, "mode", mode)
	return &SetModeOutput{Mode: mode}, nil
}

// SetLeaveList replaces the leave list for both rosters
func (o *orchestrator) SetLeaveList(ctx context.Context, input *SetLeaveListInput) (*SetLeaveListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out SetLeaveListOutput
	err := o.run(ctx, func() {
		out.Unknown = o.state.engine.SetLeaveList(input.Entries)
		out.Entries = o.state.engine.LeaveList()
	})
	if err != nil {
		return nil, err
	}

	if len(out.Unknown) > 0 {
		slog.Warn("Leave list names unknown entries", "unknown", out.Unknown)
	}
	slog.Info("Leave list updated", "entries", len(out.Entries))
	return &out, nil
}

// GetLeaveList returns the leave list in the order it was set
func (o *orchestrator) GetLeaveList(ctx context.Context, _ *GetLeaveListInput) (*GetLeaveListOutput, error) {
	var out GetLeaveListOutput
	if err := o.run(ctx, func() { out.Entries = o.state.engine.LeaveList() }); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetEggsEnabled flips the global egg toggle
func (o *orchestrator) SetEggsEnabled(ctx context.Context, input *SetEggsEnabledInput) (*SetEggsEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.run(ctx, func() { o.state.eggsEnabled = input.Enabled }); err != nil {
		return nil, err
	}

	slog.Info("Eggs toggled", "enabled", input.Enabled)
	return &SetEggsEnabledOutput{Enabled: input.Enabled}, nil
}

// SetVoiceEnabled flips speech synthesis on the announcer
func (o *orchestrator) SetVoiceEnabled(_ context.Context, input *SetVoiceEnabledInput) (*SetVoiceEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.announcer == nil {
		return nil, errors.FailedPrecondition("speech is not configured")
	}

	o.announcer.SetVoiceEnabled(input.Enabled)
	enabled := o.announcer.VoiceEnabled()

	slog.Info("Voice toggled", "requested", input.Enabled, "enabled", enabled)
	return &SetVoiceEnabledOutput{Enabled: enabled}, nil
}

// Reseed replaces the random source state, with a random seed unless one is given
func (o *orchestrator) Reseed(ctx context.Context, input *ReseedInput) (*ReseedOutput, error) {
	if input == nil {
		input = &ReseedInput{}
	}
	seed, err := seedOrRandom(input.Seed)
	if err != nil {
		return nil, err
	}

	var applied bool
	if err := o.run(ctx, func() { applied = o.applySeed(seed) }); err != nil {
		return nil, err
	}
	if !applied {
		return nil, errors.FailedPrecondition("random source cannot be reseeded")
	}

	return &ReseedOutput{Seed: seed, Applied: applied}, nil
}

// Reload re-reads the roster file and rebuilds all draw state. The leave
// list and both modes' state are discarded; the egg toggle is kept.
func (o *orchestrator) Reload(ctx context.Context, _ *ReloadInput) (*ReloadOutput, error) {
	if o.configPath == "" {
		return nil, errors.FailedPrecondition("no config path to reload from")
	}

	file, err := o.loader(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := file.Validate(o.fileExists); err != nil {
		return nil, errors.Wrap(err, "invalid roster")
	}
	seed, err := rng.NewSeed()
	if err != nil {
		return nil, err
	}
	next, err := o.build(file, seed)
	if err != nil {
		return nil, err
	}

	var armErr error
	err = o.run(ctx, func() {
		next.eggsEnabled = o.state.eggsEnabled
		next.stopReseed = o.state.stopReseed
		o.state = next
		armErr = o.armReseed()
	})
	if err != nil {
		return nil, err
	}
	if armErr != nil {
		return nil, armErr
	}

	slog.Info("Config reloaded", "path", o.configPath, "names", len(file.Names), "groups", len(file.Groups))
	return &ReloadOutput{Names: len(file.Names), Groups: len(file.Groups)}, nil
}

// GetStatus returns a snapshot of toggles and both rosters
func (o *orchestrator) GetStatus(ctx context.Context, _ *GetStatusInput) (*GetStatusOutput, error) {
	status := &Status{ConfigPath: o.configPath}
	var snapErr error

	err := o.run(ctx, func() {
		st := o.state
		status.EggsEnabled = st.eggsEnabled
		status.AutoClose = st.file.AutoCloseEnabled()
		status.SeedRefresh = st.file.SeedRefresh()
		status.ReseededAt = st.reseededAt
		status.LeaveList = st.engine.LeaveList()

		for _, kind := range entities.Kinds {
			snap, err := st.engine.Snapshot(kind)
			if err != nil {
				snapErr = err
				return
			}
			status.Rosters = append(status.Rosters, &RosterStatus{
				Kind:         kind,
				Mode:         snap.Mode,
				Size:         len(snap.Roster),
				Eligible:     snap.Eligible,
				PoolSize:     len(snap.Pool),
				Weights:      snap.Weights,
				LastSelected: snap.LastSelected,
			})
		}
	})
	if err != nil {
		return nil, err
	}
	if snapErr != nil {
		return nil, snapErr
	}

	if o.announcer != nil {
		status.VoiceEnabled = o.announcer.VoiceEnabled()
	}
	return &GetStatusOutput{Status: status}, nil
}

// ListHistory returns recorded draws newest first
func (o *orchestrator) ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	if input == nil {
		input = &ListHistoryInput{}
	}

	out, err := o.historyRepo.List(ctx, &drawhistory.ListInput{Kind: input.Kind, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list history")
	}
	return &ListHistoryOutput{Records: out.Records}, nil
}

// ClearHistory removes recorded draws
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		input = &ClearHistoryInput{}
	}

	out, err := o.historyRepo.Clear(ctx, &drawhistory.ClearInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear history")
	}

	slog.Info("History cleared", "kind", input.Kind, "removed", out.Removed)
	return &ClearHistoryOutput{Removed: out.Removed}, nil
}

// Close stops the reseed timer and the dispatch loop
func (o *orchestrator) Close() {
	_ = o.loop.Do(context.Background(), func() {
		if o.state.stopReseed != nil {
			o.state.stopReseed()
			o.state.stopReseed = nil
		}
	})
	o.loop.Close()
}
