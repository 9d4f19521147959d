package speech

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

// QueueConfig configures an announcement queue
type QueueConfig struct {
	Synthesizer Synthesizer
	Player      Player

	// VoiceEnabled is the initial state of the voice toggle
	VoiceEnabled bool

	// OnDisabled is called once if speech is switched off after the
	// very first read fails
	OnDisabled func(err error)
}

// Validate ensures the queue has something to drive
func (cfg *QueueConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Synthesizer == nil {
		vb.RequiredField("Synthesizer")
	}
	if cfg.Player == nil {
		vb.RequiredField("Player")
	}
	return vb.Build()
}

// Queue plays announcements on a single worker goroutine in FIFO order
type Queue struct {
	synth      Synthesizer
	player     Player
	onDisabled func(error)

	mu           sync.Mutex
	items        []Item
	voiceEnabled bool
	succeeded    bool
	disabled     bool
	busy         bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewQueue starts the worker
func NewQueue(cfg *QueueConfig) (*Queue, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		synth:        cfg.Synthesizer,
		player:       cfg.Player,
		onDisabled:   cfg.OnDisabled,
		voiceEnabled: cfg.VoiceEnabled,
		wake:         make(chan struct{}, 1),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}
	go q.run()
	return q, nil
}

// Enqueue appends an announcement without blocking. Items without
// audio are dropped while voice is off.
func (q *Queue) Enqueue(item Item) {
	q.mu.Lock()
	if item.AudioPath == "" && !q.speaking() {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// SetVoiceEnabled flips the voice toggle. It has no effect once speech
// has been disabled for the session.
func (q *Queue) SetVoiceEnabled(enabled bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.voiceEnabled = enabled
}

// VoiceEnabled reports whether text will be spoken
func (q *Queue) VoiceEnabled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.speaking()
}

// Pending returns the number of queued items, including the one playing
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := len(q.items)
	if q.busy {
		n++
	}
	return n
}

// Close stops the worker, interrupting the current item and dropping the rest
func (q *Queue) Close() {
	q.once.Do(q.cancel)
	<-q.done
}

func (q *Queue) speaking() bool {
	return q.voiceEnabled && !q.disabled
}

func (q *Queue) next() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		q.busy = false
		return Item{}, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	q.busy = true
	return item, true
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		item, ok := q.next()
		if !ok {
			select {
			case <-q.wake:
				continue
			case <-q.ctx.Done():
				return
			}
		}
		if q.ctx.Err() != nil {
			return
		}
		q.play(item)
	}
}

func (q *Queue) play(item Item) {
	if item.AudioPath != "" {
		if err := q.player.Play(q.ctx, item.AudioPath); err != nil {
			slog.Warn("Audio playback failed", "path", item.AudioPath, "error", err)
		}
	}

	q.mu.Lock()
	speak := item.Text != "" && q.speaking()
	q.mu.Unlock()
	if !speak {
		return
	}

	err := q.synth.Speak(q.ctx, item.Text)

	q.mu.Lock()
	if err == nil {
		q.succeeded = true
		q.mu.Unlock()
		return
	}
	disable := !q.succeeded && !q.disabled
	if disable {
		q.disabled = true
		q.items = dropSpeechOnly(q.items)
	}
	q.mu.Unlock()

	if !disable {
		slog.Warn("Speech failed", "text", item.Text, "error", err)
		return
	}

	slog.Error("Speech disabled for this session", "error", err)
	if q.onDisabled != nil {
		q.onDisabled(err)
	}
}

func dropSpeechOnly(items []Item) []Item {
	kept := items[:0]
	for _, item := range items {
		if item.AudioPath != "" {
			kept = append(kept, item)
		}
	}
	return kept
}
