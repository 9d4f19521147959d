// Package speech announces draw results: egg audio clips and synthesized
// speech, played one item at a time in the order they were queued.
package speech

//go:generate mockgen -destination=mock/mock_speech.go -package=speechmock github.com/KirkDiggler/name-picker/internal/speech Synthesizer,Player

import "context"

// Synthesizer reads text aloud, returning once speech has finished
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Player plays an audio file, returning once playback has finished
type Player interface {
	Play(ctx context.Context, path string) error
}

// Item is one queued announcement
type Item struct {
	// Text is spoken when voice is enabled
	Text string
	// AudioPath is played before the text regardless of the voice toggle
	AudioPath string
}
