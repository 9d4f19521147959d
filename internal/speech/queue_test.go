package speech_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/name-picker/internal/errors"
	"github.com/KirkDiggler/name-picker/internal/speech"
	speechmock "github.com/KirkDiggler/name-picker/internal/speech/mock"
)

type QueueTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	synth     *speechmock.MockSynthesizer
	player    *speechmock.MockPlayer
	disabled  atomic.Int32
	queue     *speech.Queue
	voiceOnAt bool
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueTestSuite))
}

func (s *QueueTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.synth = speechmock.NewMockSynthesizer(s.ctrl)
	s.player = speechmock.NewMockPlayer(s.ctrl)
	s.disabled.Store(0)
	s.voiceOnAt = true
}

func (s *QueueTestSuite) start() {
	queue, err := speech.NewQueue(&speech.QueueConfig{
		Synthesizer:  s.synth,
		Player:       s.player,
		VoiceEnabled: s.voiceOnAt,
		OnDisabled:   func(error) { s.disabled.Add(1) },
	})
	s.Require().NoError(err)
	s.queue = queue
}

func (s *QueueTestSuite) drain() {
	s.Require().Eventually(func() bool { return s.queue.Pending() == 0 }, time.Second, time.Millisecond)
}

func (s *QueueTestSuite) TearDownTest() {
	if s.queue != nil {
		s.queue.Close()
		s.queue = nil
	}
	s.ctrl.Finish()
}

func (s *QueueTestSuite) TestStrictFIFO() {
	gomock.InOrder(
		s.synth.EXPECT().Speak(gomock.Any(), "first").Return(nil),
		s.synth.EXPECT().Speak(gomock.Any(), "second").Return(nil),
		s.synth.EXPECT().Speak(gomock.Any(), "third").Return(nil),
	)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "first"})
	s.queue.Enqueue(speech.Item{Text: "second"})
	s.queue.Enqueue(speech.Item{Text: "third"})
	s.drain()
}

func (s *QueueTestSuite) TestAudioPlaysBeforeSpeech() {
	gomock.InOrder(
		s.player.EXPECT().Play(gomock.Any(), "fanfare.mp3").Return(nil),
		s.synth.EXPECT().Speak(gomock.Any(), "Alice").Return(nil),
	)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "Alice", AudioPath: "fanfare.mp3"})
	s.drain()
}

func (s *QueueTestSuite) TestAudioIgnoresVoiceToggle() {
	s.voiceOnAt = false
	s.player.EXPECT().Play(gomock.Any(), "fanfare.mp3").Return(nil)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "Alice", AudioPath: "fanfare.mp3"})
	s.queue.Enqueue(speech.Item{Text: "Bob"})
	s.drain()

	s.Assert().False(s.queue.VoiceEnabled())
}

func (s *QueueTestSuite) TestAudioFailureStillSpeaks() {
	gomock.InOrder(
		s.player.EXPECT().Play(gomock.Any(), "broken.mp3").Return(errors.Unavailable("no device")),
		s.synth.EXPECT().Speak(gomock.Any(), "Alice").Return(nil),
	)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "Alice", AudioPath: "broken.mp3"})
	s.drain()
}

func (s *QueueTestSuite) TestFirstFailureDisablesSpeech() {
	release := make(chan struct{})
	s.synth.EXPECT().Speak(gomock.Any(), "first").DoAndReturn(func(context.Context, string) error {
		<-release
		return errors.Unavailable("no voice installed")
	})
	s.player.EXPECT().Play(gomock.Any(), "fanfare.mp3").Return(nil)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "first"})
	s.queue.Enqueue(speech.Item{Text: "second"})
	s.queue.Enqueue(speech.Item{Text: "third", AudioPath: "fanfare.mp3"})
	close(release)
	s.drain()

	s.Assert().False(s.queue.VoiceEnabled())
	s.Assert().Equal(int32(1), s.disabled.Load())

	s.queue.SetVoiceEnabled(true)
	s.queue.Enqueue(speech.Item{Text: "fourth"})
	s.drain()
	s.Assert().False(s.queue.VoiceEnabled())
}

func (s *QueueTestSuite) TestLaterFailuresAreSkipped() {
	gomock.InOrder(
		s.synth.EXPECT().Speak(gomock.Any(), "first").Return(nil),
		s.synth.EXPECT().Speak(gomock.Any(), "second").Return(errors.Unavailable("busy")),
		s.synth.EXPECT().Speak(gomock.Any(), "third").Return(nil),
	)
	s.start()

	s.queue.Enqueue(speech.Item{Text: "first"})
	s.queue.Enqueue(speech.Item{Text: "second"})
	s.queue.Enqueue(speech.Item{Text: "third"})
	s.drain()

	s.Assert().True(s.queue.VoiceEnabled())
	s.Assert().Zero(s.disabled.Load())
}

func (s *QueueTestSuite) TestVoiceToggle() {
	s.synth.EXPECT().Speak(gomock.Any(), "on").Return(nil)
	s.start()

	s.queue.SetVoiceEnabled(false)
	s.queue.Enqueue(speech.Item{Text: "off"})
	s.queue.SetVoiceEnabled(true)
	s.queue.Enqueue(speech.Item{Text: "on"})
	s.drain()
}

func (s *QueueTestSuite) TestCloseInterruptsPlayback() {
	started := make(chan struct{})
	s.synth.EXPECT().Speak(gomock.Any(), "long").DoAndReturn(func(ctx context.Context, _ string) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})
	s.start()

	s.queue.Enqueue(speech.Item{Text: "long"})
	s.queue.Enqueue(speech.Item{Text: "never"})
	<-started

	s.queue.Close()
	s.queue = nil
}

func (s *QueueTestSuite) TestConfigValidation() {
	_, err := speech.NewQueue(&speech.QueueConfig{})
	s.Require().Error(err)

	fields := errors.ValidationErrors(err)
	s.Assert().Contains(fields, "Synthesizer")
	s.Assert().Contains(fields, "Player")

	_, err = speech.NewQueue(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
