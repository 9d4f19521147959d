package speech

import (
	"context"
	"os/exec"
	"strings"

	"github.com/KirkDiggler/name-picker/internal/errors"
)

// Known command line tools, tried in order
var (
	synthesizerCandidates = [][]string{
		{"say"},
		{"espeak-ng"},
		{"espeak"},
	}
	playerCandidates = [][]string{
		{"afplay"},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
		{"paplay"},
	}
)

// LookPath finds an executable, exec.LookPath by default
type LookPath func(file string) (string, error)

// Command runs an external program with the text or path as its last argument
type Command struct {
	Name string
	Args []string
}

// Speak runs the command with text appended
func (c *Command) Speak(ctx context.Context, text string) error {
	return c.run(ctx, text)
}

// Play runs the command with path appended
func (c *Command) Play(ctx context.Context, path string) error {
	return c.run(ctx, path)
}

func (c *Command) run(ctx context.Context, arg string) error {
	if c == nil || c.Name == "" {
		return errors.Unavailable("no command configured")
	}

	args := append(append([]string{}, c.Args...), arg)
	out, err := exec.CommandContext(ctx, c.Name, args...).CombinedOutput()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, strings.TrimSpace(c.Name+" failed: "+string(out)))
	}
	return nil
}

// ParseCommand splits a command line such as "espeak-ng -v zh" into a Command
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.InvalidArgument("command is empty")
	}
	return &Command{Name: fields[0], Args: fields[1:]}, nil
}

// DetectSynthesizer returns the override when set, otherwise the first
// installed speech tool. With nothing available every read fails.
func DetectSynthesizer(override string, look LookPath) (*Command, error) {
	return detect(override, synthesizerCandidates, look)
}

// DetectPlayer returns the override when set, otherwise the first
// installed audio player
func DetectPlayer(override string, look LookPath) (*Command, error) {
	return detect(override, playerCandidates, look)
}

func detect(override string, candidates [][]string, look LookPath) (*Command, error) {
	if override != "" {
		return ParseCommand(override)
	}
	if look == nil {
		look = exec.LookPath
	}

	for _, candidate := range candidates {
		if _, err := look(candidate[0]); err == nil {
			return &Command{Name: candidate[0], Args: candidate[1:]}, nil
		}
	}
	return &Command{}, nil
}
