package git

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/repoship/repoship/internal/common"
	"github.com/repoship/repoship/internal/errors"
)

// UserInteractor defines an interface for interacting with the operator
type UserInteractor interface {
	// PromptYesNo asks a yes/no question and returns the answer
	PromptYesNo(question string) bool

	// PromptString asks for a free-form value and returns it trimmed
	PromptString(prompt string) (string, error)
}

// DefaultInteractor is the standard implementation of UserInteractor
// that reads from stdin and writes through the logger
type DefaultInteractor struct {
	Reader io.Reader
	Logger common.Logger

	reader *bufio.Reader
}

// NewDefaultInteractor creates a new DefaultInteractor
func NewDefaultInteractor(logger common.Logger) *DefaultInteractor {
	return &DefaultInteractor{
		Reader: os.Stdin,
		Logger: logger,
	}
}

// buffered returns the reader shared by every prompt. Buffering reads
// ahead, so a reader created per prompt would drop answers queued behind
// the previous one.
func (i *DefaultInteractor) buffered() *bufio.Reader {
	if i.reader == nil {
		i.reader = bufio.NewReader(i.Reader)
	}
	return i.reader
}

// PromptYesNo asks the operator a yes/no question and returns their response.
// Any answer starting with "y" is affirmative; "j" is accepted too (ja).
func (i *DefaultInteractor) PromptYesNo(question string) bool {
	i.Logger.StatusMessage("%s (y/n): ", question)

	answer, err := i.buffered().ReadString('\n')
	if err != nil && answer == "" {
		// On error, default to 'no'
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "j")
}

// PromptString asks the operator for a value and returns it with surrounding
// whitespace removed. An empty answer is returned as the empty string.
func (i *DefaultInteractor) PromptString(prompt string) (string, error) {
	i.Logger.StatusMessage("%s: ", prompt)

	answer, err := i.buffered().ReadString('\n')
	if err != nil && answer == "" {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(answer), nil
}

// NonInteractiveInteractor always returns default values without prompting
type NonInteractiveInteractor struct{}

// NewNonInteractiveInteractor creates a new NonInteractiveInteractor
func NewNonInteractiveInteractor() *NonInteractiveInteractor {
	return &NonInteractiveInteractor{}
}

// PromptYesNo always returns false without prompting
func (i *NonInteractiveInteractor) PromptYesNo(question string) bool {
	return false
}

// PromptString always returns an error; values must be supplied up front
func (i *NonInteractiveInteractor) PromptString(prompt string) (string, error) {
	return "", errors.New("interactive input is disabled")
}
