package git

import (
	"os/exec"
	"strings"
)

// MockCommandExecutor is a simple mock of the CommandExecutor interface
// that doesn't actually execute anything but just records calls.
type MockCommandExecutor struct {
	Output              string
	LastCmd             *exec.Cmd
	Commands            []*exec.Cmd
	ExecuteFn           func(cmd *exec.Cmd) error
	ExecuteWithOutputFn func(cmd *exec.Cmd) (string, error)
}

// NewMockCommandExecutor creates a new mock executor
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Commands: make([]*exec.Cmd, 0),
	}
}

// Execute implements the CommandExecutor interface
func (m *MockCommandExecutor) Execute(cmd *exec.Cmd) error {
	m.LastCmd = cmd
	m.Commands = append(m.Commands, cmd)

	if m.ExecuteFn != nil {
		return m.ExecuteFn(cmd)
	}
	return nil
}

// ExecuteWithOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithOutput(cmd *exec.Cmd) (string, error) {
	m.LastCmd = cmd
	m.Commands = append(m.Commands, cmd)

	if m.ExecuteWithOutputFn != nil {
		return m.ExecuteWithOutputFn(cmd)
	}
	return m.Output, nil
}

// gitArgs returns the arguments following the git executable for a
// recorded command, joined with spaces: "push -u origin main".
func gitArgs(cmd *exec.Cmd) string {
	if len(cmd.Args) < 2 {
		return strings.Join(cmd.Args, " ")
	}
	return strings.Join(cmd.Args[1:], " ")
}

// recordedGitCommands renders every recorded command through gitArgs
func recordedGitCommands(m *MockCommandExecutor) []string {
	out := make([]string, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		out = append(out, gitArgs(cmd))
	}
	return out
}
