package git

import (
	"strings"
	"testing"
)

// silentLogger discards everything; prompts are not under test here
type silentLogger struct{}

func (silentLogger) Info(string, ...interface{})          {}
func (silentLogger) Warning(string, ...interface{})       {}
func (silentLogger) Error(string, ...interface{})         {}
func (silentLogger) InfoToUser(string, ...interface{})    {}
func (silentLogger) WarningToUser(string, ...interface{}) {}
func (silentLogger) Success(string, ...interface{})       {}
func (silentLogger) StatusMessage(string, ...interface{}) {}

func TestPromptYesNo(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected bool
	}{
		"yes":                {"y\n", true},
		"yes full word":      {"yes\n", true},
		"yes uppercase":      {"Y\n", true},
		"ja":                 {"j\n", true},
		"ja full word":       {"ja\n", true},
		"ja uppercase":       {"JA\n", true},
		"no":                 {"n\n", false},
		"no full word":       {"no\n", false},
		"empty line":         {"\n", false},
		"whitespace only":    {"   \n", false},
		"unrelated answer":   {"maybe\n", false},
		"leading whitespace": {"  y\n", true},
		"eof without answer": {"", false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			interactor := &DefaultInteractor{
				Reader: strings.NewReader(tc.input),
				Logger: silentLogger{},
			}

			if got := interactor.PromptYesNo("Is this correct?"); got != tc.expected {
				t.Errorf("PromptYesNo(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestPromptString(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
		wantErr  bool
	}{
		"plain value":       {input: "Paper_claude\n", expected: "Paper_claude"},
		"surrounding space": {input: "  Paper_claude  \n", expected: "Paper_claude"},
		"empty line":        {input: "\n", expected: ""},
		"eof":               {input: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			interactor := &DefaultInteractor{
				Reader: strings.NewReader(tc.input),
				Logger: silentLogger{},
			}

			got, err := interactor.PromptString("Enter exact repository name")
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected an error on EOF")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("PromptString(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestPromptsShareBufferedInput(t *testing.T) {
	// Piped stdin delivers several answers at once; the first read buffers
	// past its own line, and the later prompts must still see theirs
	interactor := &DefaultInteractor{
		Reader: strings.NewReader("Paper_claude\nj\ny\nn\n"),
		Logger: silentLogger{},
	}

	name, err := interactor.PromptString("Enter exact repository name")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if name != "Paper_claude" {
		t.Fatalf("Expected Paper_claude, got %q", name)
	}

	if !interactor.PromptYesNo("Is this correct?") {
		t.Error("Expected the queued ja answer to be read")
	}
	if !interactor.PromptYesNo("Commit them before publishing?") {
		t.Error("Expected the queued yes answer to be read")
	}
	if interactor.PromptYesNo("Force push and overwrite the remote history?") {
		t.Error("Expected the queued no answer to be read")
	}
}

func TestNonInteractiveInteractor(t *testing.T) {
	interactor := NewNonInteractiveInteractor()

	if interactor.PromptYesNo("Force push and overwrite the remote history?") {
		t.Error("Expected non-interactive yes/no prompts to answer no")
	}

	if _, err := interactor.PromptString("Enter exact repository name"); err == nil {
		t.Error("Expected non-interactive string prompts to fail")
	}
}
