package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrap(originalErr, "wrapped message")

	if !Is(wrappedErr, originalErr) {
		t.Errorf("Expected wrapped error to match original, but it didn't")
	}

	expectedMsg := "wrapped message: original error"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, wrappedErr.Error())
	}
}

func TestWrapf(t *testing.T) {
	originalErr := New("original error")
	wrappedErr := Wrapf(originalErr, "wrapped message with %s", "format")

	if !Is(wrappedErr, originalErr) {
		t.Errorf("Expected wrapped error to match original, but it didn't")
	}

	expectedMsg := "wrapped message with format: original error"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, wrappedErr.Error())
	}
}

func TestGitError(t *testing.T) {
	err := errors.New("command failed")
	gitErr := NewGitError("push", []string{"-u", "origin", "main"}, err, "Permission denied")

	expectedMsg := "git push failed: Permission denied: command failed"
	if gitErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, gitErr.Error())
	}

	if !errors.Is(gitErr, err) {
		t.Errorf("Expected GitError.Unwrap() to return the original error")
	}
}

func TestGitErrorWithoutOutput(t *testing.T) {
	gitErr := NewGitError("remote", []string{"add", "origin"}, ErrGitOperationFailed, "")

	expectedMsg := "git remote failed: git operation failed"
	if gitErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, gitErr.Error())
	}
}

func TestAPIError(t *testing.T) {
	err := errors.New("validation failed")
	apiErr := NewAPIError("user/repos", 422, err)

	expectedMsg := "api request to user/repos failed with status 422: validation failed"
	if apiErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, apiErr.Error())
	}

	if !errors.Is(apiErr, err) {
		t.Errorf("Expected APIError.Unwrap() to return the original error")
	}

	// Without a status code (e.g. a transport-level failure)
	apiErr = NewAPIError("user/repos", 0, err)
	expectedMsg = "api request to user/repos failed: validation failed"
	if apiErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, apiErr.Error())
	}
}

func TestLockError(t *testing.T) {
	err := errors.New("file not found")
	lockErr := NewLockError("/tmp/lock.file", 1234, err)

	expectedMsg := "lock error with file /tmp/lock.file (PID: 1234): file not found"
	if lockErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, lockErr.Error())
	}

	lockErr = NewLockError("/tmp/lock.file", 0, err)
	expectedMsg = "lock error with file /tmp/lock.file: file not found"
	if lockErr.Error() != expectedMsg {
		t.Errorf("Expected message %q, got %q", expectedMsg, lockErr.Error())
	}
}

func TestConfigError(t *testing.T) {
	err := errors.New("must not be empty")
	cfgErr := NewConfigError("owner", "", err)

	if !errors.Is(cfgErr, err) {
		t.Errorf("Expected ConfigError.Unwrap() to return the original error")
	}

	var target *ConfigError
	if !As(cfgErr, &target) {
		t.Errorf("Expected As to find a ConfigError in the chain")
	}
	if target.Parameter != "owner" {
		t.Errorf("Expected parameter owner, got %s", target.Parameter)
	}
}

func TestSentinelWrapping(t *testing.T) {
	tests := map[string]struct {
		err      error
		sentinel error
	}{
		"empty name":  {Wrap(ErrEmptyRepoName, "prompt"), ErrEmptyRepoName},
		"aborted":     {Wrap(ErrAborted, "confirmation"), ErrAborted},
		"unreachable": {fmt.Errorf("probe: %w", ErrRemoteUnreachable), ErrRemoteUnreachable},
		"rejected":    {Wrapf(ErrPushRejected, "after %d attempts", 2), ErrPushRejected},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if !Is(tc.err, tc.sentinel) {
				t.Errorf("Expected %v to wrap %v", tc.err, tc.sentinel)
			}
		})
	}
}
