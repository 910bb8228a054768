package lock

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/repoship/repoship/internal/errors"
)

// Locker prevents two publications from running against the same working
// tree at once. It uses an exclusive flock on a PID file in the temp
// directory, keyed by a hash of the project path.
type Locker struct {
	lockFile string
	lockFd   *os.File
	pid      int
	acquired bool
}

// New creates a Locker for the given project path
func New(repoPath string) (*Locker, error) {
	if runtime.GOOS == "windows" {
		return nil, errors.NewLockError("", 0,
			errors.New("repoship currently only supports Unix-like operating systems (Linux, macOS, BSD)"))
	}

	pathHash := fmt.Sprintf("%x", sha256.Sum256([]byte(repoPath)))[:16]
	lockFile := filepath.Join(os.TempDir(), fmt.Sprintf("repoship-%s.lock", pathHash))

	return &Locker{
		lockFile: lockFile,
		pid:      os.Getpid(),
	}, nil
}

// Acquire takes the lock, recovering stale locks left by dead processes.
// Returns an error wrapping errors.ErrAlreadyRunning when another live
// repoship process holds the lock.
func (l *Locker) Acquire() error {
	err := l.createAndLock()
	if err == nil {
		return nil
	}
	if os.IsExist(err) {
		return l.lockExisting()
	}
	return err
}

// createAndLock atomically creates a fresh lock file and locks it
func (l *Locker) createAndLock() error {
	var err error

	l.lockFd, err = os.OpenFile(l.lockFile, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0666)
	if err != nil {
		if os.IsExist(err) {
			// Pass through so the caller can fall back to the existing file
			return err
		}
		return errors.NewLockError(l.lockFile, 0, errors.Wrap(err, "failed to create lock file"))
	}

	if err = l.flock(); err != nil {
		l.closeFd()
		return errors.NewLockError(l.lockFile, 0, errors.Wrap(err, "failed to lock newly created lock file"))
	}

	return l.recordPid()
}

// lockExisting tries to take over a lock file that already exists
func (l *Locker) lockExisting() error {
	var err error

	l.lockFd, err = os.OpenFile(l.lockFile, os.O_RDWR, 0666)
	if err != nil {
		return errors.NewLockError(l.lockFile, 0, errors.Wrap(err, "failed to open existing lock file"))
	}

	if err = l.flock(); err != nil {
		l.closeFd()

		// Older Unix systems report EWOULDBLOCK and EAGAIN as distinct codes
		if errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EAGAIN) {
			return l.handleHeldLock()
		}

		return errors.NewLockError(l.lockFile, 0, errors.Wrap(err, "failed to acquire lock"))
	}

	if err = l.lockFd.Truncate(0); err != nil {
		_ = l.Release()
		return errors.NewLockError(l.lockFile, l.pid, errors.Wrap(err, "failed to truncate lock file"))
	}

	return l.recordPid()
}

// handleHeldLock inspects a lock held elsewhere and recovers it when the
// owning process is gone
func (l *Locker) handleHeldLock() error {
	otherPid, err := l.readPid()
	if err != nil {
		return errors.NewLockError(l.lockFile, 0,
			errors.Wrap(err, "another repoship publication is running, but its PID could not be read"))
	}

	if processAlive(otherPid) {
		return errors.NewLockError(l.lockFile, otherPid, errors.ErrAlreadyRunning)
	}

	// Stale lock from a dead process: remove it and start over
	l.closeFd()
	if err := os.Remove(l.lockFile); err != nil {
		return errors.NewLockError(l.lockFile, otherPid,
			errors.Wrap(err, fmt.Sprintf("found stale lock from PID %d, but failed to remove it", otherPid)))
	}

	if err := l.createAndLock(); err != nil {
		if os.IsExist(err) {
			return errors.NewLockError(l.lockFile, 0,
				errors.New("another repoship publication took the lock immediately after stale lock removal"))
		}
		return err
	}
	return nil
}

// flock gets an exclusive non-blocking lock on the open file descriptor
func (l *Locker) flock() error {
	return syscall.Flock(int(l.lockFd.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
}

// recordPid writes this process's PID into the lock file
func (l *Locker) recordPid() error {
	if _, err := l.lockFd.WriteAt([]byte(strconv.Itoa(l.pid)), 0); err != nil {
		releaseErr := l.Release()
		if releaseErr != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to write PID and failed to release lock: %v", releaseErr))
		}
		return errors.NewLockError(l.lockFile, l.pid, errors.Wrap(err, "failed to write PID to lock file"))
	}
	l.acquired = true
	return nil
}

// readPid reads the PID recorded in the lock file
func (l *Locker) readPid() (int, error) {
	data, err := os.ReadFile(l.lockFile)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read lock file")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrap(err, "invalid PID in lock file")
	}
	return pid, nil
}

// closeFd closes the lock file descriptor if open
func (l *Locker) closeFd() {
	if l.lockFd != nil {
		_ = l.lockFd.Close()
		l.lockFd = nil
	}
}

// processAlive checks whether a process exists using signal 0
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

// Release unlocks and removes the lock file if this Locker holds it
func (l *Locker) Release() error {
	if l.lockFd == nil {
		return nil
	}

	var err error
	if flockErr := syscall.Flock(int(l.lockFd.Fd()), syscall.LOCK_UN); flockErr != nil {
		err = errors.NewLockError(l.lockFile, l.pid, errors.Wrap(flockErr, "failed to release lock"))
	}

	if closeErr := l.lockFd.Close(); closeErr != nil && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid, errors.Wrap(closeErr, "failed to close lock file"))
	}
	l.lockFd = nil
	l.acquired = false

	// Best-effort cleanup; a missing file is fine
	if removeErr := os.Remove(l.lockFile); removeErr != nil && !os.IsNotExist(removeErr) && err == nil {
		err = errors.NewLockError(l.lockFile, l.pid, errors.Wrap(removeErr, "failed to remove lock file"))
	}

	return err
}
