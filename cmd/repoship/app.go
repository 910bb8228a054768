package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/repoship/repoship/internal/common"
	"github.com/repoship/repoship/internal/config"
	"github.com/repoship/repoship/internal/constants"
	internalErrors "github.com/repoship/repoship/internal/errors"
	"github.com/repoship/repoship/internal/git"
	"github.com/repoship/repoship/internal/github"
	"github.com/repoship/repoship/internal/lock"
	"github.com/repoship/repoship/internal/logger"
	"github.com/repoship/repoship/internal/scaffold"
)

// Publisher performs the publication sequence
type Publisher interface {
	Run(ctx context.Context) error
	PrintSummary()
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// Logger alias to common.Logger
type Logger = common.Logger

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger    Logger
	Locker    Locker
	Publisher Publisher

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit         func(code int)
	ExecLookPath func(file string) (string, error)
}

// App is the main repoship application
type App struct {
	Config    *config.Config
	Logger    Logger
	Locker    Locker
	Publisher Publisher

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	exit         func(code int)
	execLookPath func(file string) (string, error)
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo
	cfg.LoadFromEnvironment()

	return NewApp(AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
	})
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Locker:       opts.Locker,
		Publisher:    opts.Publisher,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize(ctx context.Context) error {
	if err := a.Config.Finalize(); err != nil {
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.New(a.Config.Debug, a.Config.LogFile, a.Config.Verbose)
	}

	if a.Locker == nil {
		locker, err := lock.New(a.Config.RepoPath)
		if err != nil {
			return internalErrors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Publisher == nil {
		opts := git.PublisherOptions{
			Config: git.PublisherConfig{
				RepoPath:       a.Config.RepoPath,
				RepoName:       a.Config.RepoName,
				Owner:          a.Config.Owner,
				Host:           a.Config.Host,
				Branch:         a.Config.Branch,
				Remote:         a.Config.Remote,
				CommitMessage:  a.Config.CommitMessage,
				AuthorName:     a.Config.AuthorName,
				AuthorEmail:    a.Config.AuthorEmail,
				Description:    a.Config.Description,
				Private:        a.Config.Private,
				Token:          a.Config.Token,
				ForcePush:      a.Config.ForcePush,
				NonInteractive: a.Config.NonInteractive,
				Verbose:        a.Config.Verbose,
			},
			Logger: a.Logger,
		}

		if a.Config.CreateRemote {
			opts.Creator = github.NewCreator(ctx, a.Config.Token)
		}
		if a.Config.Scaffold {
			opts.Scaffolder = scaffold.New()
		}

		a.Publisher = git.NewPublisherWithOptions(opts)
	}

	return nil
}

// Run executes the application with the given context
// Handles special flags and runs the publication sequence
func (a *App) Run(ctx context.Context) error {
	// Version and logo short-circuit before any configuration validation
	if a.Config.Version {
		a.ShowVersion()
		return nil
	}

	if a.Config.ShowLogo {
		a.ShowLogo()
		return nil
	}

	if err := a.Initialize(ctx); err != nil {
		return err
	}

	// Verify prerequisites
	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	// Acquire resource lock
	if err := a.Locker.Acquire(); err != nil {
		if internalErrors.Is(err, internalErrors.ErrAlreadyRunning) {
			return err
		}
		return internalErrors.Wrap(err, "failed to acquire lock")
	}

	return a.Publisher.Run(ctx)
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "repoship %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// ShowLogo displays ASCII art logo
func (a *App) ShowLogo() {
	_, _ = fmt.Fprint(a.Stdout, constants.Logo, "\n")
	_, _ = fmt.Fprintln(a.Stdout, "")

	asciiArtWidth := 80
	padding := (asciiArtWidth - len(constants.Tagline)) / 2
	centeredTagline := fmt.Sprintf("%s%s", strings.Repeat(" ", padding), constants.Tagline)
	_, _ = fmt.Fprintln(a.Stdout, centeredTagline)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	_, err := a.execLookPath("git")
	if err != nil {
		return fmt.Errorf("git is not found in PATH")
	}
	return nil
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if l, ok := a.Logger.(*logger.DefaultLogger); ok && l != nil {
			if err := l.Close(); err != nil {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
				errs = append(errs, err)
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// CleanupOnSignal releases locks on interruption
func (a *App) CleanupOnSignal() {
	if err := a.Close(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
	}
}
