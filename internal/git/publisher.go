package git

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/repoship/repoship/internal/common"
	"github.com/repoship/repoship/internal/errors"
)

// Logger alias to common.Logger
type Logger = common.Logger

// RepoCreator creates the remote repository through the hosting provider's
// API. Create reports whether a new repository was made; an existing
// repository with the same name is not an error.
type RepoCreator interface {
	Create(ctx context.Context, name, description string, private bool) (created bool, err error)
}

// Scaffolder generates starter files for a brand-new project.
// Ensure returns the names of the files it wrote.
type Scaffolder interface {
	Ensure(dir, repoURL string) ([]string, error)
}

// PublisherConfig contains configuration for a publication run
type PublisherConfig struct {
	// Local project
	RepoPath string

	// Target repository
	RepoName string
	Owner    string
	Host     string
	Branch   string
	Remote   string

	// Local preparation
	CommitMessage string
	AuthorName    string
	AuthorEmail   string

	// Remote creation
	Description string
	Private     bool
	Token       string

	// Behavior
	ForcePush      bool
	NonInteractive bool
	Verbose        bool
}

// Publisher runs the bootstrap-and-push sequence: resolve and confirm the
// target, optionally create the remote repository, prepare the local
// working tree, configure the remote, probe it, and push - escalating to a
// force push only with explicit authorization.
type Publisher struct {
	config     PublisherConfig
	logger     Logger
	executor   CommandExecutor
	interactor UserInteractor
	prober     RemoteProber
	creator    RepoCreator
	scaffolder Scaffolder

	isRepository func(string) (bool, error)
	hasCommits   func(string) (bool, error)

	startTime time.Time
	repoURL   string

	// Outcome bookkeeping for the summary
	remoteCreated bool
	initialized   bool
	committed     bool
	forced        bool
	pushed        bool
}

// PublisherOptions contains publisher configuration and dependencies
type PublisherOptions struct {
	// Required
	Config PublisherConfig
	Logger Logger

	// Optional components; defaults are used when nil
	Executor   CommandExecutor
	Interactor UserInteractor
	Prober     RemoteProber

	// Optional features; skipped when nil
	Creator    RepoCreator
	Scaffolder Scaffolder
}

// NewPublisher creates a Publisher with standard dependencies
func NewPublisher(config PublisherConfig, logger Logger) *Publisher {
	return NewPublisherWithOptions(PublisherOptions{
		Config: config,
		Logger: logger,
	})
}

// NewPublisherWithOptions creates a Publisher with custom dependencies
func NewPublisherWithOptions(opts PublisherOptions) *Publisher {
	p := &Publisher{
		config:       opts.Config,
		logger:       opts.Logger,
		executor:     opts.Executor,
		interactor:   opts.Interactor,
		prober:       opts.Prober,
		creator:      opts.Creator,
		scaffolder:   opts.Scaffolder,
		isRepository: IsRepository,
		hasCommits:   HasCommits,
	}

	if p.executor == nil {
		p.executor = NewExecExecutor()
	}
	if p.interactor == nil {
		if p.config.NonInteractive {
			p.interactor = NewNonInteractiveInteractor()
		} else {
			p.interactor = NewDefaultInteractor(p.logger)
		}
	}
	if p.prober == nil {
		p.prober = NewGoGitProber(p.config.Token)
	}

	return p
}

// Run executes the publication sequence with the given context.
// All failures terminate the sequence at the point of detection; no remote
// write is ever attempted after a failed probe.
func (p *Publisher) Run(ctx context.Context) error {
	p.startTime = time.Now()

	name, err := p.resolveRepoName()
	if err != nil {
		return err
	}
	p.config.RepoName = name
	p.repoURL = RepoURL(p.config.Host, p.config.Owner, name)
	remoteURL := RemoteURL(p.config.Host, p.config.Owner, name)

	if !p.confirmTarget() {
		p.logger.StatusMessage("Nothing was changed.")
		return errors.Wrap(errors.ErrAborted, "target not confirmed")
	}

	if err := p.createRemoteRepository(ctx); err != nil {
		return err
	}

	if err := p.prepareWorktree(ctx); err != nil {
		return err
	}

	if err := p.configureRemote(ctx, remoteURL); err != nil {
		return err
	}

	if err := p.probeRemote(ctx, remoteURL); err != nil {
		return err
	}

	return p.pushWithEscalation(ctx)
}

// resolveRepoName returns the repository name from configuration or, when
// absent, from an interactive prompt. An empty name terminates the run
// before any remote operation is attempted.
func (p *Publisher) resolveRepoName() (string, error) {
	name := strings.TrimSpace(p.config.RepoName)

	if name == "" && !p.config.NonInteractive {
		answer, err := p.interactor.PromptString("Enter exact repository name")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(answer)
	}

	if name == "" {
		p.logger.Error("No repository name provided")
		return "", errors.ErrEmptyRepoName
	}

	return name, nil
}

// confirmTarget shows the operator what is about to happen and asks for
// confirmation. Non-interactive runs are confirmed by the -yes flag itself.
func (p *Publisher) confirmTarget() bool {
	p.logger.StatusMessage("📂 Project:    %s", p.config.RepoPath)
	p.logger.StatusMessage("🌐 Repository: %s", p.repoURL)
	p.logger.StatusMessage("🌿 Branch:     %s", p.config.Branch)

	if p.config.NonInteractive {
		return true
	}
	return p.interactor.PromptYesNo("Is this correct?")
}

// createRemoteRepository creates the repository through the provider API
// when a creator was configured. A repository that already exists under the
// same name is used as-is.
func (p *Publisher) createRemoteRepository(ctx context.Context) error {
	if p.creator == nil {
		return nil
	}

	p.logger.InfoToUser("Creating repository %s/%s...", p.config.Owner, p.config.RepoName)

	created, err := p.creator.Create(ctx, p.config.RepoName, p.config.Description, p.config.Private)
	if err != nil {
		p.logger.Error("Failed to create repository: %v", err)
		return err
	}

	if created {
		p.remoteCreated = true
		p.logger.Success("Repository created: %s", p.repoURL)
	} else {
		p.logger.WarningToUser("Repository already exists - using the existing one")
	}
	return nil
}

// prepareWorktree makes the local project pushable: initializes a
// repository if there is none, ensures a commit identity, optionally
// scaffolds starter files, commits outstanding work, and renames the
// default branch.
func (p *Publisher) prepareWorktree(ctx context.Context) error {
	isRepo, err := p.isRepository(p.config.RepoPath)
	if err != nil {
		return errors.Wrap(errors.ErrGitOperationFailed, err.Error())
	}

	if !isRepo {
		if err := p.runGit(ctx, "init"); err != nil {
			return err
		}
		p.initialized = true
		p.logger.Success("Initialized empty repository")
	}

	if err := p.ensureIdentity(ctx); err != nil {
		return err
	}

	if p.scaffolder != nil {
		written, err := p.scaffolder.Ensure(p.config.RepoPath, p.repoURL)
		if err != nil {
			return errors.Wrap(err, "failed to scaffold project files")
		}
		for _, name := range written {
			p.logger.InfoToUser("Created %s", name)
		}
	}

	hasCommits, err := p.hasCommits(p.config.RepoPath)
	if err != nil {
		return errors.Wrap(errors.ErrGitOperationFailed, err.Error())
	}

	if !hasCommits {
		if err := p.commitAll(ctx); err != nil {
			return err
		}
	} else {
		dirty, err := p.hasUncommittedChanges(ctx)
		if err != nil {
			return err
		}
		if dirty {
			if p.shouldCommitOutstanding() {
				if err := p.commitAll(ctx); err != nil {
					return err
				}
			} else {
				p.logger.WarningToUser("Uncommitted changes will not be published")
			}
		}
	}

	// -M renames in place and is a no-op when already on the target branch
	if err := p.runGit(ctx, "branch", "-M", p.config.Branch); err != nil {
		return err
	}

	return nil
}

// shouldCommitOutstanding decides whether outstanding changes get committed.
// Non-interactive runs commit everything, matching the one-shot publishing
// intent; interactive runs ask.
func (p *Publisher) shouldCommitOutstanding() bool {
	if p.config.NonInteractive {
		return true
	}
	p.logger.WarningToUser("You have uncommitted changes.")
	return p.interactor.PromptYesNo("Commit them before publishing?")
}

// ensureIdentity makes sure commits can be created. When no user.email is
// configured, a local identity is written so the initial commit does not
// fail on a fresh machine.
func (p *Publisher) ensureIdentity(ctx context.Context) error {
	out, err := p.runGitWithOutput(ctx, "config", "user.email")
	if err == nil && strings.TrimSpace(out) != "" {
		return nil
	}

	name := p.config.AuthorName
	if name == "" {
		name = "repoship"
	}
	email := p.config.AuthorEmail
	if email == "" {
		email = "repoship@localhost"
	}

	if err := p.runGit(ctx, "config", "user.name", name); err != nil {
		return err
	}
	if err := p.runGit(ctx, "config", "user.email", email); err != nil {
		return err
	}

	p.logger.InfoToUser("Set local commit identity: %s <%s>", name, email)
	return nil
}

// commitAll stages and commits everything in the working tree
func (p *Publisher) commitAll(ctx context.Context) error {
	if err := p.runGit(ctx, "add", "-A"); err != nil {
		return err
	}
	if err := p.runGit(ctx, "commit", "-m", p.config.CommitMessage); err != nil {
		return err
	}

	p.committed = true
	p.logger.Success("Created commit: %s", p.config.CommitMessage)
	return nil
}

// configureRemote points the named remote at the derived URL, replacing any
// previous registration. Absence of a prior remote is not a failure.
func (p *Publisher) configureRemote(ctx context.Context, remoteURL string) error {
	_ = p.runGit(ctx, "remote", "remove", p.config.Remote)

	if err := p.runGit(ctx, "remote", "add", p.config.Remote, remoteURL); err != nil {
		return err
	}

	p.logger.Success("Remote %s -> %s", p.config.Remote, remoteURL)
	return nil
}

// probeRemote verifies the remote exists and answers before any write is
// attempted. A failed probe is terminal: a missing repository is not a
// transient condition, so there is no retry.
func (p *Publisher) probeRemote(ctx context.Context, remoteURL string) error {
	p.logger.InfoToUser("Checking that the repository is reachable...")

	if err := p.prober.Probe(ctx, remoteURL); err != nil {
		p.logger.Error("Could not reach %s", p.repoURL)
		p.logger.StatusMessage("Possible causes:")
		p.logger.StatusMessage("  1. The repository has not been created on %s yet", p.config.Host)
		p.logger.StatusMessage("  2. The repository name does not match exactly (check capitalization)")
		p.logger.StatusMessage("  3. The repository is not public")

		if errors.Is(err, errors.ErrRemoteUnreachable) {
			return err
		}
		return errors.Wrap(errors.ErrRemoteUnreachable, err.Error())
	}

	p.logger.Success("Repository is reachable")
	return nil
}

// pushWithEscalation pushes the branch, falling back to a single forced
// attempt when the remote rejects it - and only when the operator has
// authorized overwriting remote history.
func (p *Publisher) pushWithEscalation(ctx context.Context) error {
	p.logger.InfoToUser("Pushing %s to %s...", p.config.Branch, p.config.Remote)

	err := p.push(ctx, false)
	if err == nil {
		p.pushed = true
		p.printSuccessBanner()
		return nil
	}

	p.logger.Warning("Push failed: %v", err)
	p.logger.WarningToUser("The remote rejected the push. It probably has history this project does not.")

	if !p.authorizeForcePush() {
		p.printRemediation()
		return errors.Wrap(errors.ErrPushRejected, "forced push not authorized")
	}

	p.logger.WarningToUser("Forcing the push. Remote-only history will be lost.")
	if err := p.push(ctx, true); err != nil {
		p.logger.Error("Forced push failed: %v", err)
		p.printRemediation()
		return errors.Wrap(errors.ErrPushRejected, err.Error())
	}

	p.forced = true
	p.pushed = true
	p.printSuccessBanner()
	return nil
}

// authorizeForcePush gates the destructive fallback: the -force flag
// pre-authorizes it, interactive runs are asked, and non-interactive runs
// without -force never overwrite remote history.
func (p *Publisher) authorizeForcePush() bool {
	if p.config.ForcePush {
		return true
	}
	if p.config.NonInteractive {
		return false
	}
	return p.interactor.PromptYesNo("Force push and overwrite the remote history?")
}

// push publishes the branch, registering it as the upstream
func (p *Publisher) push(ctx context.Context, force bool) error {
	args := []string{"push", "-u"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, p.config.Remote, p.config.Branch)
	return p.runGit(ctx, args...)
}

// printSuccessBanner reports the published repository and what to do next
func (p *Publisher) printSuccessBanner() {
	p.logger.StatusMessage("")
	p.logger.StatusMessage("=============================================")
	p.logger.StatusMessage("🎉 Publication complete!")
	p.logger.StatusMessage("📁 Repository: %s", p.repoURL)
	p.logger.StatusMessage("")
	p.logger.StatusMessage("Next steps:")
	p.logger.StatusMessage("  1. Open %s", p.repoURL)
	p.logger.StatusMessage("  2. Connect the repository to your deployment platform")
	p.logger.StatusMessage("  3. Configure secrets on the platform, never in git")
}

// printRemediation lists the operator's options after a failed push
func (p *Publisher) printRemediation() {
	p.logger.StatusMessage("")
	p.logger.StatusMessage("The push could not be completed. Options:")
	p.logger.StatusMessage("  1. Delete the repository on %s and create it again, empty", p.config.Host)
	p.logger.StatusMessage("  2. Publish under a different repository name")
	p.logger.StatusMessage("  3. Check the repository settings (default branch, protected branches)")
}

// PrintSummary prints a summary of the publication run
func (p *Publisher) PrintSummary() {
	duration := time.Since(p.startTime)

	p.logger.StatusMessage("")
	p.logger.StatusMessage("---------------------------------------------")
	p.logger.StatusMessage("📊 repoship Run Summary")
	p.logger.StatusMessage("---------------------------------------------")
	if p.repoURL != "" {
		p.logger.StatusMessage("🌐 Repository: %s", p.repoURL)
	}
	p.logger.StatusMessage("🏁 Remote repository created: %t", p.remoteCreated)
	p.logger.StatusMessage("🔧 Local repository initialized: %t", p.initialized)
	p.logger.StatusMessage("📝 Commit created: %t", p.committed)
	p.logger.StatusMessage("📤 Pushed: %t (forced: %t)", p.pushed, p.forced)
	p.logger.StatusMessage("⏱️  Duration: %s", duration.Round(time.Millisecond))
	p.logger.StatusMessage("---------------------------------------------")
}

// Git plumbing

// runGit executes a git command in the project directory
func (p *Publisher) runGit(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = p.config.RepoPath
	return p.executor.Execute(cmd)
}

// runGitWithOutput executes a git command and returns its output
func (p *Publisher) runGitWithOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = p.config.RepoPath
	return p.executor.ExecuteWithOutput(cmd)
}

// hasUncommittedChanges reports whether the working tree has changes that
// are not committed yet
func (p *Publisher) hasUncommittedChanges(ctx context.Context) (bool, error) {
	output, err := p.runGitWithOutput(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}
