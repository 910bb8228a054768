package config

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/repoship/repoship/internal/errors"
)

const (
	// DefaultHost is the hosting provider all URLs are derived against
	DefaultHost = "github.com"

	// DefaultBranch is the branch published to the remote
	DefaultBranch = "main"

	// DefaultRemoteName is the name the remote is registered under
	DefaultRemoteName = "origin"

	// DefaultCommitMessage is used for the initial commit of a fresh project
	DefaultCommitMessage = "Initial commit"

	// EnvPrefix namespaces the environment variables repoship reads
	EnvPrefix = "repoship"
)

// Config holds all repoship application settings
type Config struct {
	// Publication target
	RepoPath string
	RepoName string
	Owner    string
	Host     string
	Branch   string
	Remote   string

	// Local preparation
	CommitMessage string
	AuthorName    string
	AuthorEmail   string
	Scaffold      bool

	// Remote creation
	CreateRemote bool
	Private      bool
	Description  string
	Token        string

	// Behavior
	ForcePush      bool
	NonInteractive bool

	// User experience
	Verbose bool

	// Debugging
	Debug   bool
	LogFile string

	// Special flags
	Version  bool
	ShowLogo bool

	// Build metadata
	VersionInfo VersionInfo
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Host:          DefaultHost,
		Branch:        DefaultBranch,
		Remote:        DefaultRemoteName,
		CommitMessage: DefaultCommitMessage,
		Verbose:       true,

		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment layers values from an optional repoship.yaml config
// file and REPOSHIP_* environment variables over the current settings.
// Command-line flags, parsed later, take precedence over both.
func (c *Config) LoadFromEnvironment() {
	v := viper.New()
	v.SetConfigName("repoship")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "repoship"))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	// The config file is optional
	_ = v.ReadInConfig()

	c.RepoPath = getString(v, "repo", c.RepoPath)
	c.RepoName = getString(v, "name", c.RepoName)
	c.Owner = getString(v, "owner", c.Owner)
	c.Host = getString(v, "host", c.Host)
	c.Branch = getString(v, "branch", c.Branch)
	c.Remote = getString(v, "remote", c.Remote)
	c.CommitMessage = getString(v, "message", c.CommitMessage)
	c.AuthorName = getString(v, "author_name", c.AuthorName)
	c.AuthorEmail = getString(v, "author_email", c.AuthorEmail)
	c.Description = getString(v, "description", c.Description)
	c.Token = getString(v, "token", c.Token)
	c.LogFile = getString(v, "log_file", c.LogFile)

	c.Scaffold = getBool(v, "scaffold", c.Scaffold)
	c.CreateRemote = getBool(v, "create", c.CreateRemote)
	c.Private = getBool(v, "private", c.Private)
	c.ForcePush = getBool(v, "force", c.ForcePush)
	c.NonInteractive = getBool(v, "yes", c.NonInteractive)
	c.Verbose = getBool(v, "verbose", c.Verbose)
	c.Debug = getBool(v, "debug", c.Debug)
}

// SetupFlags sets up command-line flags to override config values
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	// Save original value for the inverted flag (for CLI ergonomics)
	origVerbose := c.Verbose

	fs.StringVar(&c.RepoPath, "repo", c.RepoPath, "Path to the project to publish (default: current directory)")
	fs.StringVar(&c.RepoName, "name", c.RepoName, "Repository name (default: prompted interactively)")
	fs.StringVar(&c.Owner, "owner", c.Owner, "Account the repository lives under")
	fs.StringVar(&c.Host, "host", c.Host, "Hosting provider")
	fs.StringVar(&c.Branch, "branch", c.Branch, "Branch to publish")
	fs.StringVar(&c.Remote, "remote", c.Remote, "Remote name to register")
	fs.StringVar(&c.CommitMessage, "message", c.CommitMessage, "Initial commit message")
	fs.StringVar(&c.Description, "description", c.Description, "Repository description (with -create)")
	fs.StringVar(&c.Token, "token", c.Token, "Access token for repository creation (with -create)")
	fs.BoolVar(&c.Scaffold, "scaffold", c.Scaffold, "Generate README, LICENSE and .gitignore if missing")
	fs.BoolVar(&c.CreateRemote, "create", c.CreateRemote, "Create the remote repository through the API first")
	fs.BoolVar(&c.Private, "private", c.Private, "Create the repository as private (with -create)")
	fs.BoolVar(&c.ForcePush, "force", c.ForcePush, "Pre-authorize the force-push fallback")
	fs.BoolVar(&c.NonInteractive, "yes", c.NonInteractive, "Skip prompts and assume confirmation")
	fs.BoolVar(&c.Verbose, "quiet", !origVerbose, "Hide informational messages")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: ~/.local/share/repoship/logs/repoship-{repo-hash}.log)")
	fs.BoolVar(&c.Version, "version", c.Version, "Print version information and exit")
	fs.BoolVar(&c.ShowLogo, "logo", c.ShowLogo, "Display ASCII logo and exit")
}

// ParseFlags parses the command-line arguments and updates the config
func (c *Config) ParseFlags() error {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c.SetupFlags(fs)

	var appArgs []string
	if len(os.Args) > 1 {
		appArgs = os.Args[1:]
	}

	if err := fs.Parse(appArgs); err != nil {
		return errors.NewConfigError("flags", nil, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to parse command-line arguments: %v", err)))
	}

	// -quiet means Verbose=false, so the parsed value is inverted here
	c.Verbose = !c.Verbose

	return nil
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.Owner == "" {
		return errors.NewConfigError("owner", "", errors.Wrap(errors.ErrInvalidConfiguration, "an account owner is required (-owner or REPOSHIP_OWNER)"))
	}

	if c.Host == "" {
		return errors.NewConfigError("host", "", errors.Wrap(errors.ErrInvalidConfiguration, "hosting provider must not be empty"))
	}

	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.Remote == "" {
		c.Remote = DefaultRemoteName
	}

	if c.CreateRemote && c.Token == "" {
		return errors.NewConfigError("token", "", errors.Wrap(errors.ErrInvalidConfiguration, "repository creation requires an access token (-token or REPOSHIP_TOKEN)"))
	}

	if c.NonInteractive && c.RepoName == "" {
		return errors.NewConfigError("name", "", errors.Wrap(errors.ErrInvalidConfiguration, "-yes requires the repository name up front (-name)"))
	}

	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "", errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if c.LogFile == "" {
		// Follow the XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				logDir = os.TempDir()
			}
		}

		repoHash := fmt.Sprintf("%x", sha256.Sum256([]byte(c.RepoPath)))[:16]
		c.LogFile = filepath.Join(logDir, "repoship", "logs", fmt.Sprintf("repoship-%s.log", repoHash))
	}

	return nil
}

// getString returns a viper string value, falling back to the default when
// the key is absent from both the config file and the environment.
func getString(v *viper.Viper, key, defaultValue string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

// getBool parses a viper value as a boolean, accepting the same spellings
// in config files and environment variables.
func getBool(v *viper.Viper, key string, defaultValue bool) bool {
	switch strings.ToLower(v.GetString(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}
