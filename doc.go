// Package repoship publishes a fresh local project to GitHub in one shot.
//
// repoship walks you through first-time publication of a project: it asks
// for the repository name, shows you the URL it derived, optionally creates
// the repository through the GitHub API, initializes and commits the local
// working tree if needed, wires up the origin remote, verifies the remote is
// actually reachable, and pushes the default branch. If the remote already
// has history, repoship offers a force push - but only after you explicitly
// confirm that you want to overwrite it.
//
// # Quick Start
//
//	# Navigate to the project you want to publish
//	cd /path/to/your/project
//
//	# Publish interactively (prompts for the repository name)
//	repoship -owner yourname
//
//	# Or supply everything up front
//	repoship -owner yourname -name my-project -yes
//
// # Key Features
//
//   - Guided publication: one confirmation, then the whole sequence runs
//   - Reachability probe: a read-only ls-remote gate before any write
//   - Repository creation: optional GitHub API call with your token
//   - Safe escalation: force push is never automatic, always confirmed
//   - Scaffolding: README, LICENSE and .gitignore for brand-new projects
//
// # Package Organization
//
//   - cmd/repoship: the command-line interface
//   - internal/git: the publish state machine and git plumbing
//   - internal/github: remote repository creation
//   - internal/scaffold: starter file generation
//   - internal/config: flags, environment and config file handling
//   - internal/logger: user-facing and debug logging
//   - internal/lock: single-instance guard per working tree
//   - internal/errors: sentinel errors and typed wrappers
//
// See the README and package documentation for details.
package repoship
