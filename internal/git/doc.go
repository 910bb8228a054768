// Package git implements the publication sequence and its git plumbing.
//
// The Publisher runs the bootstrap-and-push state machine:
//
//	resolve name → confirm → [create remote] → prepare worktree
//	  → configure remote → probe → push → [confirmed force push]
//
// Every step either succeeds or terminates the run at the point of
// detection. The probe is a hard gate: no push is attempted against a
// remote that did not answer a read-only listing. The forced push never
// happens without explicit authorization (the -force flag or an
// interactive confirmation), and it is attempted at most once.
//
// Mutating git operations shell out to the git binary through the
// CommandExecutor interface so the operator's credential helpers, hooks and
// configuration all apply. Read-only operations - the remote probe and
// local repository introspection - use go-git and need no subprocess.
//
// All collaborators (CommandExecutor, UserInteractor, RemoteProber,
// RepoCreator, Scaffolder) are interfaces, so every branch of the state
// machine can be exercised in tests with scripted outcomes.
package git
