// Package lock guards against concurrent publications of the same project.
//
// A publication mutates the working tree's git metadata (remote registration,
// branch rename, commits), so two repoship processes running in the same
// directory would trip over each other. The Locker takes an exclusive flock
// on a PID file in the system temp directory, keyed by a hash of the project
// path, for the duration of the run.
//
// Stale locks left behind by crashed processes are detected by probing the
// recorded PID with signal 0 and are removed automatically.
//
// Windows is not supported; New returns an error there.
package lock
