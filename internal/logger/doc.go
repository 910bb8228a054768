// Package logger provides logging facilities for the repoship application.
//
// It implements the common.Logger interface on top of log/slog, writing
// debug-level messages to an optional log file and user-facing messages to
// the terminal with emoji prefixes.
//
// # Message Types
//
// - Info / Warning / Error: debug messages, written to the log file
// - InfoToUser / WarningToUser / Success: always shown to the user
// - StatusMessage: terminal-only status output, never logged
//
// Errors are the exception among the debug methods: they are always shown on
// stderr regardless of debug settings, since a one-shot interactive tool has
// no other channel to report failures.
//
// # Usage
//
//	log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
//	defer log.Close()
//
//	log.Info("probing %s", url)          // file only
//	log.Success("Pushed %s", branch)     // terminal + file
package logger
