package common

// Logger is the logging contract every component receives by injection.
// The split is by audience: the first group records what happened for
// debugging, the second talks to the operator at the terminal.
type Logger interface {
	// Info records a diagnostic message in the debug log
	Info(format string, args ...interface{})

	// Warning records a warning, surfaced on the terminal only in verbose mode
	Warning(format string, args ...interface{})

	// Error records a failure; errors always reach the terminal
	Error(format string, args ...interface{})

	// InfoToUser prints an informational message for the operator
	InfoToUser(format string, args ...interface{})

	// WarningToUser prints a warning the operator should act on
	WarningToUser(format string, args ...interface{})

	// Success prints a completed-step message
	Success(format string, args ...interface{})

	// StatusMessage prints raw status output, bypassing the debug log
	StatusMessage(format string, args ...interface{})
}
