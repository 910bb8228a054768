// Package scaffold writes starter files (README, LICENSE, .gitignore)
// into projects that do not have them yet. Existing files are never
// overwritten.
package scaffold
