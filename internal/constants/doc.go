// Package constants provides application-wide constant values for repoship.
//
// It centralizes fixed presentation values (the ASCII logo and tagline) so
// they stay separate from the publication logic that uses them.
package constants
