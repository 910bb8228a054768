// Package github creates remote repositories through the GitHub API.
//
// The only operation is repository creation for the authenticated user.
// A repository that already exists under the requested name is reported
// as such rather than treated as a failure, so publishing into an
// existing repository keeps working.
package github
