package git

import (
	gogit "github.com/go-git/go-git/v5"
)

// IsRepository checks whether the given path is the root of a git repository.
// The check is read-only and does not require the git binary.
func IsRepository(path string) (bool, error) {
	_, err := gogit.PlainOpen(path)
	if err == gogit.ErrRepositoryNotExists {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HasCommits reports whether the repository at path has any commit on HEAD.
// A repository that was just initialized has none and needs an initial
// commit before anything can be pushed.
func HasCommits(path string) (bool, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return false, err
	}
	if _, err := repo.Head(); err != nil {
		return false, nil
	}
	return true, nil
}

// CurrentBranch returns the short name of the branch HEAD points at,
// or the empty string when it cannot be determined.
func CurrentBranch(path string) string {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Name().Short()
}
