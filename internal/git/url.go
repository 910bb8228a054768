package git

import "fmt"

// RepoURL derives the browsable repository URL by verbatim template
// substitution: https://<host>/<owner>/<name>
func RepoURL(host, owner, name string) string {
	return fmt.Sprintf("https://%s/%s/%s", host, owner, name)
}

// RemoteURL derives the URL registered as the push remote; it is the
// repository URL with the conventional .git suffix
func RemoteURL(host, owner, name string) string {
	return RepoURL(host, owner, name) + ".git"
}
