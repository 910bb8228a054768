package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/repoship/repoship/internal/errors"
)

// RemoteProber verifies that a remote repository exists and is reachable
// before any write is attempted against it.
type RemoteProber interface {
	// Probe performs a read-only listing of the remote's references.
	// A nil return means the remote exists and answered.
	Probe(ctx context.Context, url string) error
}

// GoGitProber probes remotes with go-git's native transport, the equivalent
// of `git ls-remote` without shelling out.
type GoGitProber struct {
	// Token, when set, is sent as basic auth for private repositories
	Token string
}

// NewGoGitProber creates a GoGitProber. The token may be empty for
// public repositories.
func NewGoGitProber(token string) *GoGitProber {
	return &GoGitProber{Token: token}
}

// Probe implements RemoteProber
func (p *GoGitProber) Probe(ctx context.Context, url string) error {
	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})

	var auth transport.AuthMethod
	if p.Token != "" {
		auth = &githttp.BasicAuth{Username: "git", Password: p.Token}
	}

	_, err := remote.ListContext(ctx, &gogit.ListOptions{Auth: auth})
	if err != nil {
		// A freshly created repository has no references yet; that still
		// proves it exists and is reachable
		if errors.Is(err, transport.ErrEmptyRemoteRepository) {
			return nil
		}
		return errors.Wrap(errors.ErrRemoteUnreachable, err.Error())
	}
	return nil
}
