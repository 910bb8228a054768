package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"

	"github.com/repoship/repoship/internal/errors"
)

// Creator creates repositories for the authenticated user through the
// GitHub API
type Creator struct {
	client *github.Client
}

// NewCreator creates a Creator that authenticates with the given token
func NewCreator(ctx context.Context, token string) *Creator {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Creator{client: github.NewClient(tc)}
}

// NewCreatorWithClient creates a Creator around a prepared HTTP client and
// API base URL. Used by tests to point at a local server.
func NewCreatorWithClient(httpClient *http.Client, baseURL string) (*Creator, error) {
	client := github.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Wrap(err, "invalid API base URL")
		}
		client.BaseURL = parsed
	}

	return &Creator{client: client}, nil
}

// Create creates a repository under the authenticated user's account.
// It reports whether a new repository was made; a name collision with an
// existing repository is treated as "use the existing one", not a failure.
func (c *Creator) Create(ctx context.Context, name, description string, private bool) (bool, error) {
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(private),
		AutoInit:    github.Bool(false),
	}

	_, resp, err := c.client.Repositories.Create(ctx, "", repo)
	if err == nil {
		return true, nil
	}

	// 422 means the name is already taken by the same owner
	if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
		return false, nil
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	return false, errors.NewAPIError("user/repos", status, err)
}
