// Where: cli/internal/infra/github/client.go
// What: GitHub lookup of the authenticated user's profile.
// Why: Author defaults come from the remote profile when a token is available.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gogithub "github.com/google/go-github/v66/github"
	"github.com/poruru/sprout/cli/internal/constants"
	"github.com/poruru/sprout/cli/internal/infra/envutil"
	"github.com/poruru/sprout/cli/internal/meta"
)

const DefaultTimeout = 10 * time.Second

// ErrNoToken is returned when no access token is configured.
var ErrNoToken = errors.New("github token not set")

// Profile holds the fields consumed from GET /user.
type Profile struct {
	Name    string
	Email   string
	HTMLURL string
	Login   string
}

// ProfileFetcher resolves the authenticated user's profile.
type ProfileFetcher interface {
	FetchUser(ctx context.Context) (Profile, error)
}

// Client looks up profiles through go-github. An empty BaseURL targets
// api.github.com; otherwise it is the full API root (e.g. https://ghe/api/v3).
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClientFromEnv builds a client from GITHUB_TOKEN and GITHUB_ENDPOINT.
func NewClientFromEnv() *Client {
	return &Client{
		BaseURL: envutil.FirstNonEmpty(constants.EnvGitHubEndpoint),
		Token:   envutil.FirstNonEmpty(constants.EnvGitHubToken),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) api() (*gogithub.Client, error) {
	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	api := gogithub.NewClient(httpClient).WithAuthToken(strings.TrimSpace(c.Token))
	api.UserAgent = meta.AppName
	if base := strings.TrimSpace(c.BaseURL); base != "" {
		parsed, err := url.Parse(strings.TrimRight(base, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse github endpoint %q: %w", base, err)
		}
		api.BaseURL = parsed
	}
	return api, nil
}

// FetchUser returns the profile for the token owner.
func (c *Client) FetchUser(ctx context.Context) (Profile, error) {
	if c == nil || strings.TrimSpace(c.Token) == "" {
		return Profile{}, ErrNoToken
	}
	api, err := c.api()
	if err != nil {
		return Profile{}, err
	}
	user, _, err := api.Users.Get(ctx, "")
	if err != nil {
		return Profile{}, fmt.Errorf("github user lookup: %w", err)
	}
	return Profile{
		Name:    user.GetName(),
		Email:   user.GetEmail(),
		HTMLURL: user.GetHTMLURL(),
		Login:   user.GetLogin(),
	}, nil
}
