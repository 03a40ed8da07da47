// Where: cli/internal/domain/project/ambient.go
// What: Ambient identity/location defaults gathered before prompting.
// Why: Thread best-effort defaults explicitly from the before hook to later hooks.
package project

// Ambient holds optional defaults collected by the before hook.
// At most one of the GitHub or Git groups is populated; both empty is valid.
type Ambient struct {
	TargetPath string

	GitHubName  string
	GitHubEmail string
	GitHubURL   string
	GitHubLogin string

	GitName  string
	GitEmail string
}

// DefaultAuthorName prefers the remote profile over local git config.
func (a Ambient) DefaultAuthorName() string {
	return firstNonEmpty(a.GitHubName, a.GitName)
}

// DefaultAuthorEmail prefers the remote profile over local git config.
func (a Ambient) DefaultAuthorEmail() string {
	return firstNonEmpty(a.GitHubEmail, a.GitEmail)
}

// HasRemoteProfile reports whether the GitHub lookup succeeded.
func (a Ambient) HasRemoteProfile() bool {
	return a.GitHubLogin != "" || a.GitHubURL != "" || a.GitHubName != "" || a.GitHubEmail != ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
