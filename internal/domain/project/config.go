// Where: cli/internal/domain/project/config.go
// What: Project configuration and derived fields for the npm-package template.
// Why: Keep every computed field a pure function of answers, ambient defaults and the clock.
package project

import (
	"fmt"
	"strings"
	"time"
)

const githubBaseURL = "https://github.com"

// Answers are the prompt-collected fields.
type Answers struct {
	ProjectName        string
	ProjectDescription string
	IsNpmPkg           bool
	AuthorName         string
	AuthorEmail        string
	GitHubAccount      string
	License            string
}

// Config is the full project configuration used to render templates and
// drive post-generation commands. Repository fields are either all set or all empty.
type Config struct {
	Answers

	AuthorURL             string
	Repository            string
	RepositoryURL         string
	RepositoryHomepageURL string
	RepositoryBugsURL     string
	RepositoryGitURL      string
	Author                string
	AuthorMarkdownLink    string
	CopyrightYear         int
	Year                  int
}

// Derive computes the full configuration. It performs no I/O.
func Derive(ambient Ambient, answers Answers, now time.Time) Config {
	cfg := Config{Answers: answers}
	cfg.ProjectDescription = normalizeDescription(answers.ProjectName, answers.ProjectDescription)

	cfg.AuthorURL = ambient.GitHubURL
	if cfg.AuthorURL == "" {
		cfg.AuthorURL = fmt.Sprintf("%s/%s", githubBaseURL, answers.GitHubAccount)
	}

	if answers.GitHubAccount != "" {
		cfg.Repository = fmt.Sprintf("github:%s/%s", answers.GitHubAccount, answers.ProjectName)
		cfg.RepositoryURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.AuthorURL, "/"), answers.ProjectName)
		cfg.RepositoryHomepageURL = cfg.RepositoryURL + "#readme"
		cfg.RepositoryBugsURL = cfg.RepositoryURL + "/issues"
		cfg.RepositoryGitURL = fmt.Sprintf("git@github.com:%s/%s.git", answers.GitHubAccount, answers.ProjectName)
	}

	cfg.Author, cfg.AuthorMarkdownLink = attribution(answers.AuthorName, answers.AuthorEmail, cfg.AuthorURL)

	cfg.CopyrightYear = now.Year()
	cfg.Year = cfg.CopyrightYear
	return cfg
}

func normalizeDescription(name, description string) string {
	if description == "" {
		return name + "."
	}
	if strings.HasSuffix(description, ".") {
		return description
	}
	return description + "."
}

func attribution(name, email, url string) (string, string) {
	if name == "" {
		return "", ""
	}
	author := name
	link := name
	if email != "" {
		author += fmt.Sprintf(" <%s>", email)
	}
	if url != "" {
		author += fmt.Sprintf(" (%s)", url)
		link = fmt.Sprintf("[%s](%s)", name, url)
	}
	return author, link
}

// Locals exposes the configuration under template-compatible keys.
func (c Config) Locals() map[string]any {
	return map[string]any{
		"projectName":           c.ProjectName,
		"projectDescription":    c.ProjectDescription,
		"isNpmPkg":              c.IsNpmPkg,
		"authorName":            c.AuthorName,
		"authorEmail":           c.AuthorEmail,
		"githubAccount":         c.GitHubAccount,
		"license":               c.License,
		"authorUrl":             c.AuthorURL,
		"repository":            c.Repository,
		"repositoryUrl":         c.RepositoryURL,
		"repositoryHomepageUrl": c.RepositoryHomepageURL,
		"repositoryBugsUrl":     c.RepositoryBugsURL,
		"repositoryGitUrl":      c.RepositoryGitURL,
		"author":                c.Author,
		"authorMarkdownLink":    c.AuthorMarkdownLink,
		"copyrightYear":         c.CopyrightYear,
		"year":                  c.Year,
	}
}
