// Package config defines the immutable run configuration for gh-census.
// A Config is built once at process start and passed explicitly to every
// component; there is no other shared state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TokenEnvVar is the environment variable holding the GitHub personal
// access token. The process refuses to start without it.
const TokenEnvVar = "GITHUB_TOKEN"

// ErrMissingToken is returned when GITHUB_TOKEN is unset or blank.
// This is the only fatal error path in the tool.
var ErrMissingToken = errors.New("GitHub token not found: set the GITHUB_TOKEN environment variable")

// Config holds all run parameters.
type Config struct {
	// BaseURL is the GitHub API root (override for tests).
	BaseURL string

	// Token is the personal access token sent with every request.
	Token string

	// Location is the exact-match location filter for the user search.
	Location string

	// MinFollowers is the exclusive lower bound on follower count.
	MinFollowers int

	// UsersPerPage is the search page size (GitHub max: 100).
	UsersPerPage int

	// ReposPerPage is the repository listing page size (GitHub max: 100).
	ReposPerPage int

	// MaxUserPages caps search pagination (the Search API stops serving
	// results past 1000 anyway).
	MaxUserPages int

	// MaxReposPerUser caps how many repositories are kept per user.
	MaxReposPerUser int

	// PageDelay is the fixed sleep between consecutive pages of one
	// paginated fetch. Not adaptive.
	PageDelay time.Duration

	// OutputDir is where the CSV tables are written.
	OutputDir string

	// UsersFile and ReposFile are the CSV filenames, overwritten each run.
	UsersFile string
	ReposFile string

	// RedisAddr enables the ETag response cache when non-empty.
	RedisAddr string

	// MetricsAddr exposes Prometheus metrics when non-empty (e.g. ":9090").
	MetricsAddr string
}

// Default returns the standard configuration with the token taken from
// the environment.
func Default() Config {
	return Config{
		BaseURL:         "https://api.github.com",
		Token:           strings.TrimSpace(os.Getenv(TokenEnvVar)),
		Location:        "Tokyo",
		MinFollowers:    200,
		UsersPerPage:    100,
		ReposPerPage:    100,
		MaxUserPages:    10,
		MaxReposPerUser: 500,
		PageDelay:       1 * time.Second,
		OutputDir:       ".",
		UsersFile:       "users.csv",
		ReposFile:       "repositories.csv",
	}
}

// Validate checks the configuration. A missing token is fatal; everything
// else gets clamped or rejected with a descriptive error.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	if c.Location == "" {
		return fmt.Errorf("location filter is required")
	}
	if c.UsersPerPage < 1 || c.UsersPerPage > 100 {
		return fmt.Errorf("users per page must be 1..100 (got %d)", c.UsersPerPage)
	}
	if c.ReposPerPage < 1 || c.ReposPerPage > 100 {
		return fmt.Errorf("repos per page must be 1..100 (got %d)", c.ReposPerPage)
	}
	if c.MaxUserPages < 1 {
		return fmt.Errorf("max user pages must be >= 1 (got %d)", c.MaxUserPages)
	}
	if c.MaxReposPerUser < 0 {
		return fmt.Errorf("max repos per user must be >= 0 (got %d)", c.MaxReposPerUser)
	}
	if c.PageDelay < 0 {
		return fmt.Errorf("page delay must be >= 0 (got %s)", c.PageDelay)
	}
	return nil
}

// UsersPath returns the full path of the users table.
func (c Config) UsersPath() string {
	return filepath.Join(c.OutputDir, c.UsersFile)
}

// ReposPath returns the full path of the repositories table.
func (c Config) ReposPath() string {
	return filepath.Join(c.OutputDir, c.ReposFile)
}
