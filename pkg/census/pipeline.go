// Package census orchestrates the full run: search users by location
// and follower floor, enrich each hit with its profile and repository
// listing, normalize, and export the two CSV tables.
package census

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mkondo/gh-census/pkg/config"
	"github.com/mkondo/gh-census/pkg/export"
	"github.com/mkondo/gh-census/pkg/github"
	"github.com/mkondo/gh-census/pkg/logging"
	"github.com/mkondo/gh-census/pkg/pagination"
)

// Pipeline runs a census end to end.
type Pipeline struct {
	cfg    config.Config
	client *github.Client
	pacer  *pagination.Pacer
	logger zerolog.Logger
}

// Summary reports what a run produced.
type Summary struct {
	UsersFound   int // search hits
	UsersKept    int // profiles fetched successfully
	UsersSkipped int // profile fetch failed
	Repos        int // repository rows written
}

// New creates a pipeline. The config must already be validated.
func New(cfg config.Config, client *github.Client) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		client: client,
		pacer:  pagination.NewPacer(cfg.PageDelay),
		logger: logging.NewLogger("census"),
	}
}

// Run executes the census. Fetch failures degrade the result instead of
// failing the run: a user whose profile fetch fails is skipped along
// with its repositories, and a mid-pagination failure keeps the pages
// already collected. Both CSV files are always written, even when every
// fetch failed. Only export I/O errors are returned.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	hits := p.fetchUsers(ctx)
	sum.UsersFound = len(hits)
	p.logger.Info().Int("total", len(hits)).Msg("User search complete")

	users := make([]export.UserRecord, 0, len(hits))
	var repos []export.RepoRecord

	for i, hit := range hits {
		p.logger.Info().
			Int("index", i+1).
			Int("total", len(hits)).
			Str("login", hit.Login).
			Msg("Processing user")

		detail, err := p.client.GetUser(ctx, hit.Login)
		if err != nil {
			// Skip entirely: no user row, no repo rows
			p.logger.Warn().
				Str("login", hit.Login).
				Msg("Skipping user: profile fetch failed")
			sum.UsersSkipped++
			continue
		}
		sum.UsersKept++
		users = append(users, export.NewUserRecord(detail))

		userRepos := p.fetchRepos(ctx, hit.Login)
		p.logger.Info().
			Str("login", hit.Login).
			Int("repos", len(userRepos)).
			Msg("Fetched repositories")

		for _, r := range userRepos {
			repos = append(repos, export.NewRepoRecord(hit.Login, r))
		}

		if (i+1)%10 == 0 {
			p.logger.Info().
				Int("processed", i+1).
				Int("total", len(hits)).
				Msg("Progress")
		}
	}
	sum.Repos = len(repos)

	if err := export.WriteUsers(p.cfg.UsersPath(), users); err != nil {
		return sum, fmt.Errorf("export users: %w", err)
	}
	p.logger.Info().
		Str("file", p.cfg.UsersPath()).
		Int("rows", len(users)).
		Msg("Users table written")

	if err := export.WriteRepos(p.cfg.ReposPath(), repos); err != nil {
		return sum, fmt.Errorf("export repositories: %w", err)
	}
	p.logger.Info().
		Str("file", p.cfg.ReposPath()).
		Int("rows", len(repos)).
		Msg("Repositories table written")

	return sum, nil
}

// SearchQuery builds the search expression for a location and follower
// floor: location:"Tokyo" followers:>200
func SearchQuery(location string, minFollowers int) string {
	return fmt.Sprintf("location:%q followers:>%d", location, minFollowers)
}

// fetchUsers collects search hits across pages up to the page cap.
func (p *Pipeline) fetchUsers(ctx context.Context) []github.SearchUser {
	query := SearchQuery(p.cfg.Location, p.cfg.MinFollowers)
	p.logger.Info().Str("query", query).Msg("Starting user search")

	result := pagination.Collect(ctx, pagination.Config{
		MaxPages: p.cfg.MaxUserPages,
		Pacer:    p.pacer,
	}, func(ctx context.Context, page int) ([]github.SearchUser, bool, error) {
		items, hasNext, err := p.client.SearchUsers(ctx, query, page, p.cfg.UsersPerPage)
		if err == nil {
			p.logger.Info().
				Int("page", page).
				Int("users", len(items)).
				Msg("Fetched search page")
		}
		return items, hasNext, err
	})

	p.logger.Debug().
		Str("stop_reason", string(result.Reason)).
		Int("pages", result.Pages).
		Msg("User search pagination stopped")

	return result.Items
}

// fetchRepos collects one user's repositories up to the per-user cap.
func (p *Pipeline) fetchRepos(ctx context.Context, login string) []github.Repository {
	result := pagination.Collect(ctx, pagination.Config{
		MaxItems: p.cfg.MaxReposPerUser,
		Pacer:    p.pacer,
	}, func(ctx context.Context, page int) ([]github.Repository, bool, error) {
		return p.client.ListRepos(ctx, login, page, p.cfg.ReposPerPage)
	})

	p.logger.Debug().
		Str("login", login).
		Str("stop_reason", string(result.Reason)).
		Int("pages", result.Pages).
		Msg("Repository pagination stopped")

	return result.Items
}
