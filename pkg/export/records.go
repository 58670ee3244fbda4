package export

import (
	"github.com/mkondo/gh-census/pkg/github"
)

// UserRecord is one row of the users table.
type UserRecord struct {
	Login       string
	Name        string
	Company     string
	Location    string
	Email       string
	Hireable    string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   string
}

// RepoRecord is one row of the repositories table. Login is the owning
// user's login; a RepoRecord only exists for users whose profile fetch
// succeeded.
type RepoRecord struct {
	Login           string
	FullName        string
	CreatedAt       string
	StargazersCount int
	WatchersCount   int
	Language        string
	HasProjects     string
	HasWiki         string
	LicenseName     string
}

// NewUserRecord flattens a full user profile into a table row.
func NewUserRecord(u *github.User) UserRecord {
	return UserRecord{
		Login:       u.Login,
		Name:        StringOr(u.Name),
		Company:     CompanyName(u.Company),
		Location:    StringOr(u.Location),
		Email:       StringOr(u.Email),
		Hireable:    BoolString(u.Hireable),
		Bio:         StringOr(u.Bio),
		PublicRepos: u.PublicRepos,
		Followers:   u.Followers,
		Following:   u.Following,
		CreatedAt:   u.CreatedAt,
	}
}

// NewRepoRecord flattens a repository into a table row keyed by its
// owner's login. The license drill-down is defensive: no license object
// means an empty license name, never an error.
func NewRepoRecord(login string, r github.Repository) RepoRecord {
	licenseName := ""
	if r.License != nil {
		licenseName = r.License.Key
	}

	return RepoRecord{
		Login:           login,
		FullName:        r.FullName,
		CreatedAt:       r.CreatedAt,
		StargazersCount: r.StargazersCount,
		WatchersCount:   r.WatchersCount,
		Language:        StringOr(r.Language),
		HasProjects:     BoolString(r.HasProjects),
		HasWiki:         BoolString(r.HasWiki),
		LicenseName:     licenseName,
	}
}
