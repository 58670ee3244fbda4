package github

// API response shapes for the three endpoints the census consumes.
// Optional fields decode into pointers so that "absent" survives JSON
// decoding and normalization can treat it distinctly from a zero value.

// SearchResult is the envelope returned by /search/users.
type SearchResult struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []SearchUser `json:"items"`
}

// SearchUser is the abbreviated user object inside search results.
// Only the login matters; the full profile comes from GetUser.
type SearchUser struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// User is the full profile from /users/{login}.
type User struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Hireable    *bool   `json:"hireable"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   string  `json:"created_at"`
}

// License is the license object nested in a repository, when present.
type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SPDXID string `json:"spdx_id"`
}

// Repository is one element of /users/{login}/repos.
type Repository struct {
	FullName        string   `json:"full_name"`
	CreatedAt       string   `json:"created_at"`
	StargazersCount int      `json:"stargazers_count"`
	WatchersCount   int      `json:"watchers_count"`
	Language        *string  `json:"language"`
	HasProjects     *bool    `json:"has_projects"`
	HasWiki         *bool    `json:"has_wiki"`
	License         *License `json:"license"`
}
