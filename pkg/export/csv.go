package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Column orders of the two tables. Consumers parse by header name, but
// the order is part of the file contract and stays fixed.
var (
	userHeader = []string{
		"login", "name", "company", "location", "email", "hireable",
		"bio", "public_repos", "followers", "following", "created_at",
	}

	repoHeader = []string{
		"login", "full_name", "created_at", "stargazers_count",
		"watchers_count", "language", "has_projects", "has_wiki",
		"license_name",
	}
)

// WriteUsers writes the users table to path, truncating any previous
// file. An empty record slice still produces a file with a header row.
func WriteUsers(path string, records []UserRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Login,
			r.Name,
			r.Company,
			r.Location,
			r.Email,
			r.Hireable,
			r.Bio,
			strconv.Itoa(r.PublicRepos),
			strconv.Itoa(r.Followers),
			strconv.Itoa(r.Following),
			r.CreatedAt,
		})
	}
	return writeTable(path, userHeader, rows)
}

// WriteRepos writes the repositories table to path, truncating any
// previous file.
func WriteRepos(path string, records []RepoRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Login,
			r.FullName,
			r.CreatedAt,
			strconv.Itoa(r.StargazersCount),
			strconv.Itoa(r.WatchersCount),
			r.Language,
			r.HasProjects,
			r.HasWiki,
			r.LicenseName,
		})
	}
	return writeTable(path, repoHeader, rows)
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
