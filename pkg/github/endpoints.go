package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// SearchUsers fetches one page of /search/users results for the given
// query. hasNext reports whether the response advertised a further page
// via the Link header.
func (c *Client) SearchUsers(ctx context.Context, query string, page, perPage int) (items []SearchUser, hasNext bool, err error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))

	resp, err := c.get(ctx, "/search/users", params)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, c.apiError(resp)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("decode search response: %w", err)
	}

	return result.Items, hasNextPage(resp.Header), nil
}

// GetUser fetches the full profile for a login.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	resp, err := c.get(ctx, "/users/"+url.PathEscape(login), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}

	return &user, nil
}

// ListRepos fetches one page of a user's repositories, most recently
// pushed first. The sort order comes from the API, not local sorting.
func (c *Client) ListRepos(ctx context.Context, login string, page, perPage int) (items []Repository, hasNext bool, err error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("sort", "pushed")
	params.Set("direction", "desc")

	resp, err := c.get(ctx, "/users/"+url.PathEscape(login)+"/repos", params)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, c.apiError(resp)
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, false, fmt.Errorf("decode repos response: %w", err)
	}

	return repos, hasNextPage(resp.Header), nil
}

// apiError builds an APIError from a non-success response, capturing the
// body for the log line.
func (c *Client) apiError(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		ErrorClass: classify(resp, nil),
		Endpoint:   resp.Request.URL.Path,
		Body:       strings.TrimSpace(string(body)),
	}

	c.logger.Warn().
		Str("endpoint", apiErr.Endpoint).
		Int("status", apiErr.StatusCode).
		Str("error_class", string(apiErr.ErrorClass)).
		Str("body", apiErr.Body).
		Msg("GitHub request error")

	return apiErr
}

// hasNextPage reports whether the Link header advertises a rel="next"
// page. GitHub pagination format:
//
//	<https://api.github.com/search/users?page=2>; rel="next", <...>; rel="last"
func hasNextPage(headers http.Header) bool {
	link := headers.Get("Link")
	if link == "" {
		return false
	}
	for _, part := range strings.Split(link, ",") {
		sections := strings.Split(part, ";")
		for _, section := range sections[1:] {
			if strings.TrimSpace(section) == `rel="next"` {
				return true
			}
		}
	}
	return false
}
