// Package github is a small read-only client for the GitHub REST API.
// Everything it returns is text meant for model consumption; failures are
// converted into explanatory sentences at the package boundary.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const githubAPI = "https://api.github.com"

type Client struct {
	token   string // optional; anonymous access works with stricter rate limits
	baseURL string
	http    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: githubAPI,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// repoInfo models the repository metadata payload. Fields the API may omit
// are pointers so absence degrades to a placeholder instead of a zero value
// being mistaken for data.
type repoInfo struct {
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	StargazersCount int64   `json:"stargazers_count"`
	ForksCount      int64   `json:"forks_count"`
	Language        *string `json:"language"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	HTMLURL         string  `json:"html_url"`
	Homepage        *string `json:"homepage"`
}

// contentEntry models one entry of a contents response, either a file
// (with base64 content) or a directory listing element.
type contentEntry struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
	Name     string `json:"name"`
}

// Repo returns a text description of a repository, never an error. With a
// path it returns that file's content or a directory listing; without one
// (or when the path fetch fails) it returns repository metadata followed by
// the README when available.
func (c *Client) Repo(ctx context.Context, owner, repo, path string) string {
	text, err := c.repo(ctx, owner, repo, path)
	if err != nil {
		return fmt.Sprintf("I encountered an error accessing the GitHub repository %s/%s. %s", owner, repo, err.Error())
	}
	return text
}

func (c *Client) repo(ctx context.Context, owner, repo, path string) (string, error) {
	if path != "" {
		if text, _ := c.fetchContent(ctx, owner, repo, path); text != "" {
			return text, nil
		}
	}

	overview, err := c.fetchRepo(ctx, owner, repo)
	if err != nil {
		return "", err
	}

	if readme := c.fetchReadme(ctx, owner, repo); readme != "" {
		return overview + "\n\nREADME:\n" + readme, nil
	}
	return overview, nil
}

// fetchContent returns the rendered content at path, or "" to signal the
// caller to fall back to the repository overview.
func (c *Client) fetchContent(ctx context.Context, owner, repo, path string) (string, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, repo, path))
	if err != nil || status != 200 {
		return "", err
	}

	// A directory comes back as a JSON array, a file as an object.
	trimmed := strings.TrimLeft(string(body), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		var entries []contentEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			return "", nil
		}
		var list []string
		for _, e := range entries {
			name := e.Name
			if name == "" {
				name = "unknown"
			}
			list = append(list, fmt.Sprintf("- %s (%s)", name, e.Type))
		}
		return fmt.Sprintf("Directory: %s\n\nFiles:\n%s", path, strings.Join(list, "\n")), nil
	}

	var entry contentEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return "", nil
	}
	if entry.Type == "file" && entry.Encoding == "base64" && entry.Content != "" {
		decoded, err := decodeBase64(entry.Content)
		if err != nil {
			return "", nil
		}
		return fmt.Sprintf("File: %s\n\n%s", path, decoded), nil
	}
	return "", nil
}

func (c *Client) fetchRepo(ctx context.Context, owner, repo string) (string, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo))
	if err != nil {
		return "", err
	}
	if status == 404 {
		return fmt.Sprintf("Repository %s/%s not found. Please check the repository name and owner.", owner, repo), nil
	}
	if status != 200 {
		return "", fmt.Errorf("GitHub API error: %d", status)
	}

	var info repoInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("parsing repository data: %v", err)
	}

	lines := []string{
		"Repository: " + info.FullName,
		"Description: " + strOr(info.Description, "No description"),
		"Stars: " + humanize.Comma(info.StargazersCount),
		"Forks: " + humanize.Comma(info.ForksCount),
		"Language: " + strOr(info.Language, "N/A"),
		"Created: " + localeDate(info.CreatedAt),
		"Updated: " + localeDate(info.UpdatedAt),
		"URL: " + info.HTMLURL,
	}
	if info.Homepage != nil && *info.Homepage != "" {
		lines = append(lines, "Homepage: "+*info.Homepage)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Client) fetchReadme(ctx context.Context, owner, repo string) string {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo))
	if err != nil || status != 200 {
		return ""
	}
	var entry contentEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return ""
	}
	if entry.Content == "" {
		return ""
	}
	decoded, err := decodeBase64(entry.Content)
	if err != nil {
		return ""
	}
	return decoded
}

// get performs an authenticated GET and returns the body and status code.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// decodeBase64 handles the API's line-wrapped base64 content.
func decodeBase64(s string) (string, error) {
	s = strings.ReplaceAll(s, "\n", "")
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// localeDate renders an RFC 3339 timestamp as M/D/YYYY, passing the raw
// value through if it doesn't parse.
func localeDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
