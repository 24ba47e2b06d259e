// Package portfolio reads the site's static data documents and renders them
// as text for the assistant. Documents are read fresh on every call; there
// is no cache and no write path.
package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
}

type Skill struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link,omitempty"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// RepoFetcher resolves repository content; satisfied by the github client.
type RepoFetcher interface {
	Repo(ctx context.Context, owner, repo, path string) string
}

type Store struct {
	dataDir string
	repos   RepoFetcher
}

func NewStore(dataDir string, repos RepoFetcher) *Store {
	return &Store{dataDir: dataDir, repos: repos}
}

var dataFiles = map[string]string{
	"projects":       "projects.json",
	"skills":         "skills.json",
	"certifications": "certifications.json",
	"services":       "services.json",
}

const availableTypes = "projects, skills, certifications, services"

// Data returns the pretty-printed contents of one portfolio document. An
// unknown key produces a text listing the valid keys — still a usable model
// result, not an error.
func (s *Store) Data(ctx context.Context, dataType string) string {
	file, ok := dataFiles[strings.ToLower(dataType)]
	if !ok {
		return fmt.Sprintf("Unknown data type: %s. Available types: %s", dataType, availableTypes)
	}

	raw, err := os.ReadFile(filepath.Join(s.dataDir, file))
	if err != nil {
		return fmt.Sprintf("Error reading %s data: %v", dataType, err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Sprintf("Error reading %s data: %v", dataType, err)
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error reading %s data: %v", dataType, err)
	}
	return string(pretty)
}

var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// ProjectReadme looks up a project by title (case-insensitive), extracts
// owner/repo from its GitHub link, and fetches the project's README.
func (s *Store) ProjectReadme(ctx context.Context, projectTitle string) string {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, dataFiles["projects"]))
	if err != nil {
		return fmt.Sprintf("Error getting README for project %q: %v", projectTitle, err)
	}
	var projects []Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return fmt.Sprintf("Error getting README for project %q: %v", projectTitle, err)
	}

	var project *Project
	for i := range projects {
		if strings.EqualFold(projects[i].Title, projectTitle) {
			project = &projects[i]
			break
		}
	}

	if project == nil || project.Link == "" {
		titles := make([]string, len(projects))
		for i, p := range projects {
			titles[i] = p.Title
		}
		return fmt.Sprintf("Project %q not found in portfolio. Available projects: %s", projectTitle, strings.Join(titles, ", "))
	}

	m := repoURLPattern.FindStringSubmatch(project.Link)
	if m == nil {
		return fmt.Sprintf("Invalid GitHub URL for project %q: %s", projectTitle, project.Link)
	}
	owner := m[1]
	repo := strings.TrimSuffix(m[2], ".git")

	return s.repos.Repo(ctx, owner, repo, "README.md")
}
