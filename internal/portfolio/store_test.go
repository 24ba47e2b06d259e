package portfolio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeFetcher struct {
	owner, repo, path string
	result            string
}

func (f *fakeFetcher) Repo(_ context.Context, owner, repo, path string) string {
	f.owner, f.repo, f.path = owner, repo, path
	if f.result == "" {
		return "fetched " + owner + "/" + repo
	}
	return f.result
}

const testProjects = `[
  {"title": "Trackify", "description": "expense tracker", "image": "/t.png", "link": "https://github.com/teyorkk/trackify", "tags": ["React"]},
  {"title": "CineMood", "description": "movie moods", "image": "/c.png", "link": "https://github.com/teyorkk/cinemood.git", "tags": ["React"]},
  {"title": "Sketchpad", "description": "no repo yet", "image": "/s.png", "link": "", "tags": []}
]`

func newTestStore(t *testing.T) (*Store, *fakeFetcher) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"projects.json":       testProjects,
		"skills.json":         `{"frontend": [{"name": "React", "icon": "/r.svg", "description": "ui"}]}`,
		"certifications.json": `[{"title": "RWD", "issuer": "freeCodeCamp", "date": "2023-05-12"}]`,
		"services.json":       `[{"title": "Web Development", "description": "sites", "icon": "code"}]`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	fetcher := &fakeFetcher{}
	return NewStore(dir, fetcher), fetcher
}

func TestData_KnownTypes(t *testing.T) {
	s, _ := newTestStore(t)
	for _, dataType := range []string{"projects", "skills", "certifications", "services"} {
		got := s.Data(context.Background(), dataType)
		if strings.HasPrefix(got, "Unknown data type") || strings.HasPrefix(got, "Error reading") {
			t.Errorf("%s: unexpected result %q", dataType, got)
		}
	}
}

func TestData_PrettyPrints(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.Data(context.Background(), "skills")
	if !strings.Contains(got, "\"name\": \"React\"") {
		t.Errorf("expected indented JSON, got:\n%s", got)
	}
}

func TestData_CaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.Data(context.Background(), "Projects")
	if !strings.Contains(got, "Trackify") {
		t.Errorf("mixed-case key should resolve, got %q", got)
	}
}

func TestData_UnknownType(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.Data(context.Background(), "widgets")
	want := "Unknown data type: widgets. Available types: projects, skills, certifications, services"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestData_MissingFile(t *testing.T) {
	fetcher := &fakeFetcher{}
	s := NewStore(t.TempDir(), fetcher)
	got := s.Data(context.Background(), "projects")
	if !strings.HasPrefix(got, "Error reading projects data:") {
		t.Errorf("got %q", got)
	}
}

func TestData_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "skills.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir, &fakeFetcher{})
	got := s.Data(context.Background(), "skills")
	if !strings.HasPrefix(got, "Error reading skills data:") {
		t.Errorf("got %q", got)
	}
}

func TestProjectReadme_DelegatesToFetcher(t *testing.T) {
	s, fetcher := newTestStore(t)
	got := s.ProjectReadme(context.Background(), "Trackify")
	if got != "fetched teyorkk/trackify" {
		t.Errorf("got %q", got)
	}
	if fetcher.path != "README.md" {
		t.Errorf("path = %q, want README.md", fetcher.path)
	}
}

func TestProjectReadme_CaseInsensitiveTitle(t *testing.T) {
	s, fetcher := newTestStore(t)
	s.ProjectReadme(context.Background(), "trackify")
	if fetcher.repo != "trackify" {
		t.Errorf("repo = %q", fetcher.repo)
	}
}

func TestProjectReadme_StripsGitSuffix(t *testing.T) {
	s, fetcher := newTestStore(t)
	s.ProjectReadme(context.Background(), "CineMood")
	if fetcher.owner != "teyorkk" || fetcher.repo != "cinemood" {
		t.Errorf("extracted %s/%s, want teyorkk/cinemood", fetcher.owner, fetcher.repo)
	}
}

func TestProjectReadme_UnknownTitleListsProjects(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.ProjectReadme(context.Background(), "Nonexistent")
	for _, title := range []string{"Trackify", "CineMood", "Sketchpad"} {
		if !strings.Contains(got, title) {
			t.Errorf("result should list %q, got %q", title, got)
		}
	}
	if !strings.Contains(got, fmt.Sprintf("Project %q not found", "Nonexistent")) {
		t.Errorf("got %q", got)
	}
}

func TestProjectReadme_EmptyLinkTreatedAsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.ProjectReadme(context.Background(), "Sketchpad")
	if !strings.Contains(got, "not found in portfolio") {
		t.Errorf("got %q", got)
	}
}

func TestProjectReadme_InvalidURL(t *testing.T) {
	dir := t.TempDir()
	projects := `[{"title": "Weird", "description": "d", "image": "", "link": "https://example.com/somewhere", "tags": []}]`
	if err := os.WriteFile(filepath.Join(dir, "projects.json"), []byte(projects), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(dir, &fakeFetcher{})
	got := s.ProjectReadme(context.Background(), "Weird")
	if !strings.Contains(got, "Invalid GitHub URL") || !strings.Contains(got, "https://example.com/somewhere") {
		t.Errorf("got %q", got)
	}
}

func TestProjectReadme_MissingProjectsFile(t *testing.T) {
	s := NewStore(t.TempDir(), &fakeFetcher{})
	got := s.ProjectReadme(context.Background(), "Trackify")
	if !strings.HasPrefix(got, "Error getting README for project") {
		t.Errorf("got %q", got)
	}
}
