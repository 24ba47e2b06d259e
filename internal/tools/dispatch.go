package tools

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/teyorkk/portfolio-assistant/internal/llm"
)

// Result is one executed tool call: the adapter's text output plus an echo
// of the resolved arguments, keyed by tool name. The payload shape is fixed
// per tool so the model can rely on it.
type Result struct {
	ID       string
	Name     string
	Response map[string]any
}

type PortfolioReader interface {
	Data(ctx context.Context, dataType string) string
	ProjectReadme(ctx context.Context, projectTitle string) string
}

type RepoReader interface {
	Repo(ctx context.Context, owner, repo, path string) string
}

type WebSearcher interface {
	Search(ctx context.Context, query string) string
}

type Dispatcher struct {
	portfolio PortfolioReader
	github    RepoReader
	search    WebSearcher
}

func NewDispatcher(portfolio PortfolioReader, github RepoReader, search WebSearcher) *Dispatcher {
	return &Dispatcher{portfolio: portfolio, github: github, search: search}
}

// Dispatch runs one model-issued call. It returns nil for unknown tool
// names and for calls missing required arguments — the caller skips those
// rather than invoking an adapter with partial data. Only the search tool
// has a default: a missing query falls back to the user's own message.
func (d *Dispatcher) Dispatch(ctx context.Context, call llm.ToolCall, userMessage string) *Result {
	switch call.Name {
	case "search_web":
		query, _ := getString(call.Args, "query")
		if query == "" {
			query = userMessage
		}
		results := d.search.Search(ctx, query)
		return d.result(call, map[string]any{"results": results, "query": query})

	case "get_github_repo":
		owner, _ := getString(call.Args, "owner")
		repo, _ := getString(call.Args, "repo")
		if owner == "" || repo == "" {
			return nil
		}
		path, _ := getString(call.Args, "path")
		info := d.github.Repo(ctx, owner, repo, path)
		var pathVal any
		if path != "" {
			pathVal = path
		}
		return d.result(call, map[string]any{"info": info, "owner": owner, "repo": repo, "path": pathVal})

	case "get_portfolio_data":
		dataType, _ := getString(call.Args, "dataType")
		if dataType == "" {
			return nil
		}
		data := d.portfolio.Data(ctx, dataType)
		return d.result(call, map[string]any{"data": data, "dataType": dataType})

	case "get_project_readme":
		projectTitle, _ := getString(call.Args, "projectTitle")
		if projectTitle == "" {
			return nil
		}
		readme := d.portfolio.ProjectReadme(ctx, projectTitle)
		return d.result(call, map[string]any{"readme": readme, "projectTitle": projectTitle})

	default:
		return nil
	}
}

// DispatchAll fans out over every call concurrently and joins the surviving
// results in the original call order, so the model can correlate them.
// Adapters swallow their own failures, so one call can never cancel its
// siblings.
func (d *Dispatcher) DispatchAll(ctx context.Context, calls []llm.ToolCall, userMessage string) []Result {
	slots := make([]*Result, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			slots[i] = d.Dispatch(gctx, call, userMessage)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	results := make([]Result, 0, len(calls))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

func (d *Dispatcher) result(call llm.ToolCall, response map[string]any) *Result {
	if text, ok := primaryText(call.Name, response); ok {
		log.Printf("tool %s → %s", call.Name, truncate(text, 200))
	}
	return &Result{ID: call.ID, Name: call.Name, Response: response}
}

// primaryText pulls the adapter's text output from a payload for logging.
func primaryText(name string, response map[string]any) (string, bool) {
	keys := map[string]string{
		"search_web":         "results",
		"get_github_repo":    "info",
		"get_portfolio_data": "data",
		"get_project_readme": "readme",
	}
	key, ok := keys[name]
	if !ok {
		return "", false
	}
	s, ok := response[key].(string)
	return s, ok
}

// Param extraction helper — model-issued arguments are untyped JSON.
func getString(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
