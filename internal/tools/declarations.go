package tools

import "github.com/teyorkk/portfolio-assistant/internal/llm"

// Declarations is the static catalog of functions advertised to the model.
// It is handed to the provider on every request and never mutated.
var Declarations = []llm.Tool{
	{
		Name:        "search_web",
		Description: "Search the web for current information, news, or up-to-date data. Use this function when you need to find the latest information about current events, news, recent developments, or any information that changes over time.",
		Parameters: objReq(map[string]any{
			"query": prop("string", "The search query to look up on the web. Should be specific and relevant to what the user is asking about."),
		}, "query"),
	},
	{
		Name:        "get_github_repo",
		Description: "Access GitHub repository information, including repository details, README files, and file contents. Use this when users ask about specific GitHub repositories, want to see code, or need information about a project on GitHub.",
		Parameters: objReq(map[string]any{
			"owner": prop("string", "The GitHub username or organization that owns the repository (e.g., 'facebook', 'vercel', 'teyorkk')."),
			"repo":  prop("string", "The name of the repository (e.g., 'react', 'next.js', 'my-portfolio')."),
			"path":  prop("string", "Optional: Specific file or directory path within the repository (e.g., 'src/index.js', 'README.md', 'package.json'). If not provided, returns repository overview and README."),
		}, "owner", "repo"),
	},
	{
		Name:        "get_portfolio_data",
		Description: "Access portfolio data files including projects, skills, certifications, and services. Use this when users ask about the portfolio owner's work, skills, certifications, or services offered.",
		Parameters: objReq(map[string]any{
			"dataType": propEnum("string", "The type of portfolio data to retrieve. Must be one of: 'projects', 'skills', 'certifications', 'services'.",
				"projects", "skills", "certifications", "services"),
		}, "dataType"),
	},
	{
		Name:        "get_project_readme",
		Description: "Get the README file from a project listed in the portfolio. Use this when users ask about a specific project's README or want to see project documentation. The project must be listed in the portfolio projects.",
		Parameters: objReq(map[string]any{
			"projectTitle": prop("string", "The title of the project from the portfolio (e.g., 'IskolarBlock', 'My Portfolio Website', 'Trackify', 'Cineverse', 'SocMedSS', 'CineMood', 'La La Land')."),
		}, "projectTitle"),
	},
}

// Helper functions for building JSON Schema objects.

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func propEnum(typ, desc string, values ...string) map[string]any {
	p := prop(typ, desc)
	p["enum"] = values
	return p
}

func obj(properties map[string]any) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func objReq(properties map[string]any, required ...string) map[string]any {
	s := obj(properties)
	s["required"] = required
	return s
}
