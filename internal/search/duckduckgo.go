// Package search wraps the DuckDuckGo instant-answer API. Failures are
// rendered as model-readable text, never returned as errors.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const duckDuckGoAPI = "https://api.duckduckgo.com"

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL: duckDuckGoAPI,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ddgResponse models the instant-answer payload. Every field is optional;
// most queries populate only a subset.
type ddgResponse struct {
	Answer        string `json:"Answer"`
	AbstractText  string `json:"AbstractText"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

// Search runs an instant-answer lookup and formats whatever the API
// returned, preferring a direct answer, then the abstract, then up to
// three related topics.
func (c *Client) Search(ctx context.Context, query string) string {
	u := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return searchErrorText(query)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return searchErrorText(query)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Sprintf("I attempted to search for %q but encountered an issue. For the latest information, I recommend checking reliable news sources or search engines directly.", query)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return searchErrorText(query)
	}

	var data ddgResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return searchErrorText(query)
	}

	return formatResults(data, query)
}

func formatResults(data ddgResponse, query string) string {
	var parts []string

	if data.Answer != "" {
		parts = append(parts, data.Answer)
	}
	if data.AbstractText != "" {
		parts = append(parts, data.AbstractText)
	}

	if len(data.RelatedTopics) > 0 {
		var related []string
		for i, topic := range data.RelatedTopics {
			if i >= 3 {
				break
			}
			if topic.Text != "" {
				related = append(related, fmt.Sprintf("%d. %s", i+1, topic.Text))
			}
		}
		if len(related) > 0 {
			parts = append(parts, "Related information:\n"+strings.Join(related, "\n"))
		}
	}

	if len(parts) == 0 {
		return fmt.Sprintf("I searched for %q but didn't find specific results. Please try rephrasing your question or check reliable news sources directly.", query)
	}
	return strings.Join(parts, "\n\n")
}

func searchErrorText(query string) string {
	return fmt.Sprintf("I encountered an error while searching. For the latest information about %q, please check reliable news sources or search engines directly.", query)
}
