package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

const geminiAPI = "https://generativelanguage.googleapis.com/v1beta"

const (
	defaultGeminiModel = "gemini-2.5-flash"
	maxOutputTokens    = 2000
	temperature        = 0.7
)

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiAPI,
		http:    &http.Client{},
	}
}

// Raw API request/response types

type genRequest struct {
	SystemInstruction *genContent  `json:"systemInstruction,omitempty"`
	Contents          []genContent `json:"contents"`
	Tools             []genTool    `json:"tools,omitempty"`
	GenerationConfig  genConfig    `json:"generationConfig"`
}

type genContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []genPart `json:"parts"`
}

type genPart struct {
	Text             string     `json:"text,omitempty"`
	FunctionCall     *genFnCall `json:"functionCall,omitempty"`
	FunctionResponse *genFnResp `json:"functionResponse,omitempty"`
}

type genFnCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type genFnResp struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type genTool struct {
	FunctionDeclarations []genFnDecl `json:"functionDeclarations"`
}

type genFnDecl struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type genConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (c *GeminiClient) Chat(ctx context.Context, systemPrompt string, messages []Message, tools []Tool) (*Response, error) {
	// Build tool declarations
	var genTools []genTool
	if len(tools) > 0 {
		decls := make([]genFnDecl, len(tools))
		for i, t := range tools {
			decls[i] = genFnDecl{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			}
		}
		genTools = []genTool{{FunctionDeclarations: decls}}
	}

	// Build contents
	contents := make([]genContent, 0, len(messages))
	for _, m := range messages {
		parts := make([]genPart, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch {
			case p.FunctionCall != nil:
				parts = append(parts, genPart{FunctionCall: &genFnCall{
					Name: p.FunctionCall.Name,
					Args: p.FunctionCall.Args,
				}})
			case p.FunctionResponse != nil:
				parts = append(parts, genPart{FunctionResponse: &genFnResp{
					Name:     p.FunctionResponse.Name,
					Response: p.FunctionResponse.Response,
				}})
			default:
				parts = append(parts, genPart{Text: p.Text})
			}
		}
		contents = append(contents, genContent{Role: m.Role, Parts: parts})
	}

	reqBody := genRequest{
		Contents: contents,
		Tools:    genTools,
		GenerationConfig: genConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
		},
	}
	if systemPrompt != "" {
		reqBody.SystemInstruction = &genContent{Parts: []genPart{{Text: systemPrompt}}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var genResp genResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		if resp.StatusCode != 200 {
			return nil, fmt.Errorf("gemini chat: %s %s", resp.Status, string(respBody))
		}
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	if resp.StatusCode != 200 {
		// Surface the upstream message verbatim; the transport layer
		// classifies errors by matching it.
		if genResp.Error != nil {
			return nil, fmt.Errorf("gemini chat: %s", genResp.Error.Message)
		}
		return nil, fmt.Errorf("gemini chat: %s %s", resp.Status, string(respBody))
	}

	result := &Response{}
	if len(genResp.Candidates) == 0 {
		return result, nil
	}
	for _, part := range genResp.Candidates[0].Content.Parts {
		if part.FunctionCall != nil {
			result.ToolCalls = append(result.ToolCalls, ToolCall{
				ID:   uuid.NewString(),
				Name: part.FunctionCall.Name,
				Args: part.FunctionCall.Args,
			})
			continue
		}
		result.Text += part.Text
	}
	return result, nil
}
