package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// OpenAIClient speaks to any OpenAI-compatible chat-completions endpoint
// (OpenAI itself, Gemini's compatibility layer, or a local Ollama). It
// translates the model/user message shape into chat-completions messages.
type OpenAIClient struct {
	client openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	if model == "" {
		model = string(openai.ChatModelGPT4o)
	}
	return &OpenAIClient{client: client, model: model}
}

func (c *OpenAIClient) Chat(ctx context.Context, systemPrompt string, messages []Message, tools []Tool) (*Response, error) {
	// Convert tools
	oaiTools := make([]openai.ChatCompletionToolUnionParam, len(tools))
	for i, t := range tools {
		oaiTools[i] = openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        t.Name,
			Description: openai.String(t.Description),
			Parameters:  openai.FunctionParameters(t.Parameters),
		})
	}

	// Convert messages
	oaiMsgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
	}
	for _, m := range messages {
		switch m.Role {
		case "user":
			text := ""
			sentResult := false
			for _, p := range m.Parts {
				if p.FunctionResponse != nil {
					content, _ := json.Marshal(p.FunctionResponse.Response)
					id := p.FunctionResponse.ID
					if id == "" {
						id = uuid.NewString()
					}
					oaiMsgs = append(oaiMsgs, openai.ToolMessage(string(content), id))
					sentResult = true
					continue
				}
				text += p.Text
			}
			if text != "" || !sentResult {
				oaiMsgs = append(oaiMsgs, openai.UserMessage(text))
			}
		case "model":
			var toolCalls []openai.ChatCompletionMessageToolCallUnionParam
			text := ""
			for _, p := range m.Parts {
				if p.FunctionCall != nil {
					argsJSON, _ := json.Marshal(p.FunctionCall.Args)
					id := p.FunctionCall.ID
					if id == "" {
						id = uuid.NewString()
					}
					toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallUnionParam{
						OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
							ID: id,
							Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
								Name:      p.FunctionCall.Name,
								Arguments: string(argsJSON),
							},
						},
					})
					continue
				}
				text += p.Text
			}
			if len(toolCalls) > 0 {
				oaiMsgs = append(oaiMsgs, openai.ChatCompletionMessageParamUnion{
					OfAssistant: &openai.ChatCompletionAssistantMessageParam{
						Content: openai.ChatCompletionAssistantMessageParamContentUnion{
							OfString: param.NewOpt(text),
						},
						ToolCalls: toolCalls,
					},
				})
			} else {
				oaiMsgs = append(oaiMsgs, openai.AssistantMessage(text))
			}
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            oaiMsgs,
		Tools:               oaiTools,
		MaxCompletionTokens: openai.Int(maxOutputTokens),
		Temperature:         openai.Float(temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return &Response{}, nil
	}

	choice := resp.Choices[0]
	result := &Response{
		Text: choice.Message.Content,
	}

	for _, tc := range choice.Message.ToolCalls {
		ftc := tc.AsFunction()
		args := map[string]any{}
		_ = json.Unmarshal([]byte(ftc.Function.Arguments), &args)
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			ID:   ftc.ID,
			Name: ftc.Function.Name,
			Args: args,
		})
	}

	return result, nil
}
