package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/teyorkk/portfolio-assistant/internal/llm"
	"github.com/teyorkk/portfolio-assistant/internal/tools"
)

// Dispatcher executes model-issued tool calls; skipped calls are filtered
// out and results come back in the original call order.
type Dispatcher interface {
	DispatchAll(ctx context.Context, calls []llm.ToolCall, userMessage string) []tools.Result
}

// Orchestrator runs one conversational exchange: bound history in, final
// answer plus the complete updated history out. At most one round of tool
// calls is dispatched per exchange.
type Orchestrator struct {
	client     llm.Client
	dispatcher Dispatcher
}

func New(client llm.Client, dispatcher Dispatcher) *Orchestrator {
	return &Orchestrator{client: client, dispatcher: dispatcher}
}

// Run submits the user message on top of the bounded history, executes any
// tool calls the model requests, resubmits their results once, and returns
// the final text together with the full turn sequence. The server keeps no
// state; the caller holds the returned history for the next request.
func (o *Orchestrator) Run(ctx context.Context, history []llm.Message, userMessage string) (string, []llm.Message, error) {
	messages := BoundHistory(history)
	messages = append(messages, llm.TextMessage("user", userMessage))

	resp, err := o.client.Chat(ctx, llm.SystemPrompt, messages, tools.Declarations)
	if err != nil {
		return "", nil, fmt.Errorf("llm chat: %w", err)
	}

	if len(resp.ToolCalls) == 0 {
		messages = append(messages, llm.TextMessage("model", resp.Text))
		return resp.Text, messages, nil
	}

	results := o.dispatcher.DispatchAll(ctx, resp.ToolCalls, userMessage)
	if len(results) == 0 {
		// Every call was skipped; nothing to feed back, so the first
		// response's text stands.
		messages = append(messages, llm.TextMessage("model", resp.Text))
		return resp.Text, messages, nil
	}

	messages = append(messages, modelTurn(resp))
	messages = append(messages, resultsTurn(results))

	second, err := o.client.Chat(ctx, llm.SystemPrompt, messages, tools.Declarations)
	if err != nil {
		return "", nil, fmt.Errorf("llm chat: %w", err)
	}
	// Exactly one tool round: further calls in the second response are not
	// dispatched.
	if len(second.ToolCalls) > 0 {
		log.Printf("ignoring %d tool calls in follow-up response", len(second.ToolCalls))
	}
	messages = append(messages, llm.TextMessage("model", second.Text))
	return second.Text, messages, nil
}

// modelTurn rebuilds the model's message, text plus its function calls, for
// the history.
func modelTurn(resp *llm.Response) llm.Message {
	var parts []llm.Part
	if resp.Text != "" {
		parts = append(parts, llm.Part{Text: resp.Text})
	}
	for _, tc := range resp.ToolCalls {
		parts = append(parts, llm.Part{FunctionCall: &llm.FunctionCall{
			ID:   tc.ID,
			Name: tc.Name,
			Args: tc.Args,
		}})
	}
	return llm.Message{Role: "model", Parts: parts}
}

// resultsTurn packs all tool results into a single user-role turn.
func resultsTurn(results []tools.Result) llm.Message {
	parts := make([]llm.Part, len(results))
	for i, r := range results {
		parts[i] = llm.Part{FunctionResponse: &llm.FunctionResponse{
			ID:       r.ID,
			Name:     r.Name,
			Response: r.Response,
		}}
	}
	return llm.Message{Role: "user", Parts: parts}
}
