package llm

import "context"

// Message is one conversational turn in the wire format the chat API uses:
// a role plus an ordered list of content parts. Tool results travel as
// user-role messages carrying functionResponse parts.
type Message struct {
	Role  string `json:"role"` // user, model
	Parts []Part `json:"parts"`
}

type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

// FunctionCall is a tool invocation requested by the model. The ID is
// assigned locally for correlation; the upstream protocol matches results
// by name.
type FunctionCall struct {
	ID   string         `json:"id,omitempty"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// FunctionResponse carries one tool result back to the model.
type FunctionResponse struct {
	ID       string         `json:"id,omitempty"`
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

type Response struct {
	Text      string
	ToolCalls []ToolCall
}

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

type Client interface {
	Chat(ctx context.Context, systemPrompt string, messages []Message, tools []Tool) (*Response, error)
}

// TextMessage builds a plain single-part text turn.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Text concatenates the text parts of a message.
func (m Message) Text() string {
	var s string
	for _, p := range m.Parts {
		s += p.Text
	}
	return s
}
