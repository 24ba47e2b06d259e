package chat

import "github.com/teyorkk/portfolio-assistant/internal/llm"

// MaxHistoryMessages bounds the caller-supplied history forwarded to the
// model on each request.
const MaxHistoryMessages = 7

// BoundHistory normalizes a caller-supplied history: a conversation cannot
// open with a model turn, so a leading one is dropped, and only the most
// recent MaxHistoryMessages entries are kept. Order is preserved. The
// result is a copy; the caller's slice is never aliased.
func BoundHistory(history []llm.Message) []llm.Message {
	if len(history) > 0 && history[0].Role == "model" {
		history = history[1:]
	}
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}
	bounded := make([]llm.Message, len(history))
	copy(bounded, history)
	return bounded
}
