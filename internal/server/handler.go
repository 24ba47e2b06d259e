// Package server is the HTTP boundary: a single JSON chat endpoint in
// front of the orchestrator. Every code path, including failures, answers
// with a JSON body.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/teyorkk/portfolio-assistant/config"
	"github.com/teyorkk/portfolio-assistant/internal/llm"
)

// Runner is the orchestrator surface the handler needs.
type Runner interface {
	Run(ctx context.Context, history []llm.Message, userMessage string) (string, []llm.Message, error)
}

type Handler struct {
	orch Runner
	cfg  *config.Config
}

func New(orch Runner, cfg *config.Config) *Handler {
	return &Handler{orch: orch, cfg: cfg}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", h.handleChat)
	return mux
}

type chatRequest struct {
	Message string        `json:"message"`
	History []llm.Message `json:"history"`
}

type chatResponse struct {
	Response string        `json:"response"`
	History  []llm.Message `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	if name := h.cfg.MissingCredential(); name != "" {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: name + " is not configured"})
		return
	}

	text, history, err := h.orch.Run(r.Context(), req.History, req.Message)
	if err != nil {
		log.Printf("chat error: %v", err)
		status, msg := classify(err)
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: text, History: history})
}

// classify maps an orchestration error onto a response status and message
// by matching known substrings of the upstream error text.
func classify(err error) (int, string) {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api key not valid") ||
		strings.Contains(msg, "API_KEY_INVALID") ||
		strings.Contains(lower, "invalid api key"):
		return http.StatusUnauthorized, "Invalid API key"
	case strings.Contains(lower, "is not configured"):
		return http.StatusInternalServerError, msg
	case strings.Contains(msg, "INVALID_ARGUMENT") ||
		strings.Contains(msg, "Invalid JSON payload"):
		return http.StatusBadRequest, "Invalid request"
	default:
		return http.StatusInternalServerError, "Failed to generate response"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
