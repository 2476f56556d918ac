package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
)

// ChatRequest is the POST /api/chat payload: a conversation transcript.
// Only the most recent user message is answered.
type ChatRequest struct {
	Messages []interfaces.Message `json:"messages"`
}

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService interfaces.ChatService
	logger      arbor.ILogger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService interfaces.ChatService, logger arbor.ILogger) *ChatHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ChatHandler handles POST /api/chat requests
func (h *ChatHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to decode chat request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	question := lastUserMessage(req.Messages)
	if question == "" {
		WriteError(w, http.StatusBadRequest, "No user message found")
		return
	}

	h.logger.Info().
		Int("messages", len(req.Messages)).
		Int("question_length", len(question)).
		Msg("Processing chat request")

	answer, err := h.chatService.Ask(r.Context(), question)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate chat response")
		WriteError(w, http.StatusInternalServerError, "An error occurred while processing your request")
		return
	}

	body := map[string]interface{}{
		"response": answer.Response,
	}
	if answer.Mode == interfaces.ModeFallback {
		body["fallback"] = true
		body["message"] = "Using fallback model due to RAG system error"
	}

	WriteJSON(w, http.StatusOK, body)
}

// lastUserMessage returns the content of the most recent message with the
// user role, or "" when there is none.
func lastUserMessage(messages []interfaces.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
