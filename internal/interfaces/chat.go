package interfaces

import "context"

// Mode describes whether answers are grounded in retrieval or produced
// by the rule-based responder alone.
type Mode string

const (
	// ModeRAG indicates retrieval over the corpus is available
	ModeRAG Mode = "rag"

	// ModeFallback indicates the service runs without retrieval
	ModeFallback Mode = "fallback"
)

// Message represents a single message in a chat conversation
type Message struct {
	// Role identifies the message sender: "user" or "assistant"
	Role string `json:"role"`

	// Content contains the text content of the message
	Content string `json:"content"`
}

// Answer is the result of asking a question
type Answer struct {
	// Response is the composed answer text. Never empty.
	Response string `json:"response"`

	// Mode records which tier produced the answer
	Mode Mode `json:"mode"`

	// Retrieved is the number of corpus passages that informed the answer
	Retrieved int `json:"retrieved"`
}

// ChatService answers food-safety questions, with retrieval when available
type ChatService interface {
	// Ask answers the question. It never returns an empty response;
	// retrieval failures degrade to the rule-based path instead of erroring.
	Ask(ctx context.Context, question string) (*Answer, error)

	// Mode returns the current operating mode
	Mode() Mode
}
