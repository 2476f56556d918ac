package interfaces

import (
	"context"

	"github.com/shuddh-labs/shuddh/internal/models"
)

// VectorStore persists document embeddings and serves similarity queries
type VectorStore interface {
	// Add embeds and stores the documents
	Add(ctx context.Context, docs []*models.Document) error

	// Search returns up to topK documents by cosine similarity to the query
	Search(ctx context.Context, query string, topK int) ([]RetrievedDocument, error)

	// Count returns the number of stored vectors
	Count() int
}
