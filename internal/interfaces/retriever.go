package interfaces

import "context"

// RetrievedDocument is one passage returned by similarity search.
// Metadata carries source file and page information.
type RetrievedDocument struct {
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Similarity float32           `json:"similarity"`
}

// Retriever finds corpus passages relevant to a query
type Retriever interface {
	// Retrieve returns up to topK passages ranked by similarity.
	// Results may contain near-duplicates; callers deduplicate.
	Retrieve(ctx context.Context, query string, topK int) ([]RetrievedDocument, error)
}
