package models

import (
	"time"
)

// Document represents one corpus chunk: a character window cut from a page
// of an FSSAI testing manual PDF.
type Document struct {
	// Identity
	ID     string `json:"id" badgerhold:"key"` // doc_<uuid>
	Source string `json:"source"`              // PDF filename
	Page   int    `json:"page"`                // 1-indexed page the chunk starts on
	Chunk  int    `json:"chunk"`               // Chunk ordinal within the source

	// Content
	Content string `json:"content"`

	// Metadata carried into the vector store alongside the content
	Metadata map[string]string `json:"metadata,omitempty"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CorpusStats summarizes the ingested corpus
type CorpusStats struct {
	TotalChunks    int            `json:"total_chunks"`
	ChunksBySource map[string]int `json:"chunks_by_source"`
}
