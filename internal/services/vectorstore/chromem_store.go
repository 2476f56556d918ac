// -----------------------------------------------------------------------
// Vector Store - Persistent embedded vector index over corpus chunks
// Uses chromem-go for storage and cosine similarity search
// -----------------------------------------------------------------------

package vectorstore

import (
	"context"
	"fmt"
	"os"

	chromem "github.com/philippgille/chromem-go"
	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/models"
)

const collectionName = "fssai_manuals"

// Store is a persistent vector index over corpus chunks. Add embeds through
// the configured embedding service; Search embeds the query and runs cosine
// similarity.
type Store struct {
	db            *chromem.DB
	collection    *chromem.Collection
	embedder      interfaces.EmbeddingService
	minSimilarity float32
	logger        arbor.ILogger
}

// Compile-time interface assertions
var (
	_ interfaces.VectorStore = (*Store)(nil)
	_ interfaces.Retriever   = (*Store)(nil)
)

// Exists reports whether a persisted index is present at dbPath.
func Exists(dbPath string) bool {
	info, err := os.Stat(dbPath)
	return err == nil && info.IsDir()
}

// NewStore opens (or creates) a persistent vector store at dbPath. Results
// below minSimilarity are dropped from searches.
func NewStore(dbPath string, embedder interfaces.EmbeddingService, minSimilarity float32, logger arbor.ILogger) (*Store, error) {
	if logger == nil {
		logger = common.GetLogger()
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedding service is required")
	}

	db, err := chromem.NewPersistentDB(dbPath, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open vector database: %w", err)
	}

	metadata := map[string]string{
		"hnsw:space": "cosine",
	}
	collection, err := db.GetOrCreateCollection(collectionName, metadata, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}

	logger.Info().
		Str("path", dbPath).
		Int("vectors", collection.Count()).
		Msg("Vector store opened")

	return &Store{
		db:            db,
		collection:    collection,
		embedder:      embedder,
		minSimilarity: minSimilarity,
		logger:        logger,
	}, nil
}

// Add embeds and indexes the documents.
func (s *Store) Add(ctx context.Context, docs []*models.Document) error {
	for _, doc := range docs {
		if doc.Content == "" {
			continue
		}

		vector, err := s.embedder.GenerateEmbedding(ctx, doc.Content)
		if err != nil {
			return fmt.Errorf("failed to embed document %s: %w", doc.ID, err)
		}

		metadata := make(map[string]string, len(doc.Metadata))
		for k, v := range doc.Metadata {
			metadata[k] = v
		}

		if err := s.collection.Add(ctx,
			[]string{doc.ID},
			[][]float32{vector},
			[]map[string]string{metadata},
			[]string{doc.Content},
		); err != nil {
			return fmt.Errorf("failed to index document %s: %w", doc.ID, err)
		}
	}

	s.logger.Info().Int("documents", len(docs)).Msg("Indexed documents into vector store")
	return nil
}

// Search embeds the query and returns the most similar chunks.
func (s *Store) Search(ctx context.Context, query string, topK int) ([]interfaces.RetrievedDocument, error) {
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	count := s.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if topK > count {
		topK = count
	}

	vector, err := s.embedder.GenerateQueryEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := s.collection.QueryEmbedding(ctx, vector, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	retrieved := make([]interfaces.RetrievedDocument, 0, len(results))
	for _, result := range results {
		if result.Similarity < s.minSimilarity {
			continue
		}
		retrieved = append(retrieved, interfaces.RetrievedDocument{
			Content:    result.Content,
			Metadata:   result.Metadata,
			Similarity: result.Similarity,
		})
	}

	s.logger.Debug().
		Str("query", query).
		Int("results", len(retrieved)).
		Int("filtered", len(results)-len(retrieved)).
		Msg("Vector search completed")
	return retrieved, nil
}

// Retrieve satisfies the Retriever interface.
func (s *Store) Retrieve(ctx context.Context, query string, topK int) ([]interfaces.RetrievedDocument, error) {
	return s.Search(ctx, query, topK)
}

// Count returns the number of indexed vectors.
func (s *Store) Count() int {
	return s.collection.Count()
}
