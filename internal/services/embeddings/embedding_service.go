// -----------------------------------------------------------------------
// Embedding Service - Gemini embeddings for corpus chunks and queries
// -----------------------------------------------------------------------

package embeddings

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
)

// Service generates embeddings through the Gemini API. Requests are rate
// limited so corpus ingestion stays inside the API quota.
type Service struct {
	client    *genai.Client
	modelName string
	dimension int
	limiter   *rate.Limiter
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.EmbeddingService = (*Service)(nil)

// NewService creates an embedding service backed by the Gemini API.
// minInterval is the minimum spacing between embedding calls; zero disables
// rate limiting.
func NewService(ctx context.Context, apiKey, modelName string, dimension int, minInterval time.Duration, logger arbor.ILogger) (*Service, error) {
	if logger == nil {
		logger = common.GetLogger()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-embedding-001"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if minInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(minInterval), 1)
	}

	logger.Info().
		Str("embed_model", modelName).
		Int("dimension", dimension).
		Str("rate_limit", minInterval.String()).
		Msg("Embedding service initialized")

	return &Service{
		client:    client,
		modelName: modelName,
		dimension: dimension,
		limiter:   limiter,
		logger:    logger,
	}, nil
}

// GenerateEmbedding embeds a corpus chunk.
func (s *Service) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return s.embed(ctx, text)
}

// GenerateQueryEmbedding embeds a search query. Queries use the same model
// and dimensionality as documents so vectors stay comparable.
func (s *Service) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return s.embed(ctx, query)
}

// ModelName returns the embedding model in use.
func (s *Service) ModelName() string {
	return s.modelName
}

// Dimension returns the configured output dimensionality.
func (s *Service) Dimension() int {
	return s.dimension
}

// IsAvailable probes the API with a tiny embedding request.
func (s *Service) IsAvailable(ctx context.Context) bool {
	_, err := s.embed(ctx, "ping")
	return err == nil
}

func (s *Service) embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("cannot embed empty text")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	outputDim := int32(s.dimension)
	embeddingConfig := &genai.EmbedContentConfig{
		OutputDimensionality: &outputDim,
	}

	result, err := s.client.Models.EmbedContent(ctx, s.modelName,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, embeddingConfig)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	var embedding []float32
	if result != nil && len(result.Embeddings) > 0 {
		embedding = result.Embeddings[0].Values
	}
	if embedding == nil {
		return nil, fmt.Errorf("no embedding returned from API")
	}
	if len(embedding) != s.dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: expected %d, got %d", s.dimension, len(embedding))
	}

	return embedding, nil
}
