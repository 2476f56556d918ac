// -----------------------------------------------------------------------
// RAG Service - Retrieval pipeline orchestration and degraded-mode fallback
// -----------------------------------------------------------------------

package rag

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/services/pdf"
	"github.com/shuddh-labs/shuddh/internal/services/responder"
	"github.com/shuddh-labs/shuddh/internal/services/vectorstore"
)

const fingerprintLength = 100

// InitResult reports the outcome of an initialization attempt.
type InitResult struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	IsRAG                bool   `json:"isRAG"`
	VectorStoreConnected bool   `json:"vectorStoreConnected"`
}

// Service answers questions, retrieving corpus passages when an index is
// available and degrading to the rule-based responder when it is not. The
// service always starts in fallback mode; Initialize upgrades it.
type Service struct {
	cfg      *common.Config
	storage  interfaces.StorageManager
	embedder interfaces.EmbeddingService
	loader   *pdf.CorpusLoader
	logger   arbor.ILogger

	mu        sync.RWMutex
	retriever interfaces.Retriever
	answerer  *responder.Responder
	mode      interfaces.Mode
}

// Compile-time interface assertion
var _ interfaces.ChatService = (*Service)(nil)

// NewService creates the chat service in fallback mode. embedder may be nil
// when no API key is configured; retrieval then stays unavailable.
func NewService(cfg *common.Config, storage interfaces.StorageManager, embedder interfaces.EmbeddingService, loader *pdf.CorpusLoader, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Service{
		cfg:      cfg,
		storage:  storage,
		embedder: embedder,
		loader:   loader,
		logger:   logger,
		answerer: responder.New(false, cfg.RAG.Temperature, logger),
		mode:     interfaces.ModeFallback,
	}
}

// Initialize brings retrieval up by trying strategies in order: reopen a
// persisted index, rebuild the index from the PDF corpus, and finally settle
// for fallback mode. With force it always rebuilds. Initialize never fails
// the service; the result records which tier is active.
func (s *Service) Initialize(ctx context.Context, force bool) *InitResult {
	if s.embedder == nil {
		s.logger.Warn().Msg("No embedding service configured, staying in fallback mode")
		return s.settleFallback("Chat model created without RAG (no embedding service configured)")
	}

	if !force {
		// Idempotent after first success
		if s.Mode() == interfaces.ModeRAG {
			return &InitResult{
				Success:              true,
				Message:              "RAG system already initialized",
				IsRAG:                true,
				VectorStoreConnected: true,
			}
		}

		if result := s.tryOpenExisting(); result != nil {
			return result
		}
	}

	if result := s.tryRebuild(ctx); result != nil {
		return result
	}

	return s.settleFallback("RAG initialization failed, falling back to basic chat model")
}

func (s *Service) tryOpenExisting() *InitResult {
	if !vectorstore.Exists(s.cfg.RAG.VectorDBPath) {
		return nil
	}

	store, err := vectorstore.NewStore(s.cfg.RAG.VectorDBPath, s.embedder, s.cfg.RAG.MinSimilarity, s.logger)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to open persisted vector store")
		return nil
	}
	if store.Count() == 0 {
		s.logger.Warn().Msg("Persisted vector store is empty, rebuilding")
		return nil
	}

	s.activateRAG(store)
	s.logger.Info().Int("vectors", store.Count()).Msg("Reopened persisted vector store")
	return &InitResult{
		Success:              true,
		Message:              fmt.Sprintf("RAG system initialized from existing index (%d vectors)", store.Count()),
		IsRAG:                true,
		VectorStoreConnected: true,
	}
}

func (s *Service) tryRebuild(ctx context.Context) *InitResult {
	docs, err := s.loader.Load(ctx, s.cfg.Corpus.PDFDir)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load PDF corpus")
		return nil
	}

	if s.storage != nil {
		if err := s.storage.DocumentStorage().DeleteAll(); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to clear stored corpus chunks")
		}
		if err := s.storage.DocumentStorage().SaveDocuments(docs); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to persist corpus chunks")
		}
	}

	store, err := vectorstore.NewStore(s.cfg.RAG.VectorDBPath, s.embedder, s.cfg.RAG.MinSimilarity, s.logger)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to create vector store")
		return nil
	}
	if err := store.Add(ctx, docs); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to index corpus chunks")
		return nil
	}

	s.activateRAG(store)
	s.logger.Info().Int("chunks", len(docs)).Msg("Rebuilt vector index from PDF corpus")
	return &InitResult{
		Success:              true,
		Message:              fmt.Sprintf("RAG system initialized successfully (%d chunks indexed)", len(docs)),
		IsRAG:                true,
		VectorStoreConnected: true,
	}
}

func (s *Service) activateRAG(retriever interfaces.Retriever) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retriever = retriever
	s.answerer = responder.New(true, s.cfg.RAG.Temperature, s.logger)
	s.mode = interfaces.ModeRAG
}

func (s *Service) settleFallback(message string) *InitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retriever = nil
	s.answerer = responder.New(false, s.cfg.RAG.Temperature, s.logger)
	s.mode = interfaces.ModeFallback
	return &InitResult{
		Success: true,
		Message: message,
	}
}

// SetRetriever swaps the retrieval backend, entering RAG mode when one is
// given and fallback mode otherwise. Used by tests.
func (s *Service) SetRetriever(retriever interfaces.Retriever) {
	if retriever == nil {
		s.settleFallback("retrieval disabled")
		return
	}
	s.activateRAG(retriever)
}

// Mode returns the current operating mode.
func (s *Service) Mode() interfaces.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// IsRAG reports whether retrieval is active.
func (s *Service) IsRAG() bool {
	return s.Mode() == interfaces.ModeRAG
}

// Ask answers a question. Retrieval errors degrade to the rule-based path
// rather than failing the request.
func (s *Service) Ask(ctx context.Context, question string) (*interfaces.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is empty")
	}

	s.mu.RLock()
	retriever := s.retriever
	answerer := s.answerer
	mode := s.mode
	s.mu.RUnlock()

	var docContents string
	retrievedCount := 0

	if retriever != nil && !responder.IsClarification(question) {
		query := responder.SearchQuery(question)
		docs, err := retriever.Retrieve(ctx, query, s.cfg.RAG.TopK)
		if err != nil {
			s.logger.Warn().Err(err).Str("query", query).Msg("Retrieval failed, answering without corpus")
		} else if len(docs) > 0 {
			unique := DeduplicateContents(docs)
			retrievedCount = len(unique)
			docContents = strings.Join(unique, "\n\n")
			s.logger.Debug().
				Str("query", query).
				Int("retrieved", len(docs)).
				Int("unique", retrievedCount).
				Msg("Retrieved corpus passages")
		}
	}

	response := answerer.Respond(question, docContents)
	return &interfaces.Answer{
		Response:  response,
		Mode:      mode,
		Retrieved: retrievedCount,
	}, nil
}

// DeduplicateContents drops passages whose first hundred characters repeat an
// earlier passage. Overlapping chunk windows make such repeats common.
func DeduplicateContents(docs []interfaces.RetrievedDocument) []string {
	seen := make(map[string]struct{}, len(docs))
	var unique []string
	for _, doc := range docs {
		trimmed := strings.TrimSpace(doc.Content)
		fingerprint := trimmed
		if runes := []rune(trimmed); len(runes) > fingerprintLength {
			fingerprint = string(runes[:fingerprintLength])
		}
		if _, dup := seen[fingerprint]; dup {
			continue
		}
		seen[fingerprint] = struct{}{}
		unique = append(unique, doc.Content)
	}
	return unique
}
