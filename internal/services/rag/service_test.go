package rag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/services/pdf"
)

type stubRetriever struct {
	docs []interfaces.RetrievedDocument
	err  error

	lastQuery string
	lastTopK  int
}

func (r *stubRetriever) Retrieve(ctx context.Context, query string, topK int) ([]interfaces.RetrievedDocument, error) {
	r.lastQuery = query
	r.lastTopK = topK
	return r.docs, r.err
}

type stubEmbedder struct{}

func (stubEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if strings.Contains(strings.ToLower(text), "milk") {
		return []float32{1, 0, 0}, nil
	}
	return []float32{0, 1, 0}, nil
}

func (e stubEmbedder) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return e.GenerateEmbedding(ctx, query)
}

func (stubEmbedder) ModelName() string                    { return "stub" }
func (stubEmbedder) Dimension() int                       { return 3 }
func (stubEmbedder) IsAvailable(ctx context.Context) bool { return true }

type stubExtractor struct{ text string }

func (s *stubExtractor) ExtractPages(ctx context.Context, filePath string) ([]interfaces.PDFPageContent, error) {
	return []interfaces.PDFPageContent{{PageNumber: 1, Text: s.text}}, nil
}

func (s *stubExtractor) ExtractText(ctx context.Context, filePath string) (string, error) {
	return s.text, nil
}

func testConfig(t *testing.T) *common.Config {
	t.Helper()
	cfg := common.NewDefaultConfig()
	base := t.TempDir()
	cfg.Corpus.PDFDir = filepath.Join(base, "corpus")
	cfg.RAG.VectorDBPath = filepath.Join(base, "vectors")
	cfg.RAG.ChunkSize = 200
	cfg.RAG.ChunkOverlap = 40
	return cfg
}

func newFallbackService(t *testing.T) *Service {
	t.Helper()
	cfg := testConfig(t)
	loader := pdf.NewCorpusLoader(&stubExtractor{}, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, nil)
	return NewService(cfg, nil, nil, loader, nil)
}

func TestService_AskFallback(t *testing.T) {
	svc := newFallbackService(t)

	if svc.Mode() != interfaces.ModeFallback {
		t.Fatalf("Expected fallback mode, got %v", svc.Mode())
	}

	answer, err := svc.Ask(context.Background(), "How to detect milk adulteration?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer.Response == "" {
		t.Fatal("Expected a non-empty response")
	}
	if answer.Mode != interfaces.ModeFallback || answer.Retrieved != 0 {
		t.Errorf("Unexpected answer envelope: %+v", answer)
	}
	if !strings.Contains(answer.Response, "Water in milk") {
		t.Errorf("Expected canned milk guidance, got %q", answer.Response)
	}
}

func TestService_AskEmptyQuestion(t *testing.T) {
	svc := newFallbackService(t)
	if _, err := svc.Ask(context.Background(), "   "); err == nil {
		t.Fatal("Expected an error for a blank question")
	}
}

func TestService_AskWithRetriever(t *testing.T) {
	svc := newFallbackService(t)
	retriever := &stubRetriever{
		docs: []interfaces.RetrievedDocument{
			{Content: "Milk testing is described in the manual with a detailed procedure for adulterants.", Similarity: 0.9},
		},
	}
	svc.SetRetriever(retriever)

	if svc.Mode() != interfaces.ModeRAG {
		t.Fatalf("Expected RAG mode, got %v", svc.Mode())
	}

	answer, err := svc.Ask(context.Background(), "Is my milk adulterated?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer.Mode != interfaces.ModeRAG || answer.Retrieved != 1 {
		t.Errorf("Unexpected answer envelope: %+v", answer)
	}
	if retriever.lastTopK != svc.cfg.RAG.TopK {
		t.Errorf("Expected topK %d, got %d", svc.cfg.RAG.TopK, retriever.lastTopK)
	}

	t.Run("Food item questions get a focused query", func(t *testing.T) {
		if _, err := svc.Ask(context.Background(), "How can I test my honey"); err != nil {
			t.Fatalf("Ask failed: %v", err)
		}
		if retriever.lastQuery != "detection of adulteration in honey" {
			t.Errorf("Expected rewritten query, got %q", retriever.lastQuery)
		}
	})

	t.Run("Clarifications skip retrieval", func(t *testing.T) {
		retriever.lastQuery = ""
		if _, err := svc.Ask(context.Background(), "Can you explain that?"); err != nil {
			t.Fatalf("Ask failed: %v", err)
		}
		if retriever.lastQuery != "" {
			t.Error("Expected no retrieval for a clarification question")
		}
	})
}

func TestService_AskRetrievalErrorDegrades(t *testing.T) {
	svc := newFallbackService(t)
	svc.SetRetriever(&stubRetriever{err: fmt.Errorf("index offline")})

	answer, err := svc.Ask(context.Background(), "How to detect milk adulteration?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer.Response == "" || answer.Retrieved != 0 {
		t.Errorf("Expected degraded answer, got %+v", answer)
	}
}

func TestDeduplicateContents(t *testing.T) {
	long := strings.Repeat("x", 150)
	docs := []interfaces.RetrievedDocument{
		{Content: long + " first tail"},
		{Content: long + " second tail"},
		{Content: "a different passage entirely"},
		{Content: "  a different passage entirely  "},
	}
	unique := DeduplicateContents(docs)
	if len(unique) != 2 {
		t.Fatalf("Expected 2 unique passages, got %d: %v", len(unique), unique)
	}
	if !strings.HasSuffix(unique[0], "first tail") {
		t.Errorf("Expected the first occurrence kept, got %q", unique[0])
	}
}

func TestService_InitializeWithoutEmbedder(t *testing.T) {
	svc := newFallbackService(t)
	result := svc.Initialize(context.Background(), false)
	if !result.Success || result.IsRAG {
		t.Errorf("Expected fallback result, got %+v", result)
	}
	if svc.Mode() != interfaces.ModeFallback {
		t.Errorf("Expected fallback mode, got %v", svc.Mode())
	}
}

func TestService_InitializeRebuildsFromCorpus(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.Corpus.PDFDir, 0755); err != nil {
		t.Fatalf("Failed to create corpus dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Corpus.PDFDir, "manual.pdf"), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write corpus file: %v", err)
	}

	extractor := &stubExtractor{text: "Milk adulteration testing procedure with iodine solution and a lactometer."}
	loader := pdf.NewCorpusLoader(extractor, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, nil)
	svc := NewService(cfg, nil, stubEmbedder{}, loader, nil)

	result := svc.Initialize(context.Background(), false)
	if !result.Success || !result.IsRAG || !result.VectorStoreConnected {
		t.Fatalf("Expected successful RAG init, got %+v", result)
	}
	if svc.Mode() != interfaces.ModeRAG {
		t.Fatalf("Expected RAG mode, got %v", svc.Mode())
	}

	// A second call on the same service is a no-op once retrieval is up.
	again := svc.Initialize(context.Background(), false)
	if !again.Success || !again.IsRAG {
		t.Fatalf("Expected idempotent init, got %+v", again)
	}
	if !strings.Contains(again.Message, "already initialized") {
		t.Errorf("Expected already-initialized message, got %q", again.Message)
	}

	// A fresh service should now reopen the persisted index without rebuilding.
	svc2 := NewService(cfg, nil, stubEmbedder{}, loader, nil)
	result2 := svc2.Initialize(context.Background(), false)
	if !result2.Success || !result2.IsRAG {
		t.Fatalf("Expected reopen to succeed, got %+v", result2)
	}
	if !strings.Contains(result2.Message, "existing index") {
		t.Errorf("Expected reopen message, got %q", result2.Message)
	}

	answer, err := svc2.Ask(context.Background(), "Is my milk adulterated?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if answer.Mode != interfaces.ModeRAG || answer.Retrieved == 0 {
		t.Errorf("Expected a retrieval-grounded answer, got %+v", answer)
	}
}

func TestService_InitializeFallsBackWithoutCorpus(t *testing.T) {
	cfg := testConfig(t)
	loader := pdf.NewCorpusLoader(&stubExtractor{}, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, nil)
	svc := NewService(cfg, nil, stubEmbedder{}, loader, nil)

	result := svc.Initialize(context.Background(), false)
	if !result.Success || result.IsRAG {
		t.Errorf("Expected fallback result when corpus missing, got %+v", result)
	}
	if svc.Mode() != interfaces.ModeFallback {
		t.Errorf("Expected fallback mode, got %v", svc.Mode())
	}
}
