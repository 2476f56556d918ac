package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/services/rag"
)

type stubInitializer struct {
	result    *rag.InitResult
	mode      interfaces.Mode
	lastForce bool
}

func (s *stubInitializer) Initialize(ctx context.Context, force bool) *rag.InitResult {
	s.lastForce = force
	return s.result
}

func (s *stubInitializer) Mode() interfaces.Mode {
	return s.mode
}

func TestInitHandler(t *testing.T) {
	t.Run("Reports connected components", func(t *testing.T) {
		svc := &stubInitializer{
			result: &rag.InitResult{
				Success:              true,
				Message:              "RAG system initialized successfully (10 chunks indexed)",
				IsRAG:                true,
				VectorStoreConnected: true,
			},
			mode: interfaces.ModeRAG,
		}
		handler := NewInitHandler(svc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/init", nil)
		rec := httptest.NewRecorder()
		handler.InitHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["success"] != true || body["isRAG"] != true {
			t.Errorf("Unexpected body: %v", body)
		}
		if body["vectorStore"] != "Connected" || body["chatModel"] != "Created" {
			t.Errorf("Unexpected component states: %v", body)
		}
		if svc.lastForce {
			t.Error("Plain init must not force a rebuild")
		}
	})

	t.Run("Limited mode message without retrieval", func(t *testing.T) {
		svc := &stubInitializer{
			result: &rag.InitResult{Success: true, Message: "whatever"},
			mode:   interfaces.ModeFallback,
		}
		handler := NewInitHandler(svc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/init", nil)
		rec := httptest.NewRecorder()
		handler.InitHandler(rec, req)

		body := decodeBody(t, rec)
		if body["message"] != "System initialized in limited mode without full knowledge base" {
			t.Errorf("Unexpected message: %v", body)
		}
		if body["vectorStore"] != "Not connected" {
			t.Errorf("Unexpected vector store state: %v", body)
		}
	})
}

func TestInitRAGHandler(t *testing.T) {
	t.Run("Forces a rebuild", func(t *testing.T) {
		svc := &stubInitializer{
			result: &rag.InitResult{Success: true, IsRAG: true, VectorStoreConnected: true},
		}
		handler := NewInitHandler(svc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/init-rag", nil)
		rec := httptest.NewRecorder()
		handler.InitRAGHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if !svc.lastForce {
			t.Error("Expected a forced rebuild")
		}
		body := decodeBody(t, rec)
		if body["message"] != "RAG system initialized successfully" {
			t.Errorf("Unexpected message: %v", body)
		}
	})

	t.Run("Errors when retrieval stays down", func(t *testing.T) {
		svc := &stubInitializer{
			result: &rag.InitResult{Success: true, IsRAG: false},
		}
		handler := NewInitHandler(svc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/init-rag", nil)
		rec := httptest.NewRecorder()
		handler.InitRAGHandler(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("Expected 500, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["error"] != "An error occurred while initializing the RAG system" {
			t.Errorf("Unexpected error body: %v", body)
		}
	})
}

type stubDocumentStorage struct {
	interfaces.DocumentStorage
	count    int
	bySource map[string]int
}

func (s *stubDocumentStorage) CountDocuments() (int, error) {
	return s.count, nil
}

func (s *stubDocumentStorage) CountBySource() (map[string]int, error) {
	return s.bySource, nil
}

type stubStorageManager struct {
	docs *stubDocumentStorage
}

func (s *stubStorageManager) DocumentStorage() interfaces.DocumentStorage {
	return s.docs
}

func (s *stubStorageManager) Close() error { return nil }

func TestStatusHandler(t *testing.T) {
	t.Run("Mode without storage", func(t *testing.T) {
		svc := &stubInitializer{mode: interfaces.ModeFallback}
		handler := NewInitHandler(svc, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		rec := httptest.NewRecorder()
		handler.StatusHandler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["mode"] != "fallback" {
			t.Errorf("Unexpected mode: %v", body)
		}
		if _, ok := body["corpus"]; ok {
			t.Error("Expected no corpus stats without storage")
		}
	})

	t.Run("Corpus counts with storage", func(t *testing.T) {
		svc := &stubInitializer{mode: interfaces.ModeRAG}
		storage := &stubStorageManager{docs: &stubDocumentStorage{
			count:    12,
			bySource: map[string]int{"milk_manual.pdf": 12},
		}}
		handler := NewInitHandler(svc, storage, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		rec := httptest.NewRecorder()
		handler.StatusHandler(rec, req)

		body := decodeBody(t, rec)
		corpus, ok := body["corpus"].(map[string]interface{})
		if !ok {
			t.Fatalf("Expected corpus stats, got %v", body)
		}
		if corpus["total_chunks"] != float64(12) {
			t.Errorf("Unexpected chunk count: %v", corpus)
		}
	})
}
