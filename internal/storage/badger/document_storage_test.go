package badger

import (
	"path/filepath"
	"testing"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/models"
)

func newTestManager(t *testing.T) interfaces.StorageManager {
	t.Helper()
	manager, err := NewManager(nil, &common.BadgerConfig{
		Path: filepath.Join(t.TempDir(), "badger"),
	})
	if err != nil {
		t.Fatalf("Failed to create storage manager: %v", err)
	}
	t.Cleanup(func() { manager.Close() })
	return manager
}

func sampleDocument(id, source string, page int) *models.Document {
	return &models.Document{
		ID:      id,
		Source:  source,
		Page:    page,
		Chunk:   0,
		Content: "Testing content for " + id,
		Metadata: map[string]string{
			"source": source,
		},
	}
}

func TestDocumentStorage_SaveAndGet(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	doc := sampleDocument("doc-1", "manual.pdf", 1)
	if err := storage.SaveDocument(doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	if doc.CreatedAt.IsZero() || doc.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set on save")
	}

	got, err := storage.GetDocument("doc-1")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.Source != "manual.pdf" || got.Content != doc.Content {
		t.Errorf("Round-trip mismatch: %+v", got)
	}

	t.Run("Missing ID is rejected", func(t *testing.T) {
		if err := storage.SaveDocument(&models.Document{}); err == nil {
			t.Error("Expected an error for a document without ID")
		}
	})

	t.Run("Unknown document errors", func(t *testing.T) {
		if _, err := storage.GetDocument("nope"); err == nil {
			t.Error("Expected an error for an unknown document")
		}
	})
}

func TestDocumentStorage_CountsAndListing(t *testing.T) {
	storage := newTestManager(t).DocumentStorage()

	docs := []*models.Document{
		sampleDocument("a-1", "milk.pdf", 1),
		sampleDocument("a-2", "milk.pdf", 2),
		sampleDocument("b-1", "cereal.pdf", 1),
	}
	if err := storage.SaveDocuments(docs); err != nil {
		t.Fatalf("SaveDocuments failed: %v", err)
	}

	count, err := storage.CountDocuments()
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 documents, got %d", count)
	}

	bySource, err := storage.CountBySource()
	if err != nil {
		t.Fatalf("CountBySource failed: %v", err)
	}
	if bySource["milk.pdf"] != 2 || bySource["cereal.pdf"] != 1 {
		t.Errorf("Unexpected source counts: %v", bySource)
	}

	listed, err := storage.ListDocuments(2, 0)
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("Expected 2 documents with limit, got %d", len(listed))
	}

	if err := storage.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	count, err = storage.CountDocuments()
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 documents after DeleteAll, got %d", count)
	}
}
