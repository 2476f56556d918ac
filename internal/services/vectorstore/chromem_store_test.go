package vectorstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shuddh-labs/shuddh/internal/models"
)

// axisEmbedder maps known words onto fixed unit vectors so similarity
// behaves predictably without any API access.
type axisEmbedder struct{}

func (axisEmbedder) vector(text string) []float32 {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "milk"):
		return []float32{1, 0, 0}
	case strings.Contains(lower, "cereal"):
		return []float32{0, 1, 0}
	default:
		return []float32{0, 0, 1}
	}
}

func (e axisEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return e.vector(text), nil
}

func (e axisEmbedder) GenerateQueryEmbedding(ctx context.Context, query string) ([]float32, error) {
	return e.vector(query), nil
}

func (axisEmbedder) ModelName() string                   { return "axis-test" }
func (axisEmbedder) Dimension() int                      { return 3 }
func (axisEmbedder) IsAvailable(ctx context.Context) bool { return true }

func testDocuments() []*models.Document {
	return []*models.Document{
		{ID: "doc-milk", Source: "manual.pdf", Page: 1, Content: "milk adulteration testing", Metadata: map[string]string{"source": "manual.pdf", "page": "1"}},
		{ID: "doc-cereal", Source: "manual.pdf", Page: 2, Content: "cereal adulteration testing", Metadata: map[string]string{"source": "manual.pdf", "page": "2"}},
	}
}

func TestStore_AddAndSearch(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(filepath.Join(t.TempDir(), "vectors"), axisEmbedder{}, 0.5, nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Add(ctx, testDocuments()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("Expected 2 vectors, got %d", store.Count())
	}

	t.Run("Returns the most similar chunk", func(t *testing.T) {
		results, err := store.Search(ctx, "how to test milk", 2)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 result above threshold, got %d", len(results))
		}
		if !strings.Contains(results[0].Content, "milk") {
			t.Errorf("Expected the milk chunk, got %q", results[0].Content)
		}
		if results[0].Metadata["page"] != "1" {
			t.Errorf("Metadata lost in search result: %v", results[0].Metadata)
		}
		if results[0].Similarity < 0.99 {
			t.Errorf("Expected near-perfect similarity, got %v", results[0].Similarity)
		}
	})

	t.Run("Dissimilar chunks are filtered", func(t *testing.T) {
		results, err := store.Search(ctx, "something about weather patterns", 2)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no results above threshold, got %v", results)
		}
	})

	t.Run("Empty query errors", func(t *testing.T) {
		if _, err := store.Search(ctx, "", 2); err == nil {
			t.Error("Expected an error for an empty query")
		}
	})
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vectors")

	store, err := NewStore(path, axisEmbedder{}, 0.5, nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if err := store.Add(ctx, testDocuments()); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !Exists(path) {
		t.Fatal("Expected persisted index to exist on disk")
	}

	reopened, err := NewStore(path, axisEmbedder{}, 0.5, nil)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	if reopened.Count() != 2 {
		t.Errorf("Expected 2 vectors after reopen, got %d", reopened.Count())
	}

	results, err := reopened.Retrieve(ctx, "cereal quality", 1)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if len(results) != 1 || !strings.Contains(results[0].Content, "cereal") {
		t.Errorf("Expected the cereal chunk after reopen, got %v", results)
	}
}

func TestStore_EmptyIndexSearch(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "vectors"), axisEmbedder{}, 0.5, nil)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	results, err := store.Search(context.Background(), "milk", 4)
	if err != nil {
		t.Fatalf("Search on empty index failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results from an empty index, got %v", results)
	}
}
