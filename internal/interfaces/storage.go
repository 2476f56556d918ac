package interfaces

import (
	"github.com/shuddh-labs/shuddh/internal/models"
)

// DocumentStorage persists corpus chunks
type DocumentStorage interface {
	SaveDocument(doc *models.Document) error
	SaveDocuments(docs []*models.Document) error
	GetDocument(id string) (*models.Document, error)
	ListDocuments(limit, offset int) ([]*models.Document, error)
	CountDocuments() (int, error)
	CountBySource() (map[string]int, error)
	DeleteAll() error
}

// StorageManager provides access to all storage interfaces
type StorageManager interface {
	DocumentStorage() DocumentStorage
	Close() error
}
