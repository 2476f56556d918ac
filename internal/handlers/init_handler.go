package handlers

import (
	"context"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/models"
	"github.com/shuddh-labs/shuddh/internal/services/rag"
)

// Initializer brings the retrieval pipeline up on demand.
type Initializer interface {
	Initialize(ctx context.Context, force bool) *rag.InitResult
	Mode() interfaces.Mode
}

// InitHandler handles RAG initialization HTTP requests
type InitHandler struct {
	service Initializer
	storage interfaces.StorageManager
	logger  arbor.ILogger
}

// NewInitHandler creates a new init handler. storage may be nil; the status
// endpoint then omits corpus counts.
func NewInitHandler(service Initializer, storage interfaces.StorageManager, logger arbor.ILogger) *InitHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &InitHandler{
		service: service,
		storage: storage,
		logger:  logger,
	}
}

// InitHandler handles GET /api/init requests. It initializes the system,
// reusing a persisted index when one exists, and reports component states.
func (h *InitHandler) InitHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	h.logger.Info().Msg("Initializing system from API endpoint")
	result := h.service.Initialize(r.Context(), false)

	vectorStore := "Not connected"
	if result.VectorStoreConnected {
		vectorStore = "Connected"
	}

	message := result.Message
	if !result.IsRAG {
		message = "System initialized in limited mode without full knowledge base"
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     result.Success,
		"message":     message,
		"isRAG":       result.IsRAG,
		"vectorStore": vectorStore,
		"chatModel":   "Created",
	})
}

// InitRAGHandler handles GET /api/init-rag requests. It forces a rebuild of
// the vector index from the PDF corpus.
func (h *InitHandler) InitRAGHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	h.logger.Info().Msg("Rebuilding RAG index from API endpoint")
	result := h.service.Initialize(r.Context(), true)
	if !result.IsRAG {
		WriteError(w, http.StatusInternalServerError, "An error occurred while initializing the RAG system")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "RAG system initialized successfully",
	})
}

// StatusHandler handles GET /api/status requests with mode and corpus counts.
func (h *InitHandler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	body := map[string]interface{}{
		"mode": string(h.service.Mode()),
	}

	if h.storage != nil {
		stats := models.CorpusStats{}
		if count, err := h.storage.DocumentStorage().CountDocuments(); err == nil {
			stats.TotalChunks = count
		}
		if bySource, err := h.storage.DocumentStorage().CountBySource(); err == nil {
			stats.ChunksBySource = bySource
		}
		body["corpus"] = stats
	}

	WriteJSON(w, http.StatusOK, body)
}
