// -----------------------------------------------------------------------
// Application wiring - storage, services and handlers in dependency order
// -----------------------------------------------------------------------

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/handlers"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/services/embeddings"
	"github.com/shuddh-labs/shuddh/internal/services/pdf"
	"github.com/shuddh-labs/shuddh/internal/services/rag"
	"github.com/shuddh-labs/shuddh/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager

	// Embedding service is nil when no Gemini API key is configured; the
	// chat service then runs in fallback mode.
	EmbeddingService interfaces.EmbeddingService
	CorpusLoader     *pdf.CorpusLoader
	ChatService      *rag.Service

	// HTTP handlers
	APIHandler  *handlers.APIHandler
	ChatHandler *handlers.ChatHandler
	InitHandler *handlers.InitHandler
}

// New initializes the application with all dependencies
func New(ctx context.Context, cfg *common.Config, logger arbor.ILogger) (*App, error) {
	if logger == nil {
		logger = common.GetLogger()
	}

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := app.initServices(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.initHandlers()

	// Build or reopen the vector index on startup so the first chat request
	// does not pay the initialization cost. Failures degrade to fallback
	// mode rather than aborting startup.
	if cfg.RAG.InitOnStartup {
		result := app.ChatService.Initialize(ctx, false)
		logger.Info().
			Bool("rag", result.IsRAG).
			Str("message", result.Message).
			Msg("Startup initialization complete")
	}

	logger.Info().
		Str("mode", string(app.ChatService.Mode())).
		Msg("Application initialization complete")

	return app, nil
}

// initDatabase initializes the storage layer (Badger)
func (a *App) initDatabase() error {
	storageManager, err := badger.NewManager(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to create storage manager: %w", err)
	}

	a.StorageManager = storageManager
	a.Logger.Debug().
		Str("storage", "badger").
		Str("path", a.Config.Storage.Badger.Path).
		Msg("Storage layer initialized")

	return nil
}

// initServices initializes business services in dependency order.
func (a *App) initServices(ctx context.Context) error {
	// Embedding service requires a Gemini API key. Without one the chat
	// service still works using the rule-based responder.
	if a.Config.Gemini.APIKey != "" {
		embedder, err := embeddings.NewService(
			ctx,
			a.Config.Gemini.APIKey,
			a.Config.Gemini.EmbedModel,
			a.Config.Gemini.EmbedDimension,
			parseDuration(a.Config.Gemini.RateLimit, 100*time.Millisecond),
			a.Logger,
		)
		if err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to initialize embedding service - running without RAG")
		} else {
			a.EmbeddingService = embedder
			a.Logger.Debug().Msg("Embedding service initialized")
		}
	} else {
		a.Logger.Info().Msg("No Gemini API key configured - running without RAG")
		a.Logger.Info().Msg("To enable RAG, set GEMINI_API_KEY or gemini.api_key in config")
	}

	extractor := pdf.NewExtractor(a.Logger)
	a.CorpusLoader = pdf.NewCorpusLoader(
		extractor,
		a.Config.RAG.ChunkSize,
		a.Config.RAG.ChunkOverlap,
		a.Logger,
	)
	a.Logger.Debug().
		Str("pdf_dir", a.Config.Corpus.PDFDir).
		Msg("Corpus loader initialized")

	a.ChatService = rag.NewService(
		a.Config,
		a.StorageManager,
		a.EmbeddingService,
		a.CorpusLoader,
		a.Logger,
	)
	a.Logger.Debug().Msg("Chat service initialized")

	return nil
}

// initHandlers initializes all HTTP handlers
func (a *App) initHandlers() {
	a.APIHandler = handlers.NewAPIHandler()
	a.ChatHandler = handlers.NewChatHandler(a.ChatService, a.Logger)
	a.InitHandler = handlers.NewInitHandler(a.ChatService, a.StorageManager, a.Logger)
}

// Close closes all application resources
func (a *App) Close() error {
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}

	return nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
