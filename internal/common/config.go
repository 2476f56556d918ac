package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Corpus      CorpusConfig  `toml:"corpus"`
	Gemini      GeminiConfig  `toml:"gemini"`
	RAG         RAGConfig     `toml:"rag"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"min=1,max=65535"`
	Host string `toml:"host" validate:"required"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"` // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"`         // Delete database on startup for clean test runs
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"` // "debug", "info", "warn", "error"
	Output []string `toml:"output"`                                      // "stdout", "file"
}

// CorpusConfig describes where the fixed PDF corpus lives
type CorpusConfig struct {
	PDFDir string `toml:"pdf_dir" validate:"required"` // Directory containing the FSSAI testing manual PDFs
}

// GeminiConfig contains Google Gemini API configuration for embeddings
type GeminiConfig struct {
	APIKey         string `toml:"api_key"`                             // Gemini API key (or GEMINI_API_KEY env var)
	EmbedModel     string `toml:"embed_model" validate:"required"`     // Embedding model name (default: "gemini-embedding-001")
	EmbedDimension int    `toml:"embed_dimension" validate:"required"` // Embedding vector dimension (default: 768)
	RateLimit      string `toml:"rate_limit"`                          // Minimum interval between embedding calls (default: "100ms")
}

// RAGConfig contains retrieval and responder tuning
type RAGConfig struct {
	VectorDBPath  string  `toml:"vector_db_path" validate:"required"`     // chromem-go persistence directory
	TopK          int     `toml:"top_k" validate:"min=1"`                 // Documents retrieved per query (default: 4)
	ChunkSize     int     `toml:"chunk_size" validate:"min=100"`          // Character window size for PDF chunks (default: 1000)
	ChunkOverlap  int     `toml:"chunk_overlap" validate:"min=0"`         // Overlap between consecutive chunks (default: 200)
	Temperature   float64 `toml:"temperature" validate:"min=0,max=1"`     // Probability of the responder's randomized phrasing draws (default: 0.9)
	InitOnStartup bool    `toml:"init_on_startup"`                        // Initialize retrieval at process start instead of first /api/init
	MinSimilarity float32 `toml:"min_similarity" validate:"min=0,max=1"` // Results below this cosine similarity are dropped
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in shuddh.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8080,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/badger",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		Corpus: CorpusConfig{
			PDFDir: "./corpus",
		},
		Gemini: GeminiConfig{
			APIKey:         "", // User must provide API key (config, env, or .env)
			EmbedModel:     "gemini-embedding-001",
			EmbedDimension: 768,
			RateLimit:      "100ms",
		},
		RAG: RAGConfig{
			VectorDBPath:  "./data/vectors",
			TopK:          4,
			ChunkSize:     1000,
			ChunkOverlap:  200,
			Temperature:   0.9,
			InitOnStartup: true,
			MinSimilarity: 0,
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env. Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration via struct tags
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.RAG.ChunkOverlap >= c.RAG.ChunkSize {
		return fmt.Errorf("invalid configuration: chunk_overlap (%d) must be smaller than chunk_size (%d)", c.RAG.ChunkOverlap, c.RAG.ChunkSize)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("SHUDDH_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("SHUDDH_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SHUDDH_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Storage configuration
	if badgerPath := os.Getenv("SHUDDH_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}

	// Logging configuration
	if level := os.Getenv("SHUDDH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("SHUDDH_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Corpus configuration
	if pdfDir := os.Getenv("SHUDDH_CORPUS_DIR"); pdfDir != "" {
		config.Corpus.PDFDir = pdfDir
	}

	// Gemini configuration. GEMINI_API_KEY matches the Google SDK convention
	// and what .env files in deployments already carry.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("SHUDDH_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("SHUDDH_GEMINI_EMBED_MODEL"); model != "" {
		config.Gemini.EmbedModel = model
	}

	// RAG configuration
	if vectorPath := os.Getenv("SHUDDH_VECTOR_DB_PATH"); vectorPath != "" {
		config.RAG.VectorDBPath = vectorPath
	}
	if topK := os.Getenv("SHUDDH_RAG_TOP_K"); topK != "" {
		if k, err := strconv.Atoi(topK); err == nil {
			config.RAG.TopK = k
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
