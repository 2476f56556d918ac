package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
	"github.com/shuddh-labs/shuddh/internal/models"
	"github.com/shuddh-labs/shuddh/internal/services/chunker"
)

// CorpusLoader turns a directory of PDF manuals into storable document chunks.
type CorpusLoader struct {
	extractor interfaces.PDFExtractor
	chunker   *chunker.Chunker
	logger    arbor.ILogger
}

// NewCorpusLoader creates a loader using the given extractor and chunk sizing.
func NewCorpusLoader(extractor interfaces.PDFExtractor, chunkSize, chunkOverlap int, logger arbor.ILogger) *CorpusLoader {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &CorpusLoader{
		extractor: extractor,
		chunker:   chunker.New(chunkSize, chunkOverlap),
		logger:    logger,
	}
}

// ListPDFs returns the PDF files directly under dir, sorted by name.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Load extracts and chunks every PDF under dir. Files that fail to parse are
// skipped with a warning; Load only errors when the directory is unreadable
// or yields no usable content at all.
func (l *CorpusLoader) Load(ctx context.Context, dir string) ([]*models.Document, error) {
	paths, err := ListPDFs(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}

	var docs []*models.Document
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fileDocs, err := l.loadFile(ctx, path)
		if err != nil {
			l.logger.Warn().Err(err).Str("file", path).Msg("Skipping unreadable PDF")
			continue
		}
		docs = append(docs, fileDocs...)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no text could be extracted from PDFs in %s", dir)
	}

	l.logger.Info().
		Int("files", len(paths)).
		Int("chunks", len(docs)).
		Msg("Loaded PDF corpus")
	return docs, nil
}

func (l *CorpusLoader) loadFile(ctx context.Context, path string) ([]*models.Document, error) {
	pages, err := l.extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, err
	}

	source := filepath.Base(path)
	now := time.Now()

	var docs []*models.Document
	for _, page := range pages {
		for i, chunk := range l.chunker.Split(page.Text) {
			docs = append(docs, &models.Document{
				ID:      "doc_" + uuid.New().String(),
				Source:  source,
				Page:    page.PageNumber,
				Chunk:   i,
				Content: chunk,
				Metadata: map[string]string{
					"source": source,
					"page":   strconv.Itoa(page.PageNumber),
					"chunk":  strconv.Itoa(i),
				},
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}
	return docs, nil
}
