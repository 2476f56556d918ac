// -----------------------------------------------------------------------
// PDF Extractor Service - Extract text content from PDF documents
// Uses pdfcpu for Go-native PDF processing
// -----------------------------------------------------------------------

package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/arbor"

	"github.com/shuddh-labs/shuddh/internal/common"
	"github.com/shuddh-labs/shuddh/internal/interfaces"
)

// Extractor implements the PDFExtractor interface using pdfcpu
type Extractor struct {
	logger  arbor.ILogger
	tempDir string
}

// Compile-time interface assertion
var _ interfaces.PDFExtractor = (*Extractor)(nil)

// NewExtractor creates a new PDF extractor service
func NewExtractor(logger arbor.ILogger) *Extractor {
	if logger == nil {
		logger = common.GetLogger()
	}

	tempDir := filepath.Join(os.TempDir(), "shuddh-pdf")
	os.MkdirAll(tempDir, 0755)

	return &Extractor{
		logger:  logger,
		tempDir: tempDir,
	}
}

// ExtractText extracts all text content from a PDF file, with page markers
// between pages.
func (e *Extractor) ExtractText(ctx context.Context, filePath string) (string, error) {
	pages, err := e.ExtractPages(ctx, filePath)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for i, page := range pages {
		if i > 0 {
			builder.WriteString("\n\n--- Page ")
			builder.WriteString(fmt.Sprintf("%d", page.PageNumber))
			builder.WriteString(" ---\n\n")
		}
		builder.WriteString(page.Text)
	}

	return builder.String(), nil
}

// ExtractPages extracts text content by page from a PDF file.
func (e *Extractor) ExtractPages(ctx context.Context, filePath string) ([]interfaces.PDFPageContent, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("failed to stat PDF file: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadContextFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	pageCount := pdfCtx.PageCount
	pages := make([]interfaces.PDFPageContent, 0, pageCount)

	// pdfcpu doesn't have direct text extraction, so extract page content
	// streams into a scratch directory and read them back
	outDir := filepath.Join(e.tempDir, fmt.Sprintf("pages_%d", os.Getpid()))
	os.MkdirAll(outDir, 0755)
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(filePath, outDir, nil, conf); err != nil {
		e.logger.Warn().Err(err).Str("file", filePath).Msg("Failed to extract PDF content")
		// Return pages with empty text so callers can still count pages
		for pageNum := 1; pageNum <= pageCount; pageNum++ {
			pages = append(pages, interfaces.PDFPageContent{
				PageNumber: pageNum,
				Text:       "",
			})
		}
		return pages, nil
	}

	files, _ := os.ReadDir(outDir)
	pageTexts := make(map[int]string)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		} else if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		}
	}

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pages = append(pages, interfaces.PDFPageContent{
			PageNumber: pageNum,
			Text:       pageTexts[pageNum],
		})
	}

	return pages, nil
}
