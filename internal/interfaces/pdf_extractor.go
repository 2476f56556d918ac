package interfaces

import "context"

// PDFPageContent holds extracted text for a single page
type PDFPageContent struct {
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// PDFExtractor extracts text content from PDF files
type PDFExtractor interface {
	// ExtractPages extracts text content by page from a PDF file
	ExtractPages(ctx context.Context, filePath string) ([]PDFPageContent, error)

	// ExtractText extracts all text content from a PDF file
	ExtractText(ctx context.Context, filePath string) (string, error)
}
