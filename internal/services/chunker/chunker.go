// Package chunker splits extracted document text into overlapping windows
// sized for embedding.
package chunker

import (
	"strings"
	"unicode"
)

const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 200
)

// Chunker produces fixed-size overlapping text chunks. Sizes are measured in
// runes so multi-byte text never splits mid-character.
type Chunker struct {
	chunkSize int
	overlap   int
}

// New returns a Chunker. Non-positive sizes fall back to the defaults, and
// the overlap is clamped below the chunk size.
func New(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = DefaultOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 2
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// Split cuts text into chunks of at most chunkSize runes, each starting
// overlap runes before the end of the previous chunk. Chunk boundaries cut
// back to the last whitespace when one falls in the second half of the
// window, so words stay whole. Whitespace-only input yields no chunks.
func (c *Chunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= c.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + c.chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			for i := end; i > start+c.chunkSize/2; i-- {
				if unicode.IsSpace(runes[i-1]) {
					end = i
					break
				}
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}

		next := end - c.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}
	return chunks
}
