package chunker

import (
	"strings"
	"testing"
)

func TestChunker_Split(t *testing.T) {
	t.Run("Short text is a single chunk", func(t *testing.T) {
		c := New(100, 20)
		chunks := c.Split("a short piece of text")
		if len(chunks) != 1 || chunks[0] != "a short piece of text" {
			t.Errorf("Expected single chunk, got %v", chunks)
		}
	})

	t.Run("Empty and whitespace input yields nothing", func(t *testing.T) {
		c := New(100, 20)
		if chunks := c.Split("   \n\t "); chunks != nil {
			t.Errorf("Expected no chunks, got %v", chunks)
		}
	})

	t.Run("Long text overlaps between chunks", func(t *testing.T) {
		c := New(10, 4)
		chunks := c.Split(strings.Repeat("abcdef", 10))
		if len(chunks) < 2 {
			t.Fatalf("Expected multiple chunks, got %v", chunks)
		}
		for _, chunk := range chunks {
			if len([]rune(chunk)) > 10 {
				t.Errorf("Chunk exceeds size limit: %q", chunk)
			}
		}
		// Consecutive chunks share their boundary runes.
		first := []rune(chunks[0])
		second := []rune(chunks[1])
		if string(first[len(first)-4:]) != string(second[:4]) {
			t.Errorf("Expected 4-rune overlap between %q and %q", chunks[0], chunks[1])
		}
	})

	t.Run("Boundaries cut back to whitespace", func(t *testing.T) {
		c := New(20, 5)
		chunks := c.Split("alpha beta gamma delta epsilon zeta")
		if len(chunks) < 2 {
			t.Fatalf("Expected multiple chunks, got %v", chunks)
		}
		if chunks[0] != "alpha beta gamma" {
			t.Errorf("Expected the first chunk to end on a word, got %q", chunks[0])
		}
	})

	t.Run("Multi-byte text splits on rune boundaries", func(t *testing.T) {
		c := New(5, 2)
		chunks := c.Split(strings.Repeat("दूध ", 10))
		for _, chunk := range chunks {
			if !strings.ContainsRune(chunk, 'द') && !strings.ContainsRune(chunk, 'ू') {
				continue
			}
			for _, r := range chunk {
				if r == '�' {
					t.Errorf("Chunk contains a broken rune: %q", chunk)
				}
			}
		}
	})

	t.Run("Overlap larger than chunk size is clamped", func(t *testing.T) {
		c := New(10, 50)
		chunks := c.Split(strings.Repeat("x", 30))
		if len(chunks) == 0 {
			t.Fatal("Expected chunks")
		}
		// Clamping keeps the step positive so splitting terminates.
		if len(chunks) > 30 {
			t.Errorf("Suspiciously many chunks: %d", len(chunks))
		}
	})
}
