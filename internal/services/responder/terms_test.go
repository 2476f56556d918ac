package responder

import (
	"testing"
)

func TestExtractKeyTerms(t *testing.T) {
	contains := func(terms []string, want string) bool {
		for _, term := range terms {
			if term == want {
				return true
			}
		}
		return false
	}

	t.Run("Drops stop words and short tokens", func(t *testing.T) {
		terms := ExtractKeyTerms("How can I do it?")
		if len(terms) != 0 {
			t.Errorf("Expected no key terms, got %v", terms)
		}
	})

	t.Run("Keeps domain vocabulary", func(t *testing.T) {
		terms := ExtractKeyTerms("How do I test milk for adulteration?")
		for _, want := range []string{"milk", "test", "adulteration"} {
			if !contains(terms, want) {
				t.Errorf("Expected term %q in %v", want, terms)
			}
		}
		if contains(terms, "how") || contains(terms, "for") {
			t.Errorf("Stop words leaked into %v", terms)
		}
	})

	t.Run("Adds known bigrams", func(t *testing.T) {
		terms := ExtractKeyTerms("Tell me about food adulteration please")
		if !contains(terms, "food adulteration") {
			t.Errorf("Expected bigram 'food adulteration' in %v", terms)
		}
	})

	t.Run("Substring food terms are included", func(t *testing.T) {
		// "testing" contains "test"; both should surface.
		terms := ExtractKeyTerms("milk testing methods")
		if !contains(terms, "testing") || !contains(terms, "test") {
			t.Errorf("Expected 'testing' and 'test' in %v", terms)
		}
	})

	t.Run("Deduplicates", func(t *testing.T) {
		terms := ExtractKeyTerms("milk milk milk")
		count := 0
		for _, term := range terms {
			if term == "milk" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Expected 'milk' once, got %d occurrences in %v", count, terms)
		}
	})

	t.Run("Punctuation is stripped before tokenizing", func(t *testing.T) {
		terms := ExtractKeyTerms("Is my honey pure? (really!)")
		if !contains(terms, "honey") || !contains(terms, "pure") {
			t.Errorf("Expected 'honey' and 'pure' in %v", terms)
		}
	})

	t.Run("Empty question yields no terms", func(t *testing.T) {
		if terms := ExtractKeyTerms("   "); len(terms) != 0 {
			t.Errorf("Expected no terms for blank input, got %v", terms)
		}
	})
}
