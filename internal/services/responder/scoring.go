package responder

import (
	"sort"
	"strings"
)

// domainTerms earn a small relevance bonus wherever they appear.
var domainTerms = []string{"adulter", "test", "detect", "method", "procedure", "quality", "safety", "milk", "food"}

// excerptTerms drive the sentence-scan fallback when no paragraph scores.
var excerptTerms = []string{"adulter", "test", "detect", "method", "procedure", "quality", "safety"}

const minParagraphLength = 20

type scoredParagraph struct {
	text  string
	score float64
}

// SplitParagraphs breaks document text on blank lines and drops fragments too
// short to carry a testing method.
func SplitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range strings.Split(content, "\n\n") {
		if len(strings.TrimSpace(p)) > minParagraphLength {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// ScoreParagraph rates a paragraph against the question's key terms. Each term
// match is worth 2 points, with 1 bonus point when the term appears in the
// first sentence, plus half a point for every domain term present.
func ScoreParagraph(paragraph string, keyTerms []string) float64 {
	lower := strings.ToLower(paragraph)
	firstSentence := lower
	if idx := strings.Index(lower, "."); idx >= 0 {
		firstSentence = lower[:idx]
	}

	var score float64
	for _, term := range keyTerms {
		if strings.Contains(lower, term) {
			score += 2
			if strings.Contains(firstSentence, term) {
				score++
			}
		}
	}
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			score += 0.5
		}
	}
	return score
}

// TopParagraphs returns the highest-scoring paragraphs with positive scores,
// at most limit of them, in descending score order. Ties keep their original
// document order.
func TopParagraphs(paragraphs []string, keyTerms []string, limit int) []string {
	scored := make([]scoredParagraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		if s := ScoreParagraph(p, keyTerms); s > 0 {
			scored = append(scored, scoredParagraph{text: p, score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	top := make([]string, len(scored))
	for i, sp := range scored {
		top[i] = sp.text
	}
	return top
}
