package responder

import (
	"regexp"
	"strings"
)

// stopWords are dropped during key-term extraction.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "is", "are", "was", "were",
		"be", "been", "being", "have", "has", "had", "do", "does", "did",
		"to", "from", "in", "out", "on", "off", "over", "under", "again",
		"further", "then", "once", "here", "there", "when", "where", "why",
		"how", "all", "any", "both", "each", "few", "more", "most", "other",
		"some", "such", "no", "nor", "not", "only", "own", "same", "so",
		"than", "too", "very", "s", "t", "can", "will", "just", "don", "should",
		"now", "i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves", "he", "him", "his",
		"himself", "she", "her", "hers", "herself", "it", "its", "itself",
		"they", "them", "their", "theirs", "themselves", "what", "which", "who",
		"whom", "this", "that", "these", "those", "am", "having", "doing",
		"would", "could", "ought", "i'm", "you're", "he's",
		"she's", "it's", "we're", "they're", "i've", "you've", "we've",
		"they've", "i'd", "you'd", "he'd", "she'd", "we'd", "they'd", "i'll",
		"you'll", "he'll", "she'll", "we'll", "they'll", "isn't", "aren't",
		"wasn't", "weren't", "hasn't", "haven't", "hadn't", "doesn't", "don't",
		"didn't", "won't", "wouldn't", "shan't", "shouldn't", "can't", "cannot",
		"couldn't", "mustn't", "let's", "that's", "who's", "what's", "here's",
		"there's", "when's", "where's", "why's", "how's", "for", "of", "about",
	} {
		stopWords[w] = struct{}{}
	}
}

// foodTerms is the fixed domain vocabulary. Any of these appearing as a
// substring of the normalized question is kept as a key term even when the
// tokenizer would have dropped it.
var foodTerms = []string{
	"milk", "ghee", "oil", "butter", "spice", "spices", "turmeric", "chili",
	"sugar", "honey", "rice", "wheat", "flour", "dal", "pulses", "tea", "coffee",
	"salt", "water", "juice", "vinegar", "curd", "yogurt", "cheese", "cream",
	"food", "adulteration", "adulterant", "test", "testing", "detect", "detection",
	"method", "procedure", "quality", "safety", "pure", "purity", "impure", "impurity",
}

// keyBigrams are two-word phrases kept as single terms when found contiguously.
var keyBigrams = map[string]struct{}{
	"food adulteration": {},
	"milk adulteration": {},
	"food safety":       {},
	"food quality":      {},
	"testing method":    {},
	"detection method":  {},
	"test procedure":    {},
	"quality check":     {},
}

var (
	punctRe      = regexp.MustCompile(`[.,?!;:()]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractKeyTerms normalizes the question and returns the deduplicated set of
// salient terms: non-stop-word tokens longer than 2 characters, domain
// vocabulary found as substrings, and known bigrams. The result is
// insertion-ordered but callers must not depend on order.
func ExtractKeyTerms(question string) []string {
	normalized := strings.TrimSpace(whitespaceRe.ReplaceAllString(punctRe.ReplaceAllString(strings.ToLower(question), ""), " "))
	if normalized == "" {
		return nil
	}

	words := strings.Split(normalized, " ")

	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}

	for _, word := range words {
		if _, stop := stopWords[word]; stop || len(word) <= 2 {
			continue
		}
		add(word)
	}

	for _, term := range foodTerms {
		if strings.Contains(normalized, term) {
			add(term)
		}
	}

	for i := 0; i < len(words)-1; i++ {
		bigram := words[i] + " " + words[i+1]
		if _, ok := keyBigrams[bigram]; ok {
			add(bigram)
		}
	}

	return terms
}
