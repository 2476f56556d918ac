package responder

import "strings"

func containsAll(s string, terms ...string) bool {
	for _, term := range terms {
		if !strings.Contains(s, term) {
			return false
		}
	}
	return true
}

func anyParagraphContains(paragraphs []string, terms ...string) bool {
	for _, p := range paragraphs {
		lower := strings.ToLower(p)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
	}
	return false
}

// ClassifyTopic maps a question, together with its highest-scoring corpus
// paragraphs, to a curated answer topic. The cascade is ordered: specific milk
// adulterants are checked before the general milk topic, and specific food
// categories before the generic fallbacks. Topics that inspect paragraphs are
// only reachable when relevant paragraphs were found, so TopicGenericFood and
// TopicUnrelated imply an empty or irrelevant corpus match.
func ClassifyTopic(question string, topParagraphs []string) Topic {
	q := strings.ToLower(question)

	if len(topParagraphs) > 0 {
		switch {
		case strings.Contains(q, "synthetic milk") || containsAll(q, "synthetic", "milk"):
			return TopicSyntheticMilk
		case strings.Contains(q, "water in milk") || containsAll(q, "water", "milk"):
			return TopicWaterInMilk
		case strings.Contains(q, "detergent in milk") || containsAll(q, "detergent", "milk"):
			return TopicDetergentInMilk
		case strings.Contains(q, "starch in milk") || containsAll(q, "starch", "milk"):
			return TopicStarchInMilk
		case strings.Contains(q, "urea in milk") || containsAll(q, "urea", "milk"):
			return TopicUreaInMilk
		case strings.Contains(q, "milk") || anyParagraphContains(topParagraphs, "milk"):
			return TopicMilk
		case strings.Contains(q, "cereal") || anyParagraphContains(topParagraphs, "cereal", "wheat", "flour"):
			return TopicCereal
		case strings.Contains(q, "spice") || strings.Contains(q, "turmeric") ||
			strings.Contains(q, "chili") || strings.Contains(q, "pepper") ||
			anyParagraphContains(topParagraphs, "spice", "turmeric", "chili", "pepper"):
			return TopicSpice
		case strings.Contains(q, "oil") || strings.Contains(q, "ghee") || strings.Contains(q, "butter") ||
			anyParagraphContains(topParagraphs, "oil", "ghee", "butter"):
			return TopicOil
		case strings.Contains(q, "honey") || anyParagraphContains(topParagraphs, "honey"):
			return TopicHoney
		}
	}

	if strings.Contains(q, "food") || strings.Contains(q, "adulteration") {
		return TopicGenericFood
	}
	return TopicUnrelated
}
