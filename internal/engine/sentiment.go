package engine

import "strings"

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// AnalyzeSentiment counts substring hits against the positive and negative
// word lists. Strictly more positive hits means positive, strictly more
// negative means negative; everything else, ties included, is neutral.
func AnalyzeSentiment(message string, positive, negative []string) string {
	lower := strings.ToLower(message)

	var pos, neg int
	for _, w := range positive {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negative {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return SentimentPositive
	case neg > pos:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
