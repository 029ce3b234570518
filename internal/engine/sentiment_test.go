package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentiment(t *testing.T) {
	pos := defaultPositiveWords()
	neg := defaultNegativeWords()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"positive words", "great, thanks for the help", SentimentPositive},
		{"negative words", "this feels like a scam, terrible", SentimentNegative},
		{"no hits", "I run a bakery downtown", SentimentNeutral},
		{"tie is neutral", "good service but a bad experience", SentimentNeutral},
		{"empty is neutral", "", SentimentNeutral},
		{"case insensitive", "AWESOME, THANK YOU", SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeSentiment(tt.message, pos, neg))
		})
	}
}

func TestAnalyzeSentiment_CountsListHitsNotOccurrences(t *testing.T) {
	// "bad" appearing twice is still one list hit; two positive hits win.
	got := AnalyzeSentiment("bad start, bad end, but great and helpful overall",
		defaultPositiveWords(), defaultNegativeWords())
	assert.Equal(t, SentimentPositive, got)
}
