package engine

import "strings"

// FAQEntry is a keyword-triggered canned response. Entries are checked in
// declared order and the first entry with any keyword hit wins; the answer
// is returned verbatim with no ranking.
type FAQEntry struct {
	Keywords []string
	Answer   string
}

// MatchFAQ returns the canned answer for the first entry whose keyword
// list contains a substring match against the lowercased utterance. A hit
// takes strict precedence over the conversational generator for the turn.
func MatchFAQ(message string, faqs []FAQEntry) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return "", false
	}

	for _, faq := range faqs {
		for _, kw := range faq.Keywords {
			if strings.Contains(lower, kw) {
				return faq.Answer, true
			}
		}
	}
	return "", false
}
