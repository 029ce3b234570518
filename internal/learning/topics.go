package learning

import (
	"sort"
	"strings"
)

// topicKeywords maps utterance keywords to analytics topics. A turn can
// map to zero or many topics.
var topicKeywords = map[string]string{
	"rate":            "pricing",
	"interest":        "pricing",
	"apr":             "pricing",
	"fee":             "pricing",
	"equipment":       "equipment_financing",
	"machinery":       "equipment_financing",
	"line of credit":  "credit_line",
	"credit line":     "credit_line",
	"credit score":    "credit",
	"fico":            "credit",
	"apply":           "application",
	"application":     "application",
	"qualify":         "qualification",
	"eligible":        "qualification",
	"document":        "requirements",
	"requirements":    "requirements",
	"collateral":      "requirements",
	"working capital": "working_capital",
	"payroll":         "working_capital",
	"invoice":         "invoice_factoring",
	"expansion":       "growth",
	"inventory":       "inventory",
	"sba":             "sba",
}

// TopicsFor returns the distinct topics triggered by an utterance, in a
// deterministic order.
func TopicsFor(input string) []string {
	lower := strings.ToLower(input)

	seen := make(map[string]bool)
	var topics []string
	for keyword, topic := range topicKeywords {
		if seen[topic] {
			continue
		}
		if strings.Contains(lower, keyword) {
			seen[topic] = true
			topics = append(topics, topic)
		}
	}
	// Map iteration order is random; keep output stable for counter keys.
	sort.Strings(topics)
	return topics
}
