package engine

import "strings"

// Intent names. IntentGeneralInquiry is the fallback when nothing scores.
const (
	IntentGreeting           = "greeting"
	IntentFinancingInquiry   = "financing_inquiry"
	IntentEquipmentNeed      = "equipment_need"
	IntentBusinessInfo       = "business_info"
	IntentApplicationIntent  = "application_intent"
	IntentContactSharing     = "contact_sharing"
	IntentObjection          = "objection"
	IntentProductInquiry     = "product_inquiry"
	IntentPricingInquiry     = "pricing_inquiry"
	IntentTimelineInquiry    = "timeline_inquiry"
	IntentContactRequest     = "contact_request"
	IntentCheckQualification = "check_qualification"
	IntentGeneralInquiry     = "general_inquiry"
)

// WeightedKeyword contributes its weight when it appears as a substring of
// the lowercased utterance.
type WeightedKeyword struct {
	Word   string
	Weight float64
}

// IntentRule pairs an intent name with its weighted keyword set. Rules are
// evaluated in declared order; ties go to the earliest declaration.
type IntentRule struct {
	Name     string
	Keywords []WeightedKeyword
}

// IntentResult is the classifier output.
type IntentResult struct {
	Intent string
	Score  float64
}

// ClassifyIntent scores the utterance against every rule and returns the
// highest scorer. All-zero scores fall back to general_inquiry.
func ClassifyIntent(message string, rules []IntentRule) IntentResult {
	lower := strings.ToLower(message)

	best := IntentResult{Intent: IntentGeneralInquiry}
	for _, rule := range rules {
		var score float64
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw.Word) {
				score += kw.Weight
			}
		}
		if score > best.Score {
			best = IntentResult{Intent: rule.Name, Score: score}
		}
	}
	return best
}
