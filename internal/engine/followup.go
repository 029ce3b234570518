package engine

// SelectFollowUp walks the missing-field ladder and returns the templated
// question for the first field that is both missing and not yet asked,
// along with the field name so the caller can record it. When nothing on
// the ladder is askable and the score clears the CTA threshold, it returns
// the call-to-action instead (with an empty field name).
func SelectFollowUp(session *Session, cfg *Config) (question, field string, ok bool) {
	for _, f := range cfg.FollowUpLadder {
		if session.Has(f) || session.WasAsked(f) {
			continue
		}
		q, exists := cfg.FollowUpQuestions[f]
		if !exists {
			continue
		}
		return q, f, true
	}

	if session.InformationScore > cfg.CTAThreshold {
		return cfg.CallToAction, "", true
	}
	return "", "", false
}
