package engine

// MergeEntities folds extracted fields into the session with last-write-wins
// semantics: every non-empty extracted value overwrites the session value.
// The name and business-name guards live in the extractor, not here; the
// merge rule itself is uniform. The information score is recomputed after
// the merge.
func MergeEntities(session *Session, entities ExtractedEntities, weights map[string]float64) {
	if entities.Name != "" {
		session.Contact.Name = entities.Name
	}
	if entities.Email != "" {
		session.Contact.Email = entities.Email
	}
	if entities.Phone != "" {
		session.Contact.Phone = entities.Phone
	}
	if entities.BusinessName != "" {
		session.Contact.BusinessName = entities.BusinessName
	}
	if entities.BusinessType != "" {
		session.Business.Type = entities.BusinessType
	}
	if entities.Revenue != "" {
		session.Business.Revenue = entities.Revenue
	}
	if entities.Employees != "" {
		session.Business.Employees = entities.Employees
	}
	if entities.TimeInBusiness != "" {
		session.Business.TimeInBusiness = entities.TimeInBusiness
	}
	if entities.LoanAmount != "" {
		session.Financing.Amount = entities.LoanAmount
	}
	if entities.LoanPurpose != "" {
		session.Financing.Purpose = entities.LoanPurpose
	}
	if entities.CreditScore != "" {
		session.Financing.CreditScore = entities.CreditScore
	}

	session.InformationScore = ScoreSession(session, weights)
}

// ScoreSession computes the qualification score as a weighted sum over
// populated fields. It is a pure function of the session's field-population
// set; replaying the same values cannot double-count.
func ScoreSession(session *Session, weights map[string]float64) float64 {
	var score float64
	for field, weight := range weights {
		if session.Has(field) {
			score += weight
		}
	}
	return score
}
