package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendora/loanflow/internal/leads"
)

// LeadEligible reports whether the session clears the qualification bar:
// enough captured information, a way to reach the prospect, and at least
// one business or financing signal.
func LeadEligible(session *Session, cfg *Config) bool {
	if session.InformationScore < cfg.LeadScoreThreshold {
		return false
	}
	if session.Contact.Email == "" && session.Contact.Phone == "" {
		return false
	}
	if session.Business.Type == "" && session.Business.Revenue == "" && session.Financing.Amount == "" {
		return false
	}
	return true
}

// EvaluateLead runs the eligibility predicate and, when it holds, builds an
// immutable Lead snapshot of the session. It is evaluated every turn; once
// the predicate holds a lead is emitted that same turn. Deduplication of
// repeated emissions belongs to the caller.
func EvaluateLead(session *Session, cfg *Config, source string) *leads.Lead {
	if !LeadEligible(session, cfg) {
		return nil
	}

	return &leads.Lead{
		ID:                 uuid.New().String(),
		SessionID:          session.ID,
		Name:               session.Contact.Name,
		Email:              session.Contact.Email,
		Phone:              session.Contact.Phone,
		BusinessName:       session.Contact.BusinessName,
		BusinessType:       session.Business.Type,
		Revenue:            session.Business.Revenue,
		Employees:          session.Business.Employees,
		TimeInBusiness:     session.Business.TimeInBusiness,
		LoanAmount:         session.Financing.Amount,
		LoanPurpose:        session.Financing.Purpose,
		CreditScore:        session.Financing.CreditScore,
		Priority:           leadPriority(session, cfg),
		InterestLevel:      interestLevel(session, cfg),
		QualificationScore: session.InformationScore,
		Source:             source,
		CreatedAt:          time.Now().UTC(),
	}
}

// leadPriority ranks follow-up urgency from the score plus which financial
// signals are present.
func leadPriority(session *Session, cfg *Config) leads.Priority {
	score := session.InformationScore
	hasRevenue := session.Business.Revenue != ""
	hasAmount := session.Financing.Amount != ""
	hasTenure := session.Business.TimeInBusiness != ""

	if score >= cfg.PriorityHighScore && hasRevenue && hasAmount && hasTenure {
		return leads.PriorityHigh
	}
	if score >= cfg.PriorityMediumScore && (hasRevenue || hasAmount) {
		return leads.PriorityMedium
	}
	return leads.PriorityLow
}

// interestLevel scans the user turns of the transcript against the three
// keyword tiers, high first. Hedging language or no match at all lands on
// low.
func interestLevel(session *Session, cfg *Config) leads.InterestLevel {
	var transcript strings.Builder
	for _, turn := range session.UserTurns() {
		transcript.WriteString(strings.ToLower(turn))
		transcript.WriteString(" ")
	}
	text := transcript.String()

	for _, kw := range cfg.HighInterestKeywords {
		if strings.Contains(text, kw) {
			return leads.InterestHigh
		}
	}
	for _, kw := range cfg.MediumInterestKeywords {
		if strings.Contains(text, kw) {
			return leads.InterestMedium
		}
	}
	return leads.InterestLow
}
