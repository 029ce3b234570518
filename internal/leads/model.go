package leads

import (
	"strings"
	"time"
)

// Priority ranks how quickly a loan specialist should follow up on a lead.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// InterestLevel reflects how eager the prospect sounded in the transcript.
type InterestLevel string

const (
	InterestHigh   InterestLevel = "high"
	InterestMedium InterestLevel = "medium"
	InterestLow    InterestLevel = "low"
)

// Lead is a qualified-prospect snapshot emitted by the qualification engine.
// It is immutable once created; status changes live outside this core.
type Lead struct {
	ID             string        `json:"id"`
	SessionID      string        `json:"session_id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	BusinessName   string        `json:"business_name"`
	BusinessType   string        `json:"business_type"`
	Revenue        string        `json:"revenue"`
	Employees      string        `json:"employees"`
	TimeInBusiness string        `json:"time_in_business"`
	LoanAmount     string        `json:"loan_amount"`
	LoanPurpose    string        `json:"loan_purpose"`
	CreditScore    string        `json:"credit_score"`
	Priority       Priority      `json:"priority"`
	InterestLevel  InterestLevel `json:"interest_level"`
	// QualificationScore is a copy of the session's information score at
	// creation time.
	QualificationScore float64   `json:"qualification_score"`
	Source             string    `json:"source"`
	CreatedAt          time.Time `json:"created_at"`
}

// CreateLeadRequest carries the session snapshot used to persist a lead.
type CreateLeadRequest struct {
	SessionID          string        `json:"session_id"`
	Name               string        `json:"name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	BusinessName       string        `json:"business_name"`
	BusinessType       string        `json:"business_type"`
	Revenue            string        `json:"revenue"`
	Employees          string        `json:"employees"`
	TimeInBusiness     string        `json:"time_in_business"`
	LoanAmount         string        `json:"loan_amount"`
	LoanPurpose        string        `json:"loan_purpose"`
	CreditScore        string        `json:"credit_score"`
	Priority           Priority      `json:"priority"`
	InterestLevel      InterestLevel `json:"interest_level"`
	QualificationScore float64       `json:"qualification_score"`
	Source             string        `json:"source"`
}

// Validate validates the create lead request
func (r *CreateLeadRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return ErrMissingSession
	}
	if r.Email == "" && r.Phone == "" {
		return ErrMissingContact
	}
	return nil
}
