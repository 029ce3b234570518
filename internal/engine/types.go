package engine

import "time"

// ChatRole identifies who produced a transcript turn.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single transcript turn.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ContactInfo holds who the prospect is. Empty string means not captured.
type ContactInfo struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	BusinessName string `json:"business_name,omitempty"`
}

// BusinessInfo holds what the prospect's business looks like.
type BusinessInfo struct {
	Type           string `json:"type,omitempty"`
	Revenue        string `json:"revenue,omitempty"`
	Employees      string `json:"employees,omitempty"`
	TimeInBusiness string `json:"time_in_business,omitempty"`
}

// FinancingNeeds holds what the prospect is asking for.
type FinancingNeeds struct {
	Amount      string `json:"amount,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	CreditScore string `json:"credit_score,omitempty"`
}

// Session is the per-conversation accumulated state, keyed by an opaque
// session identifier. The store renews its TTL on every write.
type Session struct {
	ID        string         `json:"id"`
	Contact   ContactInfo    `json:"contact_info"`
	Business  BusinessInfo   `json:"business_info"`
	Financing FinancingNeeds `json:"financing_needs"`

	// InformationScore is recomputed fresh from field population every
	// turn, never incrementally accumulated.
	InformationScore float64 `json:"information_score"`

	Conversation []ChatMessage `json:"conversation_data"`

	// QuestionsAsked records which fields the assistant already prompted
	// for, so follow-ups do not repeat themselves.
	QuestionsAsked []string `json:"questions_asked,omitempty"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewSession creates an empty session for the given identifier.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          id,
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// Field names used across the scorer, follow-up ladder and learning map.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldBusinessName   = "businessName"
	FieldBusinessType   = "businessType"
	FieldRevenue        = "revenue"
	FieldEmployees      = "employees"
	FieldTimeInBusiness = "timeInBusiness"
	FieldLoanAmount     = "loanAmount"
	FieldLoanPurpose    = "loanPurpose"
	FieldCreditScore    = "creditScore"
)

// Field returns the session's value for a named field, or "" when the
// field is not captured (or unknown).
func (s *Session) Field(name string) string {
	switch name {
	case FieldName:
		return s.Contact.Name
	case FieldEmail:
		return s.Contact.Email
	case FieldPhone:
		return s.Contact.Phone
	case FieldBusinessName:
		return s.Contact.BusinessName
	case FieldBusinessType:
		return s.Business.Type
	case FieldRevenue:
		return s.Business.Revenue
	case FieldEmployees:
		return s.Business.Employees
	case FieldTimeInBusiness:
		return s.Business.TimeInBusiness
	case FieldLoanAmount:
		return s.Financing.Amount
	case FieldLoanPurpose:
		return s.Financing.Purpose
	case FieldCreditScore:
		return s.Financing.CreditScore
	}
	return ""
}

// Has reports whether a named field is populated.
func (s *Session) Has(name string) bool {
	return s.Field(name) != ""
}

// WasAsked reports whether the assistant already prompted for a field.
func (s *Session) WasAsked(field string) bool {
	for _, f := range s.QuestionsAsked {
		if f == field {
			return true
		}
	}
	return false
}

// MarkAsked records that a field was prompted for.
func (s *Session) MarkAsked(field string) {
	if !s.WasAsked(field) {
		s.QuestionsAsked = append(s.QuestionsAsked, field)
	}
}

// AppendTurn adds a transcript entry.
func (s *Session) AppendTurn(role ChatRole, content string) {
	s.Conversation = append(s.Conversation, ChatMessage{Role: role, Content: content})
}

// UserTurns returns the user half of the transcript.
func (s *Session) UserTurns() []string {
	var out []string
	for _, m := range s.Conversation {
		if m.Role == ChatRoleUser {
			out = append(out, m.Content)
		}
	}
	return out
}

// ExtractedEntities is the transient per-turn extractor output. Each field
// is independently optional; absent fields stay empty.
type ExtractedEntities struct {
	Name           string
	Email          string
	Phone          string
	BusinessName   string
	BusinessType   string
	Revenue        string
	Employees      string
	TimeInBusiness string
	LoanAmount     string
	LoanPurpose    string
	CreditScore    string
}

// Any reports whether at least one field was extracted.
func (e ExtractedEntities) Any() bool {
	for _, present := range e.Presence() {
		if present {
			return true
		}
	}
	return false
}

// Presence maps field names to whether the extractor produced a value.
func (e ExtractedEntities) Presence() map[string]bool {
	return map[string]bool{
		FieldName:           e.Name != "",
		FieldEmail:          e.Email != "",
		FieldPhone:          e.Phone != "",
		FieldBusinessName:   e.BusinessName != "",
		FieldBusinessType:   e.BusinessType != "",
		FieldRevenue:        e.Revenue != "",
		FieldEmployees:      e.Employees != "",
		FieldTimeInBusiness: e.TimeInBusiness != "",
		FieldLoanAmount:     e.LoanAmount != "",
		FieldLoanPurpose:    e.LoanPurpose != "",
		FieldCreditScore:    e.CreditScore != "",
	}
}
