package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lendora/loanflow/internal/engine"
	"github.com/lendora/loanflow/internal/leads"
	"github.com/lendora/loanflow/pkg/logging"
)

const maxMessageBytes = 4096

// ChatHandler exposes the qualification engine over HTTP.
type ChatHandler struct {
	engine *engine.Engine
	repo   leads.Repository
	logger *logging.Logger
}

// NewChatHandler creates a chat handler. The repository is optional; when
// nil, qualified leads are returned to the caller but not persisted.
func NewChatHandler(eng *engine.Engine, repo leads.Repository, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{
		engine: eng,
		repo:   repo,
		logger: logger,
	}
}

// ChatRequest is the widget's message payload.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse carries the reply plus the session snapshot the widget needs
// to continue the conversation.
type ChatResponse struct {
	Response  string      `json:"response"`
	SessionID string      `json:"session_id"`
	Score     float64     `json:"qualification_score"`
	Qualified bool        `json:"qualified"`
	Lead      *leads.Lead `json:"lead,omitempty"`
}

// HandleChat handles POST /api/chat requests.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMessageBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	result, err := h.engine.Process(r.Context(), req.SessionID, req.Message)
	if err != nil {
		h.logger.Error("chat turn failed", "error", err, "session_id", req.SessionID)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	lead := result.Lead
	if lead != nil && h.repo != nil {
		if persisted := h.persistLead(r.Context(), lead); persisted != nil {
			lead = persisted
		}
	}

	resp := ChatResponse{
		Response:  result.ResponseText,
		SessionID: result.Session.ID,
		Score:     result.Session.InformationScore,
		Qualified: lead != nil,
		Lead:      lead,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// persistLead writes a qualified lead through the repository, skipping the
// write when the session already produced one at the same or higher score.
// Failures are logged; the chat reply still goes out with the in-memory
// lead.
func (h *ChatHandler) persistLead(ctx context.Context, lead *leads.Lead) *leads.Lead {
	existing, err := h.repo.GetBySessionID(ctx, lead.SessionID)
	switch {
	case errors.Is(err, leads.ErrLeadNotFound):
		// First lead for this session.
	case err != nil:
		h.logger.Error("lead lookup failed", "error", err, "session_id", lead.SessionID)
		return nil
	case existing.QualificationScore >= lead.QualificationScore:
		return existing
	}

	created, err := h.repo.Create(ctx, &leads.CreateLeadRequest{
		SessionID:          lead.SessionID,
		Name:               lead.Name,
		Email:              lead.Email,
		Phone:              lead.Phone,
		BusinessName:       lead.BusinessName,
		BusinessType:       lead.BusinessType,
		Revenue:            lead.Revenue,
		Employees:          lead.Employees,
		TimeInBusiness:     lead.TimeInBusiness,
		LoanAmount:         lead.LoanAmount,
		LoanPurpose:        lead.LoanPurpose,
		CreditScore:        lead.CreditScore,
		Priority:           lead.Priority,
		InterestLevel:      lead.InterestLevel,
		QualificationScore: lead.QualificationScore,
		Source:             lead.Source,
	})
	if err != nil {
		h.logger.Error("lead persist failed", "error", err, "session_id", lead.SessionID)
		return nil
	}
	return created
}
