package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lendora/loanflow/pkg/logging"
)

// TurnEvent represents a structured event in the qualification flow.
// All events share the same base fields for easy filtering/grep.
type TurnEvent struct {
	Time      string         `json:"time"`
	Event     string         `json:"event"`
	SessionID string         `json:"session_id"`
	LeadID    string         `json:"lead_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// EventLogger emits structured JSON events at each decision point in the
// engine flow. Designed for fast grep/filter debugging:
//
//	grep '"event":"lead_qualified"' /var/log/app.log
//	grep '"session_id":"sess_abc"' /var/log/app.log
type EventLogger struct {
	logger *logging.Logger
}

// NewEventLogger creates a new engine event logger.
func NewEventLogger(logger *logging.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Log emits a structured turn event.
func (e *EventLogger) Log(_ context.Context, event, sessionID, leadID string, data map[string]any) {
	if e == nil || e.logger == nil {
		return
	}
	evt := TurnEvent{
		Time:      time.Now().UTC().Format(time.RFC3339Nano),
		Event:     event,
		SessionID: sessionID,
		LeadID:    leadID,
		Data:      data,
	}
	b, _ := json.Marshal(evt)
	e.logger.Info(string(b))
}

// Convenience methods for common events:

func (e *EventLogger) TurnReceived(ctx context.Context, sessionID, message string) {
	// Truncate message for logging
	msg := message
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	e.Log(ctx, "turn_received", sessionID, "", map[string]any{
		"message": msg,
	})
}

func (e *EventLogger) EntitiesExtracted(ctx context.Context, sessionID string, fields []string) {
	e.Log(ctx, "entities_extracted", sessionID, "", map[string]any{
		"fields": fields,
	})
}

func (e *EventLogger) IntentClassified(ctx context.Context, sessionID, intent string, score float64, sentiment string) {
	e.Log(ctx, "intent_classified", sessionID, "", map[string]any{
		"intent":    intent,
		"score":     score,
		"sentiment": sentiment,
	})
}

func (e *EventLogger) FAQMatched(ctx context.Context, sessionID string) {
	e.Log(ctx, "faq_matched", sessionID, "", nil)
}

func (e *EventLogger) FollowUpSelected(ctx context.Context, sessionID, field string) {
	e.Log(ctx, "follow_up_selected", sessionID, "", map[string]any{
		"field": field,
	})
}

func (e *EventLogger) LeadQualified(ctx context.Context, sessionID, leadID string, score float64, priority, interest string) {
	e.Log(ctx, "lead_qualified", sessionID, leadID, map[string]any{
		"score":    score,
		"priority": priority,
		"interest": interest,
	})
}

func (e *EventLogger) StoreDegraded(ctx context.Context, sessionID, op string, err error) {
	e.Log(ctx, "session_store_degraded", sessionID, "", map[string]any{
		"op":    op,
		"error": err.Error(),
	})
}
