package engine

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lendora/loanflow/internal/leads"
	"github.com/lendora/loanflow/internal/learning"
	"github.com/lendora/loanflow/internal/observability/metrics"
	"github.com/lendora/loanflow/pkg/logging"
)

// SessionStore is the session persistence the engine consumes. Get returns
// (nil, nil) for an unknown session; Put renews the store-managed TTL.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Put(ctx context.Context, session *Session) error
}

// LearningSink receives per-turn learning records. Implementations must
// never block the caller.
type LearningSink interface {
	Record(rec learning.Record)
}

// Result is the outcome of one processed turn.
type Result struct {
	ResponseText string      `json:"response_text"`
	Session      *Session    `json:"session"`
	Lead         *leads.Lead `json:"lead,omitempty"`
	Intent       string      `json:"intent"`
	Sentiment    string      `json:"sentiment"`
}

// Deps wires the engine's collaborators. Sessions is required; everything
// else degrades gracefully when nil.
type Deps struct {
	Config   *Config
	Sessions SessionStore
	Learning LearningSink
	Logger   *logging.Logger
	Metrics  *metrics.EngineMetrics

	// Seed makes response selection deterministic when non-zero.
	Seed int64

	// Source tags emitted leads ("chat_widget" by default).
	Source string
}

// Engine is the conversational lead-qualification pipeline. One Process
// call takes a free-text utterance plus prior session state and produces a
// reply, an updated session, and conditionally a qualified lead.
type Engine struct {
	cfg      Config
	sessions SessionStore
	learning LearningSink
	logger   *logging.Logger
	events   *EventLogger
	metrics  *metrics.EngineMetrics
	locker   *Locker
	source   string

	randMu sync.Mutex
	rand   *rand.Rand
}

// New creates an engine from its dependencies.
func New(deps Deps) *Engine {
	if deps.Sessions == nil {
		panic("engine: session store required")
	}

	cfg := DefaultConfig()
	if deps.Config != nil {
		cfg = *deps.Config
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}

	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	source := deps.Source
	if source == "" {
		source = "chat_widget"
	}

	return &Engine{
		cfg:      cfg,
		sessions: deps.Sessions,
		learning: deps.Learning,
		logger:   logger,
		events:   NewEventLogger(logger),
		metrics:  deps.Metrics,
		locker:   NewLocker(),
		source:   source,
		rand:     rand.New(rand.NewSource(seed)),
	}
}

// Process runs one conversation turn. Turns for the same session are
// serialized; distinct sessions proceed in parallel. Process never fails a
// turn for store trouble: an unreachable session store degrades to an
// empty session, and learning writes are fire-and-forget.
func (e *Engine) Process(ctx context.Context, sessionID, message string) (*Result, error) {
	start := time.Now()

	if strings.TrimSpace(sessionID) == "" {
		sessionID = uuid.NewString()
	}

	unlock := e.locker.Lock(sessionID)
	defer unlock()

	sess := e.loadSession(ctx, sessionID)

	e.events.TurnReceived(ctx, sessionID, message)

	// Extraction, classification and sentiment run independently of each
	// other; the extractor consults the session only for its guards.
	entities := ExtractEntities(message, sess)
	intentRes := ClassifyIntent(message, e.cfg.Intents)
	sentiment := AnalyzeSentiment(message, e.cfg.PositiveWords, e.cfg.NegativeWords)
	faqAnswer, faqHit := MatchFAQ(message, e.cfg.FAQs)

	e.events.IntentClassified(ctx, sessionID, intentRes.Intent, intentRes.Score, sentiment)
	if fields := extractedFields(entities); len(fields) > 0 {
		e.events.EntitiesExtracted(ctx, sessionID, fields)
	}

	sess.AppendTurn(ChatRoleUser, message)
	MergeEntities(sess, entities, e.cfg.ScoreWeights)

	// FAQ hits take strict precedence over the conversational generator.
	var response string
	if faqHit {
		response = faqAnswer
		e.events.FAQMatched(ctx, sessionID)
		e.metrics.ObserveFAQHit()
	} else {
		response = e.conversationalResponse(intentRes.Intent)
	}

	if !strings.HasSuffix(strings.TrimSpace(response), "?") {
		if question, field, ok := SelectFollowUp(sess, &e.cfg); ok {
			response = response + " " + question
			if field != "" {
				sess.MarkAsked(field)
				e.events.FollowUpSelected(ctx, sessionID, field)
			}
		}
	}

	sess.AppendTurn(ChatRoleAssistant, response)
	sess.LastUpdated = time.Now().UTC()

	lead := EvaluateLead(sess, &e.cfg, e.source)
	if lead != nil {
		e.events.LeadQualified(ctx, sessionID, lead.ID, lead.QualificationScore,
			string(lead.Priority), string(lead.InterestLevel))
		e.metrics.ObserveLead(string(lead.Priority))
	}

	if err := e.sessions.Put(ctx, sess); err != nil {
		e.logger.Warn("session save failed", "error", err, "session_id", sessionID)
		e.events.StoreDegraded(ctx, sessionID, "put", err)
	}

	if e.learning != nil {
		e.learning.Record(learning.Record{
			SessionID: sessionID,
			Input:     strings.ToLower(message),
			Response:  response,
			Extracted: entities.Presence(),
			Intent:    intentRes.Intent,
			Sentiment: sentiment,
		})
	}

	e.metrics.ObserveTurn(intentRes.Intent, sentiment, time.Since(start).Seconds())

	return &Result{
		ResponseText: response,
		Session:      sess,
		Lead:         lead,
		Intent:       intentRes.Intent,
		Sentiment:    sentiment,
	}, nil
}

// loadSession fetches prior state, degrading to a fresh session when the
// store is unreachable so the turn still completes.
func (e *Engine) loadSession(ctx context.Context, sessionID string) *Session {
	sess, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		e.logger.Warn("session load failed, using empty session", "error", err, "session_id", sessionID)
		e.events.StoreDegraded(ctx, sessionID, "get", err)
		return NewSession(sessionID)
	}
	if sess == nil {
		return NewSession(sessionID)
	}
	return sess
}

// conversationalResponse picks a template for the intent using the seeded
// randomness source, falling back to the general pool.
func (e *Engine) conversationalResponse(intent string) string {
	pool := e.cfg.Responses[intent]
	if len(pool) == 0 {
		pool = e.cfg.Responses[IntentGeneralInquiry]
	}
	if len(pool) == 0 {
		return "How can I help you with your business financing today?"
	}
	if len(pool) == 1 {
		return pool[0]
	}

	e.randMu.Lock()
	idx := e.rand.Intn(len(pool))
	e.randMu.Unlock()
	return pool[idx]
}

func extractedFields(entities ExtractedEntities) []string {
	var fields []string
	for field, present := range entities.Presence() {
		if present {
			fields = append(fields, field)
		}
	}
	return fields
}
