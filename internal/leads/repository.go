package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	// GetBySessionID returns the most recent lead for a session, or
	// ErrLeadNotFound when the session has not produced one.
	GetBySessionID(ctx context.Context, sessionID string) (*Lead, error)
	List(ctx context.Context, limit int) ([]*Lead, error)
}

// InMemoryRepository is a Repository backed by an in-memory map, used in
// development and tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
	order []string
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Create creates a new lead in memory
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := leadFromRequest(req)
	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.order = append(r.order, lead.ID)
	r.mu.Unlock()

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

// GetBySessionID retrieves the newest lead emitted for a session.
func (r *InMemoryRepository) GetBySessionID(ctx context.Context, sessionID string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.order) - 1; i >= 0; i-- {
		if lead := r.leads[r.order[i]]; lead != nil && lead.SessionID == sessionID {
			return lead, nil
		}
	}
	return nil, ErrLeadNotFound
}

// List returns leads in reverse creation order, up to limit (0 = all).
func (r *InMemoryRepository) List(ctx context.Context, limit int) ([]*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Lead, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.leads[r.order[i]])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func leadFromRequest(req *CreateLeadRequest) *Lead {
	return &Lead{
		SessionID:          req.SessionID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		BusinessName:       req.BusinessName,
		BusinessType:       req.BusinessType,
		Revenue:            req.Revenue,
		Employees:          req.Employees,
		TimeInBusiness:     req.TimeInBusiness,
		LoanAmount:         req.LoanAmount,
		LoanPurpose:        req.LoanPurpose,
		CreditScore:        req.CreditScore,
		Priority:           req.Priority,
		InterestLevel:      req.InterestLevel,
		QualificationScore: req.QualificationScore,
		Source:             req.Source,
	}
}
