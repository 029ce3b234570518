package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgxpool.Pool used by the repository, so tests
// can substitute pgxmock.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	pool querier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// NewPostgresRepositoryWithQuerier wires an arbitrary querier (tests).
func NewPostgresRepositoryWithQuerier(q querier) *PostgresRepository {
	return &PostgresRepository{pool: q}
}

const leadColumns = `id, session_id, name, email, phone, business_name, business_type,
	revenue, employees, time_in_business, loan_amount, loan_purpose, credit_score,
	priority, interest_level, qualification_score, source, created_at`

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	query := `
		INSERT INTO leads (id, session_id, name, email, phone, business_name, business_type,
			revenue, employees, time_in_business, loan_amount, loan_purpose, credit_score,
			priority, interest_level, qualification_score, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		id,
		req.SessionID,
		req.Name,
		req.Email,
		req.Phone,
		req.BusinessName,
		req.BusinessType,
		req.Revenue,
		req.Employees,
		req.TimeInBusiness,
		req.LoanAmount,
		req.LoanPurpose,
		req.CreditScore,
		req.Priority,
		req.InterestLevel,
		req.QualificationScore,
		req.Source,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	lead := leadFromRequest(req)
	lead.ID = id.String()
	lead.CreatedAt = createdAt
	return lead, nil
}

// GetByID fetches a lead by its identifier.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return r.scanLead(r.pool.QueryRow(ctx, query, id))
}

// GetBySessionID fetches the newest lead emitted for a session.
func (r *PostgresRepository) GetBySessionID(ctx context.Context, sessionID string) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	return r.scanLead(r.pool.QueryRow(ctx, query, sessionID))
}

// List returns leads newest-first, up to limit (0 = 100).
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*Lead, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()

	var out []*Lead
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: list rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) scanLead(row pgx.Row) (*Lead, error) {
	var lead Lead
	err := row.Scan(
		&lead.ID,
		&lead.SessionID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.BusinessName,
		&lead.BusinessType,
		&lead.Revenue,
		&lead.Employees,
		&lead.TimeInBusiness,
		&lead.LoanAmount,
		&lead.LoanPurpose,
		&lead.CreditScore,
		&lead.Priority,
		&lead.InterestLevel,
		&lead.QualificationScore,
		&lead.Source,
		&lead.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leads: scan failed: %w", err)
	}
	return &lead, nil
}
