package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func leadRow(lead *Lead) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "session_id", "name", "email", "phone", "business_name", "business_type",
		"revenue", "employees", "time_in_business", "loan_amount", "loan_purpose", "credit_score",
		"priority", "interest_level", "qualification_score", "source", "created_at",
	}).AddRow(
		lead.ID, lead.SessionID, lead.Name, lead.Email, lead.Phone, lead.BusinessName,
		lead.BusinessType, lead.Revenue, lead.Employees, lead.TimeInBusiness, lead.LoanAmount,
		lead.LoanPurpose, lead.CreditScore, lead.Priority, lead.InterestLevel,
		lead.QualificationScore, lead.Source, lead.CreatedAt,
	)
}

func sampleLead() *Lead {
	return &Lead{
		ID:                 "11111111-1111-1111-1111-111111111111",
		SessionID:          "sess-1",
		Name:               "John Smith",
		Email:              "john@example.com",
		BusinessType:       "restaurant",
		Revenue:            "$40,000",
		Priority:           PriorityMedium,
		InterestLevel:      InterestLow,
		QualificationScore: 7,
		Source:             "chat_widget",
		CreatedAt:          time.Now().UTC(),
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO leads").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	repo := NewPostgresRepositoryWithQuerier(mock)
	lead, err := repo.Create(context.Background(), validRequest("sess-1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if lead.ID == "" {
		t.Fatal("expected generated id")
	}
	if !lead.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at %v, got %v", createdAt, lead.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_CreateValidatesFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepositoryWithQuerier(mock)
	req := validRequest("sess-1")
	req.Email = ""
	req.Phone = ""

	if _, err := repo.Create(context.Background(), req); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should run on invalid input: %v", err)
	}
}

func TestPostgresRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	want := sampleLead()
	mock.ExpectQuery("SELECT (.+) FROM leads WHERE id").
		WithArgs(want.ID).
		WillReturnRows(leadRow(want))

	repo := NewPostgresRepositoryWithQuerier(mock)
	got, err := repo.GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != want.Email || got.Priority != want.Priority {
		t.Fatalf("unexpected lead: %#v", got)
	}
}

func TestPostgresRepository_GetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM leads WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPostgresRepositoryWithQuerier(mock)
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestPostgresRepository_GetBySessionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	want := sampleLead()
	mock.ExpectQuery("SELECT (.+) FROM leads\\s+WHERE session_id").
		WithArgs("sess-1").
		WillReturnRows(leadRow(want))

	repo := NewPostgresRepositoryWithQuerier(mock)
	got, err := repo.GetBySessionID(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("GetBySessionID failed: %v", err)
	}
	if got.SessionID != "sess-1" {
		t.Fatalf("unexpected lead: %#v", got)
	}
}

func TestPostgresRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	want := sampleLead()
	mock.ExpectQuery("SELECT (.+) FROM leads ORDER BY created_at DESC").
		WithArgs(10).
		WillReturnRows(leadRow(want))

	repo := NewPostgresRepositoryWithQuerier(mock)
	out, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != want.ID {
		t.Fatalf("unexpected result: %#v", out)
	}
}
