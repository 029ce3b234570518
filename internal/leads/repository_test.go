package leads

import (
	"context"
	"errors"
	"testing"
)

func validRequest(sessionID string) *CreateLeadRequest {
	return &CreateLeadRequest{
		SessionID:          sessionID,
		Name:               "John Smith",
		Email:              "john@example.com",
		BusinessType:       "restaurant",
		Revenue:            "$40,000",
		Priority:           PriorityMedium,
		InterestLevel:      InterestLow,
		QualificationScore: 7,
		Source:             "chat_widget",
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()

	lead, err := repo.Create(context.Background(), validRequest("sess-1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if lead.ID == "" {
		t.Fatal("expected generated id")
	}
	if lead.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	got, err := repo.GetByID(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "john@example.com" || got.Priority != PriorityMedium {
		t.Fatalf("unexpected lead: %#v", got)
	}
}

func TestInMemoryRepository_GetByIDNotFound(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := NewInMemoryRepository()

	req := validRequest("")
	if _, err := repo.Create(context.Background(), req); !errors.Is(err, ErrMissingSession) {
		t.Fatalf("expected ErrMissingSession, got %v", err)
	}

	req = validRequest("sess-1")
	req.Email = ""
	req.Phone = ""
	if _, err := repo.Create(context.Background(), req); !errors.Is(err, ErrMissingContact) {
		t.Fatalf("expected ErrMissingContact, got %v", err)
	}
}

func TestInMemoryRepository_GetBySessionIDReturnsNewest(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, _ := repo.Create(ctx, validRequest("sess-1"))

	second := validRequest("sess-1")
	second.QualificationScore = 9
	newest, _ := repo.Create(ctx, second)

	if _, err := repo.Create(ctx, validRequest("sess-2")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetBySessionID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetBySessionID failed: %v", err)
	}
	if got.ID != newest.ID {
		t.Fatalf("expected newest lead %s, got %s (first was %s)", newest.ID, got.ID, first.ID)
	}

	if _, err := repo.GetBySessionID(ctx, "sess-404"); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestInMemoryRepository_ListNewestFirstWithLimit(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	var ids []string
	for _, sess := range []string{"a", "b", "c"} {
		lead, err := repo.Create(ctx, validRequest(sess))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, lead.ID)
	}

	out, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2, got %d", len(out))
	}
	if out[0].ID != ids[2] || out[1].ID != ids[1] {
		t.Fatal("expected newest-first ordering")
	}
}
