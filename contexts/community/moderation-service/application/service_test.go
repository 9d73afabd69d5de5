package application

import (
	"context"
	"testing"

	"harvest/contexts/community/moderation-service/adapters/memory"
	domainerrors "harvest/contexts/community/moderation-service/domain/errors"
	"harvest/contexts/community/moderation-service/ports"
)

var (
	admin   = ports.Actor{UserID: 1, Role: "admin"}
	visitor = ports.Actor{UserID: 2, Role: "user"}
)

func TestPendingEventsRequiresAdmin(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	if _, err := service.PendingEvents(context.Background(), visitor); err != domainerrors.ErrUnauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	rows, err := service.PendingEvents(context.Background(), admin)
	if err != nil {
		t.Fatalf("admin pending read failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("expected seeded pending events")
	}
}

func TestSetEventStatusRequiresAdminBeforeStoreAccess(t *testing.T) {
	service := Service{} // no store wired at all

	_, err := service.SetEventStatus(context.Background(), 1, "approved", visitor)
	if err != domainerrors.ErrUnauthorized {
		t.Fatalf("expected Unauthorized before any store access, got %v", err)
	}
}

func TestSetEventStatusTransitions(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	ok, err := service.SetEventStatus(context.Background(), 1, "approved", admin)
	if err != nil || !ok {
		t.Fatalf("expected successful transition, got ok=%v err=%v", ok, err)
	}
	row, _ := store.Event(1)
	if row.Status != "approved" {
		t.Fatalf("expected approved, got %s", row.Status)
	}
	if !row.UpdatedAt.After(row.CreatedAt) {
		t.Fatal("updated_at must be refreshed on transition")
	}
}

func TestSetEventStatusRejectsUnknownStatus(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	if _, err := service.SetEventStatus(context.Background(), 1, "pending", admin); err != domainerrors.ErrInvalidStatus {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestSetStatusReportsStoreFailureAsFalse(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}
	store.FailWrites()

	ok, err := service.SetEventStatus(context.Background(), 1, "rejected", admin)
	if err != nil {
		t.Fatalf("store failure must not raise, got %v", err)
	}
	if ok {
		t.Fatal("store failure must report false")
	}
}

func TestNonAdminCannotChangeBusinessStatus(t *testing.T) {
	store := memory.NewStore()
	service := Service{Repo: store, Clock: store}

	if _, err := service.SetBusinessStatus(context.Background(), 2, "approved", visitor); err != domainerrors.ErrUnauthorized {
		t.Fatalf("expected Unauthorized, got %v", err)
	}
	row, _ := store.Business(2)
	if row.Status != "pending" {
		t.Fatalf("status must be unchanged after unauthorized attempt, got %s", row.Status)
	}
}

func TestNilRepoDegrades(t *testing.T) {
	service := Service{}

	rows, err := service.PendingBusinesses(context.Background(), admin)
	if err != nil || len(rows) != 0 {
		t.Fatalf("pending read must degrade to empty, got %v / %d", err, len(rows))
	}
	ok, err := service.SetBusinessStatus(context.Background(), 2, "approved", admin)
	if err != nil || ok {
		t.Fatalf("write without store must report false, got ok=%v err=%v", ok, err)
	}
}
