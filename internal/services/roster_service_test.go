package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/grihom/grihom-api/data"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"gorm.io/datatypes"
)

func TestStats(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	seedAdmin(t, store)

	if _, err := store.Register(ctx, "Priya", "priya@example.com", "pw"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if _, err := store.CreateReport(ctx, models.Report{
		Title:        "Report",
		PropertyData: datatypes.JSON(`{}`),
	}); err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Failed to compute stats: %v", err)
	}
	if stats.TotalUsers != 2 {
		t.Errorf("Expected 2 users, got %d", stats.TotalUsers)
	}
	if stats.TotalReports != 1 {
		t.Errorf("Expected 1 report, got %d", stats.TotalReports)
	}
	// Counts the static catalog only
	if stats.TotalImprovements != len(data.Catalog()) {
		t.Errorf("Expected %d improvements, got %d", len(data.Catalog()), stats.TotalImprovements)
	}
}

func TestListUsersSanitized(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	seedAdmin(t, store)

	if _, err := store.Register(ctx, "Priya", "priya@example.com", "pw"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	// Seeded admin registered first, insertion order preserved
	if users[0].ID != services.BootstrapAdminID {
		t.Errorf("Expected admin first, got %q", users[0].ID)
	}
}

func TestUpdateUserRole(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	result, err := store.Register(ctx, "Priya", "priya@example.com", "pw")
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	user, err := store.UpdateUserRole(ctx, result.ID, true)
	if err != nil {
		t.Fatalf("Failed to update role: %v", err)
	}
	if !user.IsAdmin {
		t.Error("Expected isAdmin true after promotion")
	}

	if _, err := store.UpdateUserRole(ctx, "no-such-id", true); !errors.Is(err, services.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUserStatusIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	result, err := store.Register(ctx, "Priya", "priya@example.com", "pw")
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	for i := 0; i < 2; i++ {
		user, err := store.UpdateUserStatus(ctx, result.ID, false)
		if err != nil {
			t.Fatalf("Failed to update status: %v", err)
		}
		if user.IsActive {
			t.Error("Expected isActive false")
		}
	}
}

func TestDeleteUserReturnsRoster(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	seedAdmin(t, store)

	result, err := store.Register(ctx, "Priya", "priya@example.com", "pw")
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	users, err := store.DeleteUser(ctx, result.ID)
	if err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}
	if len(users) != 1 || users[0].ID != services.BootstrapAdminID {
		t.Errorf("Expected only admin to remain, got %+v", users)
	}
}

func TestDeleteUserNotFoundLeavesRoster(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	seedAdmin(t, store)

	_, err := store.DeleteUser(ctx, "no-such-id")
	if !errors.Is(err, services.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("Roster must be unchanged after failed delete, got %d users", len(users))
	}
}
