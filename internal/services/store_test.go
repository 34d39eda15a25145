package services_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/grihom/grihom-api/internal/config"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"gorm.io/gorm"
)

// setupTestStore creates a Store over an in-memory SQLite database
func setupTestStore(t *testing.T) *services.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Auto-migrate models
	err = db.AutoMigrate(
		&models.User{},
		&models.Improvement{},
		&models.Report{},
		&models.HistoryEntry{},
		&models.UserPreference{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return services.NewStore(db, 0)
}

func testConfig() *config.Config {
	return &config.Config{
		AdminEmail:    "admin@homevalue.com",
		AdminPassword: "admin",
	}
}

func seedAdmin(t *testing.T, store *services.Store) {
	if err := store.EnsureBootstrapAdmin(testConfig()); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token := services.TokenForUser("user-42")
	if token != "local-token-user-42" {
		t.Errorf("Unexpected token %q", token)
	}
	id, ok := services.UserIDFromToken(token)
	if !ok || id != "user-42" {
		t.Errorf("Expected user-42, got %q ok=%v", id, ok)
	}
}

func TestUserIDFromTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "local-token-", "bearer-user-1", "token-local-user-1"} {
		if _, ok := services.UserIDFromToken(token); ok {
			t.Errorf("Token %q should not resolve", token)
		}
	}
}

func TestEnsureBootstrapAdminIdempotent(t *testing.T) {
	store := setupTestStore(t)
	seedAdmin(t, store)
	seedAdmin(t, store)

	users, err := store.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected 1 user after double seed, got %d", len(users))
	}
	if users[0].ID != services.BootstrapAdminID || !users[0].IsAdmin {
		t.Errorf("Unexpected seeded admin: %+v", users[0])
	}
}

func TestUserByToken(t *testing.T) {
	store := setupTestStore(t)
	seedAdmin(t, store)

	user, err := store.UserByToken(services.TokenForUser(services.BootstrapAdminID))
	if err != nil {
		t.Fatalf("Failed to resolve token: %v", err)
	}
	if user.Email != "admin@homevalue.com" {
		t.Errorf("Unexpected user %+v", user)
	}

	if _, err := store.UserByToken("local-token-no-such-user"); err == nil {
		t.Error("Expected error for unknown user token")
	}
}
