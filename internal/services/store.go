package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grihom/grihom-api/internal/config"
	"github.com/grihom/grihom-api/internal/models"
	"gorm.io/gorm"
)

// Failure messages surfaced to callers. The wording is part of the API
// contract carried over from the original client.
var (
	ErrAccountNotFound     = errors.New("Account not found. Please register first.")
	ErrAccountInactive     = errors.New("Your account is inactive. Please contact an administrator.")
	ErrInvalidPassword     = errors.New("Invalid password.")
	ErrEmailExists         = errors.New("Email already exists. Please login.")
	ErrUserNotFound        = errors.New("User not found.")
	ErrImprovementNotFound = errors.New("Improvement not found.")
	ErrReportNotFound      = errors.New("Report not found.")
)

const tokenPrefix = "local-token-"

// BootstrapAdminID is the fixed id of the seeded admin account.
const BootstrapAdminID = "admin-1"

// Store is the record store behind every API operation. One instance is
// constructed at startup and passed to the handlers by reference; there is no
// ambient singleton.
type Store struct {
	DB *gorm.DB

	// Latency is an artificial per-operation delay emulating the network
	// latency of the original mock API. Zero disables it.
	Latency time.Duration
}

// NewStore creates a Store over an open database handle.
func NewStore(db *gorm.DB, latency time.Duration) *Store {
	return &Store{DB: db, Latency: latency}
}

// wait blocks for the configured artificial latency, honoring cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var (
	idMu   sync.Mutex
	lastID int64
)

// nextTimestampID returns a millisecond-timestamp id, bumped monotonically so
// two calls in the same millisecond never collide. Static catalog ids are
// small integers, so timestamp ids are disjoint from them by construction.
func nextTimestampID() int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// TokenForUser derives the opaque session token for a user id. Deterministic;
// there is no server-side invalidation.
func TokenForUser(userID string) string {
	return tokenPrefix + userID
}

// UserIDFromToken reverses TokenForUser.
func UserIDFromToken(token string) (string, bool) {
	if !strings.HasPrefix(token, tokenPrefix) || len(token) == len(tokenPrefix) {
		return "", false
	}
	return token[len(tokenPrefix):], true
}

// UserByToken resolves a session token to its user record.
func (s *Store) UserByToken(token string) (models.User, error) {
	userID, ok := UserIDFromToken(token)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	var user models.User
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// EnsureBootstrapAdmin seeds the fixed admin account if it is not present.
func (s *Store) EnsureBootstrapAdmin(cfg *config.Config) error {
	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("LOWER(email) = ?", strings.ToLower(cfg.AdminEmail)).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	admin := models.User{
		ID:       BootstrapAdminID,
		Name:     "Admin User",
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		IsAdmin:  true,
		IsActive: true,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed bootstrap admin: %w", err)
	}
	return nil
}
