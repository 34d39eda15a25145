package services

import (
	"context"
	"errors"

	"github.com/grihom/grihom-api/data"
	"github.com/grihom/grihom-api/internal/models"
	"gorm.io/gorm"
)

// AdminStats summarizes the roster and report collections for the admin panel.
// totalImprovements counts the static catalog only, as the original did.
type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalReports      int64 `json:"totalReports"`
	TotalImprovements int   `json:"totalImprovements"`
}

// ListUsers returns every account sans password, in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]models.SafeUser, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.listUsers()
}

func (s *Store) listUsers() ([]models.SafeUser, error) {
	var users []models.User
	if err := s.DB.Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	safe := make([]models.SafeUser, 0, len(users))
	for _, u := range users {
		safe = append(safe, u.Sanitize())
	}
	return safe, nil
}

// Stats computes the admin dashboard counters.
func (s *Store) Stats(ctx context.Context) (AdminStats, error) {
	if err := s.wait(ctx); err != nil {
		return AdminStats{}, err
	}
	var stats AdminStats
	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return AdminStats{}, err
	}
	if err := s.DB.Model(&models.Report{}).Count(&stats.TotalReports).Error; err != nil {
		return AdminStats{}, err
	}
	stats.TotalImprovements = len(data.Catalog())
	return stats, nil
}

// UpdateUserRole sets the admin flag on a user. Like the original, the update
// is attempted first and existence is verified on the read-back.
func (s *Store) UpdateUserRole(ctx context.Context, id string, isAdmin bool) (models.SafeUser, error) {
	if err := s.wait(ctx); err != nil {
		return models.SafeUser{}, err
	}
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).
		Update("is_admin", isAdmin).Error; err != nil {
		return models.SafeUser{}, err
	}
	return s.fetchSafeUser(id)
}

// UpdateUserStatus sets the active flag on a user. Idempotent; repeated calls
// converge on the same state.
func (s *Store) UpdateUserStatus(ctx context.Context, id string, isActive bool) (models.SafeUser, error) {
	if err := s.wait(ctx); err != nil {
		return models.SafeUser{}, err
	}
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).
		Update("is_active", isActive).Error; err != nil {
		return models.SafeUser{}, err
	}
	return s.fetchSafeUser(id)
}

func (s *Store) fetchSafeUser(id string) (models.SafeUser, error) {
	var user models.User
	if err := s.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SafeUser{}, ErrUserNotFound
		}
		return models.SafeUser{}, err
	}
	return user.Sanitize(), nil
}

// DeleteUser removes an account and returns the refreshed sanitized roster.
func (s *Store) DeleteUser(ctx context.Context, id string) ([]models.SafeUser, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}
	if err := s.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return s.listUsers()
}
