package services

import (
	"context"
	"errors"
	"time"

	"github.com/grihom/grihom-api/data"
	"github.com/grihom/grihom-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// ListImprovements returns the merged catalog: admin-authored improvements
// first, newest first, each normalized with read-time fallbacks, followed by
// the static catalog in its fixed order. Optional room/cost/effort equality
// filters are AND-combined.
func (s *Store) ListImprovements(ctx context.Context, filters models.CatalogFilters) ([]models.Improvement, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	var adminItems []models.Improvement
	if err := s.DB.
		Clauses(hints.CommentBefore("select", "catalog_merge")).
		Order("id DESC").
		Find(&adminItems).Error; err != nil {
		return nil, err
	}

	merged := make([]models.Improvement, 0, len(adminItems)+8)
	for _, item := range adminItems {
		merged = append(merged, item.Normalize())
	}
	merged = append(merged, data.Catalog()...)

	filtered := merged[:0]
	for _, item := range merged {
		if filters.Match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// AdminImprovements returns the raw admin-authored list, newest first,
// without read-time normalization.
func (s *Store) AdminImprovements(ctx context.Context) ([]models.Improvement, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	var items []models.Improvement
	if err := s.DB.Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SaveAdminImprovement stores a new admin-authored catalog entry with a
// generated timestamp id and creation stamp.
func (s *Store) SaveAdminImprovement(ctx context.Context, imp models.Improvement) (models.Improvement, error) {
	if err := s.wait(ctx); err != nil {
		return models.Improvement{}, err
	}
	imp.ID = nextTimestampID()
	imp.CreatedAt = time.Now()
	imp.UpdatedAt = imp.CreatedAt
	if err := s.DB.Create(&imp).Error; err != nil {
		return models.Improvement{}, err
	}
	return imp, nil
}

// UpdateAdminImprovement replaces the mutable fields of an existing entry,
// keeping its id and creation stamp and stamping the update time.
func (s *Store) UpdateAdminImprovement(ctx context.Context, id int64, updates models.Improvement) (models.Improvement, error) {
	if err := s.wait(ctx); err != nil {
		return models.Improvement{}, err
	}

	var existing models.Improvement
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Improvement{}, ErrImprovementNotFound
		}
		return models.Improvement{}, err
	}

	existing.Title = updates.Title
	existing.Description = updates.Description
	existing.Cost = updates.Cost
	existing.Effort = updates.Effort
	existing.ROI = updates.ROI
	existing.Impact = updates.Impact
	existing.Room = updates.Room
	existing.Duration = updates.Duration
	existing.BudgetRange = updates.BudgetRange
	existing.Tags = updates.Tags
	existing.IndianSpecific = updates.IndianSpecific
	existing.ImageURL = updates.ImageURL
	existing.UpdatedAt = time.Now()

	if err := s.DB.Save(&existing).Error; err != nil {
		return models.Improvement{}, err
	}
	return existing, nil
}

// DeleteAdminImprovement removes an entry by id and returns the deleted item.
func (s *Store) DeleteAdminImprovement(ctx context.Context, id int64) (models.Improvement, error) {
	if err := s.wait(ctx); err != nil {
		return models.Improvement{}, err
	}

	var existing models.Improvement
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Improvement{}, ErrImprovementNotFound
		}
		return models.Improvement{}, err
	}
	if err := s.DB.Delete(&models.Improvement{}, "id = ?", id).Error; err != nil {
		return models.Improvement{}, err
	}
	return existing, nil
}
