package services

import (
	"context"
	"time"

	"github.com/grihom/grihom-api/internal/models"
)

// AppendHistory appends one audit entry. Every call appends; entries are never
// deduplicated, and the write is not atomic with the mutation it records.
func (s *Store) AppendHistory(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	if err := s.wait(ctx); err != nil {
		return models.HistoryEntry{}, err
	}
	entry.ID = nextTimestampID()
	entry.CreatedAt = time.Now()
	if err := s.DB.Create(&entry).Error; err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

// ListHistory returns the audit log, newest first.
func (s *Store) ListHistory(ctx context.Context) ([]models.HistoryEntry, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	var entries []models.HistoryEntry
	if err := s.DB.Order("id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
