package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grihom/grihom-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// CreateReport stores a generated report with a fresh id and creation stamp.
func (s *Store) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	if err := s.wait(ctx); err != nil {
		return models.Report{}, err
	}
	report.ID = fmt.Sprintf("report-%d", nextTimestampID())
	report.CreatedAt = time.Now()
	if err := s.DB.Create(&report).Error; err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// ListReports returns all reports, newest first. Reports are one shared
// collection, not scoped per user, matching the original storage layout.
func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	var reports []models.Report
	if err := s.DB.
		Clauses(hints.CommentBefore("select", "reports_list")).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteReport removes a report by id.
func (s *Store) DeleteReport(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	var existing models.Report
	if err := s.DB.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return s.DB.Delete(&models.Report{}, "id = ?", id).Error
}
