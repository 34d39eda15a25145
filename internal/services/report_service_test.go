package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"gorm.io/datatypes"
)

func TestCreateAndListReports(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.CreateReport(ctx, models.Report{
		Title:        "First",
		ValorScore:   61,
		PropertyData: datatypes.JSON(`{"location":"Pune"}`),
	})
	if err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}
	if !strings.HasPrefix(first.ID, "report-") {
		t.Errorf("Expected generated report id, got %q", first.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("Expected creation stamp")
	}

	// Keep created_at distinct for the newest-first ordering check
	time.Sleep(2 * time.Millisecond)
	second, err := store.CreateReport(ctx, models.Report{
		Title:        "Second",
		ValorScore:   74,
		PropertyData: datatypes.JSON(`{}`),
	})
	if err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	reports, err := store.ListReports(ctx)
	if err != nil {
		t.Fatalf("Failed to list reports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != second.ID {
		t.Errorf("Expected newest report first, got %q", reports[0].ID)
	}
}

func TestDeleteReport(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	report, err := store.CreateReport(ctx, models.Report{
		Title:        "Doomed",
		PropertyData: datatypes.JSON(`{}`),
	})
	if err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	if err := store.DeleteReport(ctx, report.ID); err != nil {
		t.Fatalf("Failed to delete report: %v", err)
	}
	if err := store.DeleteReport(ctx, report.ID); !errors.Is(err, services.ErrReportNotFound) {
		t.Errorf("Expected ErrReportNotFound on second delete, got %v", err)
	}
}

func TestHistoryAppendAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.AppendHistory(ctx, models.HistoryEntry{
		Action:     "Added suggestion",
		Details:    "Solar water heater",
		AdminName:  "Admin User",
		AdminEmail: "admin@homevalue.com",
	})
	if err != nil {
		t.Fatalf("Failed to append history: %v", err)
	}
	second, err := store.AppendHistory(ctx, models.HistoryEntry{
		Action:  "Deleted suggestion",
		Details: "Solar water heater",
	})
	if err != nil {
		t.Fatalf("Failed to append history: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("History ids must increase: %d then %d", first.ID, second.ID)
	}

	entries, err := store.ListHistory(ctx)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("Expected newest entry first, got id %d", entries[0].ID)
	}
}

func TestStoreLatencyHonorsCancellation(t *testing.T) {
	store := setupTestStore(t)
	store.Latency = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := store.ListReports(ctx)
	if err == nil {
		t.Fatal("Expected cancellation error")
	}
	if time.Since(start) > time.Second {
		t.Error("Cancelled operation should return promptly")
	}
}
