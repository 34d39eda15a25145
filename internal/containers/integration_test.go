package containers_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/grihom/grihom-api/internal/config"
	"github.com/grihom/grihom-api/internal/database"
	"github.com/grihom/grihom-api/internal/models"
	"github.com/grihom/grihom-api/internal/services"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// TestWithMariaDB runs the record store against a real MariaDB container
func TestWithMariaDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	dbImage := os.Getenv("DB_IMAGE")
	if dbImage == "" {
		dbImage = "mariadb:11"
	}

	// Start MariaDB container
	mariadbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        dbImage,
			ExposedPorts: []string{"3306/tcp"},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": "rootpass",
				"MYSQL_DATABASE":      "testdb",
				"MYSQL_USER":          "testuser",
				"MYSQL_PASSWORD":      "testpass",
			},
			WaitingFor: wait.ForLog("ready for connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MariaDB container: %v", err)
	}
	defer func() {
		if err := mariadbContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB container: %v", err)
		}
	}()

	// Get container host and port
	host, err := mariadbContainer.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := mariadbContainer.MappedPort(ctx, "3306")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	// Create config
	cfg := &config.Config{
		DBType:            "mariadb",
		DBHost:            host,
		DBPort:            port.Port(),
		DBDatabase:        "testdb",
		DBUser:            "testuser",
		DBPassword:        "testpass",
		DBConnectionLimit: 5,
		AdminEmail:        "admin@homevalue.com",
		AdminPassword:     "admin",
	}

	// Wait for database to be ready
	time.Sleep(5 * time.Second)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run migrations
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	store := services.NewStore(db, 0)
	if err := store.EnsureBootstrapAdmin(cfg); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	t.Run("AuthFlow", func(t *testing.T) {
		testAuthFlow(t, store)
	})

	t.Run("CatalogMerge", func(t *testing.T) {
		testCatalogMerge(t, store)
	})

	t.Run("ReportLifecycle", func(t *testing.T) {
		testReportLifecycle(t, db, store)
	})
}

func testAuthFlow(t *testing.T, store *services.Store) {
	ctx := context.Background()

	result, err := store.Register(ctx, "Priya", "priya@example.com", "secret")
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	login, err := store.Login(ctx, "PRIYA@example.com", "secret")
	if err != nil {
		t.Fatalf("Failed to login case-insensitively: %v", err)
	}
	if login.ID != result.ID {
		t.Errorf("Login resolved to %q, registered as %q", login.ID, result.ID)
	}

	if _, err := store.Login(ctx, "admin@homevalue.com", "wrong"); err != nil {
		t.Errorf("Admin bypass must hold against a real database: %v", err)
	}
}

func testCatalogMerge(t *testing.T, store *services.Store) {
	ctx := context.Background()

	saved, err := store.SaveAdminImprovement(ctx, models.Improvement{
		Title: "Solar water heater", Cost: models.LevelMedium, Effort: models.LevelLow, ROI: models.LevelHigh, Impact: 9, Room: "Terrace",
	})
	if err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	items, err := store.ListImprovements(ctx, models.CatalogFilters{})
	if err != nil {
		t.Fatalf("Failed to list improvements: %v", err)
	}
	if len(items) == 0 || items[0].ID != saved.ID {
		t.Errorf("Admin item must lead the merged catalog")
	}
	if items[0].BudgetRange == "" {
		t.Error("Admin item must be normalized on read")
	}
}

func testReportLifecycle(t *testing.T, db *gorm.DB, store *services.Store) {
	ctx := context.Background()

	report, err := store.CreateReport(ctx, models.Report{
		Title:      "MariaDB report",
		ValorScore: 68,
	})
	if err != nil {
		t.Fatalf("Failed to create report: %v", err)
	}

	var count int64
	if err := db.Model(&models.Report{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count reports: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 persisted report, got %d", count)
	}

	if err := store.DeleteReport(ctx, report.ID); err != nil {
		t.Fatalf("Failed to delete report: %v", err)
	}
}
