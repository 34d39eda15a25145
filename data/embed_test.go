package data

import (
	"strings"
	"testing"

	"github.com/grihom/grihom-api/internal/models"
)

func TestCatalogShape(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 8 {
		t.Fatalf("Expected 8 static items, got %d", len(catalog))
	}

	for i, item := range catalog {
		if item.ID != int64(i+1) {
			t.Errorf("Position %d: expected id %d, got %d", i, i+1, item.ID)
		}
		if item.Title == "" || item.Room == "" {
			t.Errorf("Item %d missing required fields: %+v", item.ID, item)
		}
		switch item.Cost {
		case models.LevelLow, models.LevelMedium, models.LevelHigh:
		default:
			t.Errorf("Item %d has invalid cost %q", item.ID, item.Cost)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Title = "mutated"

	second := Catalog()
	if second[0].Title == "mutated" {
		t.Error("Catalog must return an independent copy")
	}
}

func TestInitdbScriptsEmbedded(t *testing.T) {
	if !strings.Contains(InitdbMariaDBTables, "CREATE TABLE") {
		t.Error("Tables script missing CREATE TABLE statements")
	}
	if !strings.Contains(InitdbMariaDBPrivileges, "GRANT") {
		t.Error("Privileges script missing GRANT statements")
	}
}
