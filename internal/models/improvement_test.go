package models

import (
	"encoding/json"
	"testing"

	"gorm.io/datatypes"
)

func TestNormalizeDefaults(t *testing.T) {
	imp := Improvement{Title: "Bare", Cost: LevelMedium}
	got := imp.Normalize()

	var tags []string
	if err := json.Unmarshal(got.Tags, &tags); err != nil || len(tags) != 1 || tags[0] != "admin-suggestion" {
		t.Errorf("Expected default tags, got %s", string(got.Tags))
	}
	if got.BudgetRange != "₹50,000 - ₹2,00,000" {
		t.Errorf("Expected Medium budget range fallback, got %q", got.BudgetRange)
	}
	if got.Duration != "Custom timeline" {
		t.Errorf("Expected duration fallback, got %q", got.Duration)
	}
	if got.IndianSpecific == nil || !*got.IndianSpecific {
		t.Error("Expected indianSpecific default true")
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	f := false
	imp := Improvement{
		Title:          "Full",
		Cost:           LevelLow,
		Duration:       "2 weeks",
		BudgetRange:    "₹5,000 - ₹15,000",
		Tags:           datatypes.JSON(`["eco"]`),
		IndianSpecific: &f,
	}
	got := imp.Normalize()

	if got.Duration != "2 weeks" || got.BudgetRange != "₹5,000 - ₹15,000" {
		t.Errorf("Explicit values were overwritten: %+v", got)
	}
	if string(got.Tags) != `["eco"]` {
		t.Errorf("Explicit tags overwritten: %s", string(got.Tags))
	}
	if got.IndianSpecific == nil || *got.IndianSpecific {
		t.Error("Explicit indianSpecific false was overwritten")
	}
}

func TestNormalizeJSONNullTags(t *testing.T) {
	imp := Improvement{Cost: LevelLow, Tags: datatypes.JSON(`null`)}
	got := imp.Normalize()
	if string(got.Tags) != `["admin-suggestion"]` {
		t.Errorf("JSON null tags should fall back, got %s", string(got.Tags))
	}
}

func TestFallbackBudgetRangeByCostTier(t *testing.T) {
	tests := map[string]string{
		LevelHigh:   "₹2,00,000+",
		LevelMedium: "₹50,000 - ₹2,00,000",
		LevelLow:    "₹10,000 - ₹50,000",
		"":          "₹10,000 - ₹50,000",
	}
	for cost, want := range tests {
		if got := fallbackBudgetRange(cost); got != want {
			t.Errorf("Cost %q: expected %q, got %q", cost, want, got)
		}
	}
}

func TestCatalogFiltersMatch(t *testing.T) {
	imp := Improvement{Room: "Kitchen", Cost: LevelLow, Effort: LevelMedium}

	if !(CatalogFilters{}).Match(imp) {
		t.Error("Empty filters must match everything")
	}
	if !(CatalogFilters{Room: "Kitchen"}).Match(imp) {
		t.Error("Matching room filter failed")
	}
	if (CatalogFilters{Room: "Bathroom"}).Match(imp) {
		t.Error("Non-matching room filter passed")
	}
	if (CatalogFilters{Room: "Kitchen", Cost: LevelHigh}).Match(imp) {
		t.Error("Filters must AND-combine")
	}
}
