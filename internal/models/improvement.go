package models

import (
	"time"

	"gorm.io/datatypes"
)

// Cost, effort and ROI levels used throughout the catalog.
const (
	LevelLow    = "Low"
	LevelMedium = "Medium"
	LevelHigh   = "High"
)

// Improvement is a catalog entry describing a renovation suggestion.
// Catalog items come from two sources merged at read time: the embedded static
// catalog and the admin-authored rows in the admin_improvements table.
type Improvement struct {
	ID             int64          `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	Description    string         `gorm:"type:text" json:"description"`
	Cost           string         `gorm:"size:16;not null" json:"cost"`
	Effort         string         `gorm:"size:16;not null" json:"effort"`
	ROI            string         `gorm:"size:16;not null;column:roi" json:"roi"`
	Impact         int            `gorm:"not null;default:0" json:"impact"`
	Room           string         `gorm:"size:64" json:"room"`
	Duration       string         `gorm:"size:64" json:"duration,omitempty"`
	BudgetRange    string         `gorm:"size:64" json:"budgetRange,omitempty"`
	Tags           datatypes.JSON `gorm:"type:json" json:"tags,omitempty"`
	IndianSpecific *bool          `json:"indianSpecific,omitempty"`
	ImageURL       string         `gorm:"size:1024" json:"imageUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TableName overrides the table name for Improvement
func (Improvement) TableName() string {
	return "admin_improvements"
}

// fallbackBudgetRange mirrors the read-time decoration the prototype applied
// to admin-authored items missing a budget range.
func fallbackBudgetRange(cost string) string {
	switch cost {
	case LevelHigh:
		return "₹2,00,000+"
	case LevelMedium:
		return "₹50,000 - ₹2,00,000"
	default:
		return "₹10,000 - ₹50,000"
	}
}

// Normalize returns a fully-populated copy of the improvement, defaulting any
// missing optional fields. Applied uniformly to every record read from the
// admin-authored collection.
func (i Improvement) Normalize() Improvement {
	out := i
	if len(out.Tags) == 0 || string(out.Tags) == "null" {
		out.Tags = datatypes.JSON(`["admin-suggestion"]`)
	}
	if out.BudgetRange == "" {
		out.BudgetRange = fallbackBudgetRange(out.Cost)
	}
	if out.Duration == "" {
		out.Duration = "Custom timeline"
	}
	if out.IndianSpecific == nil {
		t := true
		out.IndianSpecific = &t
	}
	return out
}

// CatalogFilters are the optional AND-combined equality filters for catalog
// listing.
type CatalogFilters struct {
	Room   string
	Cost   string
	Effort string
}

// Match reports whether the improvement passes the filters. Empty filter
// fields match everything.
func (f CatalogFilters) Match(i Improvement) bool {
	roomMatch := f.Room == "" || i.Room == f.Room
	costMatch := f.Cost == "" || i.Cost == f.Cost
	effortMatch := f.Effort == "" || i.Effort == f.Effort
	return roomMatch && costMatch && effortMatch
}
