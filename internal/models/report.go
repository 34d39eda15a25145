package models

import (
	"time"

	"gorm.io/datatypes"
)

// PropertyData holds the attributes a user submits about their property.
// Transient input to valuation; persisted only embedded inside a report.
type PropertyData struct {
	Type              string `json:"type"`
	Location          string `json:"location"`
	YearBuilt         int    `json:"yearBuilt"`
	PropertyCondition string `json:"propertyCondition"`
	Budget            string `json:"budget"`
	Goal              string `json:"goal"`
	PropertySize      string `json:"propertySize"`
	Bedrooms          string `json:"bedrooms"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
}

// Report is a generated recommendation report. All reports live in one shared
// collection, exactly like the prototype (not scoped per user).
type Report struct {
	ID              string         `gorm:"primaryKey;size:64" json:"id"`
	Title           string         `gorm:"size:255" json:"title"`
	ValorScore      int            `gorm:"not null;default:0" json:"valorScore"`
	PropertyData    datatypes.JSON `gorm:"type:json" json:"propertyData"`
	Recommendations datatypes.JSON `gorm:"type:json" json:"recommendations"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// TableName overrides the table name for Report
func (Report) TableName() string {
	return "reports"
}
