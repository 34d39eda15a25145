package models

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known preference keys. The prototype kept these per browser; the
// service keeps them per authenticated user.
const (
	PrefKeyPreferences = "preferences"
	PrefKeyTheme       = "theme"
	PrefKeyPlan        = "planned_improvements"
	PrefKeyFavorites   = "favorite_ideas"
)

// UserPreference is a single named JSON value in the user scope.
type UserPreference struct {
	UserID    string         `gorm:"primaryKey;size:64" json:"userId"`
	PrefKey   string         `gorm:"primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"type:json" json:"value"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for UserPreference
func (UserPreference) TableName() string {
	return "user_preferences"
}
