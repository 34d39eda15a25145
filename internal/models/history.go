package models

import (
	"time"
)

// HistoryEntry is one row of the append-only admin audit log. Entries are
// written alongside catalog and roster mutations, not atomically with them.
type HistoryEntry struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Action     string    `gorm:"size:64;not null" json:"action"`
	Details    string    `gorm:"type:text" json:"details"`
	AdminName  string    `gorm:"size:255" json:"adminName"`
	AdminEmail string    `gorm:"size:255" json:"adminEmail"`
	CreatedAt  time.Time `json:"timestamp"`
}

// TableName overrides the table name for HistoryEntry
func (HistoryEntry) TableName() string {
	return "admin_improvement_history"
}
