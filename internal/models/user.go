package models

import (
	"time"
)

// User represents an account in the roster.
// Passwords are stored plaintext by design of the original prototype; the
// service is a demo stand-in, not a security boundary.
type User struct {
	ID        string `gorm:"primaryKey;size:64" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Email     string `gorm:"size:255;not null;index" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"isAdmin"`
	IsActive  bool   `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// SafeUser is the sanitized user view returned by the API, never carrying
// the password field.
type SafeUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	IsActive bool   `json:"isActive"`
}

// Sanitize strips the password from a user record.
func (u User) Sanitize() SafeUser {
	return SafeUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		IsActive: u.IsActive,
	}
}

// AuthResult is returned by login and register: the sanitized user plus the
// issued session token.
type AuthResult struct {
	Token   string `json:"token"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
