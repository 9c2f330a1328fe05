// Package entity defines the domain entities for the account feature.
package entity

import "time"

// Account represents a registered user account.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name of the account holder.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is stored in normalized form (trimmed, lower-cased).
	// It must be unique across all accounts.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordDigest is the bcrypt hash of the password.
	// The plaintext is never stored.
	PasswordDigest string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}
