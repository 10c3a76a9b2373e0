// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. The password column always holds a
// bcrypt hash, never the raw credential.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Houses    []House   `gorm:"many2many:house_occupants" json:"houses,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
