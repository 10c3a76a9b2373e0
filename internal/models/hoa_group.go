package models

import "time"

// HOAGroup represents a homeowner-association community. Both the group name
// and the owner contact email are unique across the system.
type HOAGroup struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	OwnerEmail string    `gorm:"size:255;not null;uniqueIndex" json:"owner_email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (HOAGroup) TableName() string {
	return "hoa_groups"
}
