package models

import "time"

// House is a dwelling shared by any number of occupant users. Occupancy
// carries no role; every occupant has equal rights.
type House struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Address   string    `gorm:"size:255;not null;uniqueIndex" json:"address"`
	Occupants []User    `gorm:"many2many:house_occupants" json:"occupants,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (House) TableName() string {
	return "houses"
}
