package models

import "time"

// Document is a titled text resource owned by exactly one HOA group.
// Only group admins may create, update, or delete it; deleting the group
// deletes its documents.
type Document struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	HOAGroupID uint      `gorm:"not null;index" json:"hoa_group_id"`
	HOAGroup   *HOAGroup `gorm:"foreignKey:HOAGroupID" json:"hoa_group,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Document) TableName() string {
	return "documents"
}
