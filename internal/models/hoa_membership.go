package models

import "time"

// MembershipRole defines a user's role within an HOA group. The type is
// closed: handlers never accept a role from the wire, so only the two
// constants below can ever reach storage.
type MembershipRole string

const (
	// MembershipRoleAdmin may manage the group's documents.
	MembershipRoleAdmin MembershipRole = "admin"
	// MembershipRoleMember is the default role granted on join.
	MembershipRoleMember MembershipRole = "member"
)

// HOAMembership links a user to an HOA group under exactly one role.
// The composite primary key enforces at most one membership per
// (user, group) pair at the storage layer.
type HOAMembership struct {
	UserID     uint           `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User       *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	HOAGroupID uint           `gorm:"primaryKey;autoIncrement:false" json:"hoa_group_id"`
	HOAGroup   *HOAGroup      `gorm:"foreignKey:HOAGroupID" json:"hoa_group,omitempty"`
	Role       MembershipRole `gorm:"type:varchar(10);not null;default:'member'" json:"role"`
	JoinedAt   time.Time      `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (HOAMembership) TableName() string {
	return "hoa_memberships"
}
