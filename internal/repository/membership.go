package repository

import (
	"context"

	"hoahub/internal/models"

	"gorm.io/gorm"
)

// MemberWithRole pairs a user with the role they hold in a group.
type MemberWithRole struct {
	User models.User
	Role models.MembershipRole
}

// MembershipRepository defines persistence operations for the membership
// ledger. The (user, group) composite primary key is the uniqueness
// authority: a duplicate join races at the storage layer and exactly one
// insert wins.
type MembershipRepository interface {
	// Join adds the user to the group with the member role. A second join for
	// the same pair fails with a conflict; it never updates the existing row.
	Join(ctx context.Context, userID, groupID uint) (*models.HOAMembership, error)
	ListMembers(ctx context.Context, groupID uint) ([]MemberWithRole, error)
}

type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository returns a new MembershipRepository implementation.
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Join(ctx context.Context, userID, groupID uint) (*models.HOAMembership, error) {
	membership := models.HOAMembership{
		UserID:     userID,
		HOAGroupID: groupID,
		Role:       models.MembershipRoleMember,
	}
	if err := r.db.WithContext(ctx).Create(&membership).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, models.NewConflictError("User is already a member of this HOAGroup")
		}
		return nil, models.NewInternalError(err)
	}
	return &membership, nil
}

func (r *membershipRepository) ListMembers(ctx context.Context, groupID uint) ([]MemberWithRole, error) {
	var memberships []models.HOAMembership
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("hoa_group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	out := make([]MemberWithRole, 0, len(memberships))
	for _, m := range memberships {
		if m.User == nil {
			continue
		}
		out = append(out, MemberWithRole{User: *m.User, Role: m.Role})
	}
	return out, nil
}
