package repository

import (
	"context"
	"errors"
	"strings"

	"hoahub/internal/models"

	"gorm.io/gorm"
)

// searchResultLimit caps group-search results.
const searchResultLimit = 10

// GroupWithRole pairs a group with the role a particular user holds in it.
type GroupWithRole struct {
	Group models.HOAGroup
	Role  models.MembershipRole
}

// GroupRepository defines persistence operations for HOA groups and the
// role lookups built on the membership ledger.
type GroupRepository interface {
	GetByID(ctx context.Context, id uint) (*models.HOAGroup, error)
	// Create inserts the group and the creator's admin membership atomically.
	Create(ctx context.Context, group *models.HOAGroup, creatorID uint) error
	ListForUser(ctx context.Context, userID uint) ([]GroupWithRole, error)
	// Search matches group names case-insensitively by substring, excluding
	// groups the user already belongs to. A blank query yields no results.
	Search(ctx context.Context, userID uint, query string) ([]models.HOAGroup, error)
	IsAdmin(ctx context.Context, groupID, userID uint) (bool, error)
	RoleOf(ctx context.Context, groupID, userID uint) (models.MembershipRole, bool, error)
	Delete(ctx context.Context, id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository returns a new GroupRepository implementation.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.HOAGroup, error) {
	var group models.HOAGroup
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("HOA Group not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) Create(ctx context.Context, group *models.HOAGroup, creatorID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		membership := models.HOAMembership{
			UserID:     creatorID,
			HOAGroupID: group.ID,
			Role:       models.MembershipRoleAdmin,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return r.classifyDuplicate(ctx, group)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// classifyDuplicate decides which unique field caused a constraint violation
// so the caller gets the field-specific message the API promises.
func (r *groupRepository) classifyDuplicate(ctx context.Context, group *models.HOAGroup) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.HOAGroup{}).
		Where("name = ?", group.Name).Count(&count).Error; err == nil && count > 0 {
		return models.NewConflictError("HOAGroup with this name already exists")
	}
	return models.NewConflictError("HOAGroup with this owner_email already exists")
}

func (r *groupRepository) ListForUser(ctx context.Context, userID uint) ([]GroupWithRole, error) {
	var memberships []models.HOAMembership
	if err := r.db.WithContext(ctx).
		Preload("HOAGroup").
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	out := make([]GroupWithRole, 0, len(memberships))
	for _, m := range memberships {
		if m.HOAGroup == nil {
			continue
		}
		out = append(out, GroupWithRole{Group: *m.HOAGroup, Role: m.Role})
	}
	return out, nil
}

func (r *groupRepository) Search(ctx context.Context, userID uint, query string) ([]models.HOAGroup, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.HOAGroup{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var groups []models.HOAGroup
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Where("id NOT IN (?)", r.db.Model(&models.HOAMembership{}).
			Select("hoa_group_id").
			Where("user_id = ?", userID)).
		Limit(searchResultLimit).
		Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) IsAdmin(ctx context.Context, groupID, userID uint) (bool, error) {
	role, found, err := r.RoleOf(ctx, groupID, userID)
	if err != nil {
		return false, err
	}
	return found && role == models.MembershipRoleAdmin, nil
}

func (r *groupRepository) RoleOf(ctx context.Context, groupID, userID uint) (models.MembershipRole, bool, error) {
	var membership models.HOAMembership
	err := r.db.WithContext(ctx).
		Select("role").
		Where("hoa_group_id = ? AND user_id = ?", groupID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, models.NewInternalError(err)
	}
	return membership.Role, true, nil
}

// Delete removes a group together with its memberships and documents in one
// transaction, so no row ever references a deleted group.
func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hoa_group_id = ?", id).Delete(&models.HOAMembership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hoa_group_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.HOAGroup{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
