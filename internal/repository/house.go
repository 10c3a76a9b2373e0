package repository

import (
	"context"

	"hoahub/internal/models"

	"gorm.io/gorm"
)

// HouseRepository defines persistence operations for houses. Occupancy is a
// plain many-to-many set with no role concept.
type HouseRepository interface {
	// Create inserts the house and registers the creator as its first
	// occupant in the same transaction.
	Create(ctx context.Context, house *models.House, creatorID uint) error
	AddOccupant(ctx context.Context, houseID, userID uint) error
	ListForUser(ctx context.Context, userID uint) ([]models.House, error)
}

type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository returns a new HouseRepository implementation.
func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Create(ctx context.Context, house *models.House, creatorID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(house).Error; err != nil {
			return err
		}
		return tx.Exec(
			"INSERT INTO house_occupants (house_id, user_id) VALUES (?, ?)",
			house.ID, creatorID,
		).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewConflictError("House with this address already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *houseRepository) AddOccupant(ctx context.Context, houseID, userID uint) error {
	err := r.db.WithContext(ctx).Exec(
		"INSERT INTO house_occupants (house_id, user_id) VALUES (?, ?)",
		houseID, userID,
	).Error
	if err != nil {
		if isUniqueViolation(err) {
			// Occupancy is a set; re-adding an occupant is a no-op.
			return nil
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *houseRepository) ListForUser(ctx context.Context, userID uint) ([]models.House, error) {
	var houses []models.House
	if err := r.db.WithContext(ctx).
		Joins("JOIN house_occupants ON house_occupants.house_id = houses.id").
		Where("house_occupants.user_id = ?", userID).
		Order("houses.id ASC").
		Find(&houses).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return houses, nil
}
