package server

import (
	"hoahub/internal/middleware"
	"hoahub/internal/models"
	"hoahub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createHouseRequest struct {
	Address string `json:"address"`
}

// GetUserHouses lists the houses a user occupies.
func (s *Server) GetUserHouses(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	houses, err := s.houseRepo.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	out := make([]fiber.Map, 0, len(houses))
	for _, h := range houses {
		out = append(out, fiber.Map{
			"id":      h.ID,
			"address": h.Address,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id": user.ID,
		"houses":  out,
	})
}

// CreateHouse creates a house and records the creator as its first
// occupant in the same transaction.
func (s *Server) CreateHouse(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	var req createHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid JSON"))
	}

	if req.Address == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Address is required"))
	}

	if err := validation.ValidateAddress(req.Address); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	house := &models.House{Address: req.Address}
	if err := s.houseRepo.Create(c.UserContext(), house, user.ID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "house created",
		"house_id", house.ID, "creator_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      house.ID,
		"address": house.Address,
		"message": "House created successfully",
	})
}
