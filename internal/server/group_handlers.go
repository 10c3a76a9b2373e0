package server

import (
	"errors"

	"hoahub/internal/middleware"
	"hoahub/internal/models"
	"hoahub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type createGroupRequest struct {
	Name       string `json:"name"`
	OwnerEmail string `json:"owner_email"`
}

type groupResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	OwnerEmail string `json:"owner_email"`
	Role       string `json:"role,omitempty"`
}

// GetUserGroups lists the HOA groups a user belongs to, with the user's
// role in each.
func (s *Server) GetUserGroups(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	groups, err := s.groupRepo.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse{
			ID:         g.Group.ID,
			Name:       g.Group.Name,
			OwnerEmail: g.Group.OwnerEmail,
			Role:       string(g.Role),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id":    user.ID,
		"hoa_groups": out,
	})
}

// CreateGroup creates an HOA group with the requesting user as its admin.
// The group row and the admin membership are written in one transaction.
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid JSON"))
	}

	if req.Name == "" || req.OwnerEmail == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and owner_email are required"))
	}

	if err := validation.ValidateGroupName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if err := validation.ValidateEmail(req.OwnerEmail); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	group := &models.HOAGroup{
		Name:       req.Name,
		OwnerEmail: req.OwnerEmail,
	}

	if err := s.groupRepo.Create(c.UserContext(), group, user.ID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "hoa group created",
		"group_id", group.ID, "creator_id", user.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          group.ID,
		"name":        group.Name,
		"owner_email": group.OwnerEmail,
		"role":        string(models.MembershipRoleAdmin),
		"message":     "HOAGroup created successfully",
	})
}

// SearchGroups finds joinable groups by case-insensitive name substring.
// A blank query returns an empty list rather than an error.
func (s *Server) SearchGroups(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	groups, err := s.groupRepo.Search(c.UserContext(), user.ID, c.Query("q"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse{
			ID:         g.ID,
			Name:       g.Name,
			OwnerEmail: g.OwnerEmail,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"hoa_groups": out,
	})
}

// JoinGroup adds the user to an existing group with the member role.
// Joining is not idempotent: a second join for the same pair fails.
func (s *Server) JoinGroup(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	membership, err := s.membershipRepo.Join(c.UserContext(), user.ID, group.ID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code != models.CodeConflict {
			middleware.Logger.ErrorContext(c.UserContext(), "join failed",
				"user_id", user.ID, "group_id", group.ID, "error", err)
		}
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":          group.ID,
		"name":        group.Name,
		"owner_email": group.OwnerEmail,
		"role":        string(membership.Role),
		"message":     "Successfully joined HOAGroup",
	})
}
