package server

import (
	"errors"
	"strconv"
	"time"

	"hoahub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler already wrote an error
// response and the caller should just return nil.
var errResponseWritten = errors.New("error response written")

// parseID extracts a positive integer path parameter. On failure it writes
// a 404 with the entity-specific not-found message and returns
// errResponseWritten, matching how unknown IDs are reported.
func parseID(c *fiber.Ctx, param, entity string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(entity+" not found"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// requireUser loads the user for a path parameter, writing a 404
// "User not found" response when the ID is malformed or unknown.
func (s *Server) requireUser(c *fiber.Ctx, param string) (*models.User, error) {
	id, err := parseID(c, param, "User")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		models.RespondWithAppError(c, err)
		return nil, errResponseWritten
	}
	return user, nil
}

// requireGroup loads the HOA group for a path parameter, writing a 404
// "HOAGroup not found" response when the ID is malformed or unknown.
func (s *Server) requireGroup(c *fiber.Ctx, param string) (*models.HOAGroup, error) {
	id, err := parseID(c, param, "HOA Group")
	if err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(c.UserContext(), id)
	if err != nil {
		models.RespondWithAppError(c, err)
		return nil, errResponseWritten
	}
	return group, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
