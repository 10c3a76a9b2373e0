package server

import (
	"embed"
	"html/template"
	"strconv"

	"hoahub/internal/models"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func renderPage(c *fiber.Ctx, name string, data any) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return pageTemplates.ExecuteTemplate(c.Response().BodyWriter(), name, data)
}

// LoginPage renders the combined login/registration page.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return renderPage(c, "login.html", nil)
}

// UserDashboard renders a user's groups (with roles) and houses.
func (s *Server) UserDashboard(c *fiber.Ctx) error {
	user, err := s.requireUser(c, "userId")
	if err != nil {
		return nil
	}

	groups, err := s.groupRepo.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	houses, err := s.houseRepo.ListForUser(c.UserContext(), user.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return renderPage(c, "dashboard.html", fiber.Map{
		"User":   user,
		"Groups": groups,
		"Houses": houses,
	})
}

// GroupDashboard renders a group's documents and members. An optional
// user_id query parameter computes the admin flag for that viewer; an
// unknown user_id silently renders the non-admin view.
func (s *Server) GroupDashboard(c *fiber.Ctx) error {
	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	isAdmin := false
	var currentUser *models.User
	if raw := c.Query("user_id"); raw != "" {
		if id, perr := strconv.ParseUint(raw, 10, 32); perr == nil {
			if u, uerr := s.userRepo.GetByID(c.UserContext(), uint(id)); uerr == nil {
				currentUser = u
				if admin, aerr := s.groupRepo.IsAdmin(c.UserContext(), group.ID, u.ID); aerr == nil {
					isAdmin = admin
				}
			}
		}
	}

	docs, err := s.docRepo.ListForGroup(c.UserContext(), group.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	members, err := s.membershipRepo.ListMembers(c.UserContext(), group.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return renderPage(c, "hoa_dashboard.html", fiber.Map{
		"Group":       group,
		"Documents":   docs,
		"Members":     members,
		"IsAdmin":     isAdmin,
		"CurrentUser": currentUser,
	})
}
