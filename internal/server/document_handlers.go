package server

import (
	"strconv"

	"hoahub/internal/middleware"
	"hoahub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type documentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  uint   `json:"user_id"`
}

func documentJSON(doc *models.Document) fiber.Map {
	return fiber.Map{
		"id":         doc.ID,
		"title":      doc.Title,
		"content":    doc.Content,
		"created_at": formatTime(doc.CreatedAt),
		"updated_at": formatTime(doc.UpdatedAt),
	}
}

// requireGroupAdmin verifies that userID names an existing user holding the
// admin role in the group. The permission check runs before any field
// validation so a non-admin never learns whether their payload was valid.
func (s *Server) requireGroupAdmin(c *fiber.Ctx, groupID, userID uint, action string) error {
	if userID == 0 {
		models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("User ID required"))
		return errResponseWritten
	}

	if _, err := s.userRepo.GetByID(c.UserContext(), userID); err != nil {
		models.RespondWithAppError(c, err)
		return errResponseWritten
	}

	isAdmin, err := s.groupRepo.IsAdmin(c.UserContext(), groupID, userID)
	if err != nil {
		models.RespondWithAppError(c, err)
		return errResponseWritten
	}
	if !isAdmin {
		models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only admins can "+action+" documents"))
		return errResponseWritten
	}
	return nil
}

// GetGroupDocuments lists a group's documents, most recent first.
func (s *Server) GetGroupDocuments(c *fiber.Ctx) error {
	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	docs, err := s.docRepo.ListForGroup(c.UserContext(), group.ID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	out := make([]fiber.Map, 0, len(docs))
	for i := range docs {
		out = append(out, documentJSON(&docs[i]))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"hoa_group_id": group.ID,
		"documents":    out,
	})
}

// CreateDocument creates a document in a group. Admin-only.
func (s *Server) CreateDocument(c *fiber.Ctx) error {
	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	var req documentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid JSON"))
	}

	if err := s.requireGroupAdmin(c, group.ID, req.UserID, "create"); err != nil {
		return nil
	}

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	doc := &models.Document{
		Title:      req.Title,
		Content:    req.Content,
		HOAGroupID: group.ID,
	}

	if err := s.docRepo.Create(c.UserContext(), doc); err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "document created",
		"document_id", doc.ID, "group_id", group.ID, "user_id", req.UserID)

	resp := documentJSON(doc)
	resp["message"] = "Document created successfully"
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateDocument replaces a document's title and content. Admin-only.
func (s *Server) UpdateDocument(c *fiber.Ctx) error {
	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	docID, err := parseID(c, "documentId", "Document")
	if err != nil {
		return nil
	}

	doc, err := s.docRepo.GetByID(c.UserContext(), group.ID, docID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	var req documentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid JSON"))
	}

	if err := s.requireGroupAdmin(c, group.ID, req.UserID, "update"); err != nil {
		return nil
	}

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	doc.Title = req.Title
	doc.Content = req.Content
	if err := s.docRepo.Update(c.UserContext(), doc); err != nil {
		return models.RespondWithAppError(c, err)
	}

	resp := documentJSON(doc)
	resp["message"] = "Document updated successfully"
	return c.Status(fiber.StatusOK).JSON(resp)
}

// DeleteDocument removes a document. Admin-only; the acting user is
// identified by the user_id query parameter.
func (s *Server) DeleteDocument(c *fiber.Ctx) error {
	group, err := s.requireGroup(c, "groupId")
	if err != nil {
		return nil
	}

	docID, err := parseID(c, "documentId", "Document")
	if err != nil {
		return nil
	}

	doc, err := s.docRepo.GetByID(c.UserContext(), group.ID, docID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err := s.requireGroupAdmin(c, group.ID, uint(userID), "delete"); err != nil {
		return nil
	}

	if err := s.docRepo.Delete(c.UserContext(), doc); err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "document deleted",
		"document_id", doc.ID, "group_id", group.ID, "user_id", userID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Document deleted successfully",
	})
}
