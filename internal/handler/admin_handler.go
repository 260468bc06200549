package handler

import (
	"github.com/gofiber/fiber/v2"

	"promptpix/internal/middleware"
	"promptpix/internal/service"
)

type AdminHandler struct {
	creationService service.CreationService
}

func NewAdminHandler(creationService service.CreationService) *AdminHandler {
	return &AdminHandler{creationService: creationService}
}

func (h *AdminHandler) TogglePick(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creationID, err := getCreationID(c)
	if err != nil {
		return err
	}

	status, err := h.creationService.ToggleAdminPick(c.Context(), creationID, userID)
	if err != nil {
		switch err {
		case service.ErrCreationNotFound:
			return middleware.NotFound("Creation not found")
		case service.ErrNotAdmin:
			return middleware.Forbidden("Admin role required")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(status)
}
