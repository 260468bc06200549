package handler

import (
	"github.com/gofiber/fiber/v2"

	"promptpix/internal/domain"
	"promptpix/internal/service"
)

type FeedHandler struct {
	creationService service.CreationService
}

func NewFeedHandler(creationService service.CreationService) *FeedHandler {
	return &FeedHandler{creationService: creationService}
}

// GetFeed returns public creations, newest first by default.
func (h *FeedHandler) GetFeed(c *fiber.Ctx) error {
	sort := domain.FeedSort(c.Query("sort_by", string(domain.FeedSortLatest)))

	creations, err := h.creationService.GetFeedCreations(c.Context(), sort, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(creations)
}

// GetPicked returns the admin-curated creations for the home screen.
func (h *FeedHandler) GetPicked(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 9)

	creations, err := h.creationService.GetPickedCreations(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(creations)
}
