package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"promptpix/internal/domain"
	"promptpix/internal/middleware"
	"promptpix/internal/service"
)

const maxUploadSize = 50 * 1024 * 1024

type CreationHandler struct {
	creationService service.CreationService
}

func NewCreationHandler(creationService service.CreationService) *CreationHandler {
	return &CreationHandler{creationService: creationService}
}

func (h *CreationHandler) Upload(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > maxUploadSize {
		return middleware.BadRequest("File size must be less than 50MB")
	}

	input := domain.SaveCreationInput{
		Prompt:   c.FormValue("prompt"),
		IsPublic: true,
	}
	if gender := c.FormValue("gender"); gender != "" {
		input.Gender = &gender
	}
	if ageGroup := c.FormValue("age_group"); ageGroup != "" {
		input.AgeGroup = &ageGroup
	}
	if isPublic := c.FormValue("is_public"); isPublic != "" {
		parsed, err := strconv.ParseBool(isPublic)
		if err != nil {
			return middleware.BadRequest("Invalid is_public value")
		}
		input.IsPublic = parsed
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	upload := domain.Upload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Reader:      fileReader,
	}

	creation, err := h.creationService.SaveCreation(c.Context(), userID, upload, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(creation)
}

func (h *CreationHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creations, err := h.creationService.GetUserCreations(c.Context(), userID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(creations)
}

func (h *CreationHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creationID, err := getCreationID(c)
	if err != nil {
		return err
	}

	deleted, err := h.creationService.DeleteCreation(c.Context(), creationID, userID)
	if err != nil {
		switch err {
		case service.ErrCreationNotFound:
			return middleware.NotFound("Creation not found")
		case service.ErrNotOwner:
			return middleware.Forbidden("Not authorized to delete this creation")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(deleted)
}

func (h *CreationHandler) Like(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creationID, err := getCreationID(c)
	if err != nil {
		return err
	}

	liked, err := h.creationService.LikeCreation(c.Context(), creationID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"liked": liked})
}

func (h *CreationHandler) Unlike(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creationID, err := getCreationID(c)
	if err != nil {
		return err
	}

	removed, err := h.creationService.UnlikeCreation(c.Context(), creationID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"removed": removed})
}

func (h *CreationHandler) Liked(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)
	if userID == 0 {
		return middleware.Unauthorized("User not authenticated")
	}

	creationID, err := getCreationID(c)
	if err != nil {
		return err
	}

	liked, err := h.creationService.CheckIfLiked(c.Context(), creationID, userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"liked": liked})
}

func getCreationID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("creationId"), 10, 64)
	if err != nil || id < 1 {
		return 0, middleware.BadRequest("Invalid creation ID")
	}
	return id, nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if limit := c.QueryInt("limit", 10); limit > 0 {
		params.Limit = limit
	}
	if offset := c.QueryInt("offset", 0); offset > 0 {
		params.Offset = offset
	}

	params.Validate()
	return params
}
