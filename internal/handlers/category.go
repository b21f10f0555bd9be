package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/services"
	"github.com/example/pepine/internal/utils"
)

// CategoryHandler manages category endpoints.
type CategoryHandler struct {
	categories *services.CategoryService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryRequest struct {
	Value       string `json:"value" validate:"required,min=2,max=50"`
	Description string `json:"description"`
	Media       string `json:"media"`
}

// Create persists a new category; a duplicate value yields Conflict.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	category, err := h.categories.Create(services.CategoryInput{
		Value:       req.Value,
		Description: req.Description,
		Media:       req.Media,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   fiber.StatusCreated,
		"message":  "The category has been successfully registered.",
		"category": category,
	})
}

// List returns paginated categories with their media.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 20)

	categories, err := h.categories.List(pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     fiber.StatusOK,
		"message":    "Categories retrieved successfully.",
		"categories": categories,
	})
}

// Get returns one category.
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	category, err := h.categories.Get(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":   fiber.StatusOK,
		"message":  "Category retrieved successfully.",
		"category": category,
	})
}

// ListProducts returns the category detail with its paginated products
// and aggregate counts.
func (h *CategoryHandler) ListProducts(c *fiber.Ctx) error {
	id, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	pg := utils.ParsePagination(c, 20)

	page, err := h.categories.ProductsByCategory(id, pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":        fiber.StatusOK,
		"message":       "Products retrieved successfully.",
		"category":      page.Category,
		"products":      page.Products,
		"totalProducts": page.TotalProducts,
		"totalPages":    page.TotalPages,
	})
}

type updateCategoryRequest struct {
	Value       string `json:"value" validate:"omitempty,min=2,max=50"`
	Description string `json:"description"`
	Media       string `json:"media"`
}

// Update modifies a category.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	category, err := h.categories.Update(id, services.CategoryInput{
		Value:       req.Value,
		Description: req.Description,
		Media:       req.Media,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":   fiber.StatusOK,
		"message":  "Category updated successfully.",
		"category": category,
	})
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseCategoryID(c)
	if err != nil {
		return err
	}

	if err := h.categories.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Category with id #" + strconv.FormatUint(uint64(id), 10) + " has been deleted",
	})
}

func parseCategoryID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperrors.BadRequestf("invalid id")
	}
	return uint(id), nil
}
