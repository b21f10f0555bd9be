package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/middleware"
	"github.com/example/pepine/internal/services"
	"github.com/example/pepine/internal/utils"
)

// UserHandler manages account administration endpoints.
type UserHandler struct {
	users *services.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns paginated accounts with aggregate counts.
func (h *UserHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, 20)

	page, err := h.users.List(pg.Offset, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":     fiber.StatusOK,
		"message":    "Users retrieved successfully.",
		"users":      page.Users,
		"totalUsers": page.TotalUsers,
		"totalPages": page.TotalPages,
	})
}

// Get returns one account; a plain user may only read their own.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	if !current.IsAdmin() && current.ID != id {
		return apperrors.Forbiddenf("you do not have permission to read this user")
	}

	user, err := h.users.Get(id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "User retrieved successfully.",
		"user":    user,
	})
}

type updateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=2,max=50"`
	Email     *string `json:"email" validate:"omitempty,email,max=50"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=50"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin user"`
	IsActive  *bool   `json:"is_active"`
	Phone     *string `json:"phone"`
}

// Update applies a partial account update.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	current, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	user, err := h.users.Update(id, current, services.UserUpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		IsActive:  req.IsActive,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "User updated successfully.",
		"user":    user,
	})
}

// Delete removes an account with its orders and products.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.BadRequestf("invalid id")
	}

	if err := h.users.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "User with id #" + id.String() + " has been deleted",
	})
}
