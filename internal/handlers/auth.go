package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/middleware"
	"github.com/example/pepine/internal/services"
	"github.com/example/pepine/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"last_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Role      string `json:"role" validate:"omitempty,oneof=admin user"`
	Phone     string `json:"phone" validate:"required"`
}

// Register creates a new account and returns a session token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	user, token, err := h.auth.Register(services.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "The user has been successfully registered.",
		"id":      user.ID,
		"role":    user.Role,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates an existing user.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Login successful.",
		"id":      user.ID,
		"role":    user.Role,
		"token":   token,
	})
}

// Logout acknowledges the logout; sessions are stateless JWTs so the
// client just drops its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Logout successful.",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword sends a reset link to the given address.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	if err := h.auth.ForgotPassword(req.Email); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Email sent successfully.",
	})
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// ResetPassword sets a new password from an emailed token.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	user, err := h.auth.ResetPassword(token, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Password updated successfully.",
		"id":      user.ID,
	})
}

type updatePasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=50"`
}

// UpdatePassword changes the authenticated user's password.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return apperrors.Unauthorizedf("unauthorized")
	}

	var req updatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequestf("invalid request body")
	}
	if msgs := utils.ValidateStruct(req); len(msgs) > 0 {
		return apperrors.Validation(msgs)
	}

	if err := h.auth.UpdatePassword(user, req.Password, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Password updated successfully.",
	})
}
