package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pepine/internal/apperrors"
)

// ErrorHandler renders every error as the {status, message, error}
// envelope. Classified errors keep their message; internal ones are logged
// and surface only a generic line.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		var message interface{} = appErr.Message
		if len(appErr.Messages) > 0 {
			message = appErr.Messages
		}
		if appErr.Kind == apperrors.Internal {
			log.Printf("internal error: %v", appErr)
			message = "internal server error, check server logs"
		}
		return c.Status(status).JSON(fiber.Map{
			"status":  status,
			"message": message,
			"error":   appErr.Label(),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  fiberErr.Code,
			"message": fiberErr.Message,
			"error":   http.StatusText(fiberErr.Code),
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  fiber.StatusInternalServerError,
		"message": "internal server error, check server logs",
		"error":   "Internal Server Error",
	})
}
