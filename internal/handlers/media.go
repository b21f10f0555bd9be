package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/config"
)

// allowed upload extensions
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaHandler serves and stores product images. The catalog itself only
// ever references media by URL; this is the storage edge behind those URLs.
type MediaHandler struct {
	cfg *config.Config
}

// NewMediaHandler constructs a MediaHandler.
func NewMediaHandler(cfg *config.Config) *MediaHandler {
	return &MediaHandler{cfg: cfg}
}

// Upload stores an uploaded image under a random name and returns its URL.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.BadRequestf("make sure the file is an image")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return apperrors.BadRequestf("file extension %s is not allowed", ext)
	}

	if err := os.MkdirAll(h.cfg.MediaDir, 0o755); err != nil {
		return apperrors.Internalf("failed to prepare media directory: %v", err)
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.cfg.MediaDir, name)); err != nil {
		return apperrors.Internalf("failed to store file: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":    fiber.StatusCreated,
		"message":   "Image uploaded successfully.",
		"secureUrl": fmt.Sprintf("%s/media/%s", c.BaseURL(), name),
	})
}

// Get serves a stored image by file name.
func (h *MediaHandler) Get(c *fiber.Ctx) error {
	path, err := h.imagePath(c.Params("imageName"))
	if err != nil {
		return err
	}
	return c.SendFile(path)
}

// Delete removes a stored image by file name.
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	path, err := h.imagePath(c.Params("imageName"))
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return apperrors.Internalf("failed to delete file: %v", err)
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Image " + filepath.Base(path) + " successfully deleted.",
	})
}

func (h *MediaHandler) imagePath(imageName string) (string, error) {
	// filepath.Base strips any traversal components from the parameter.
	name := filepath.Base(imageName)
	path := filepath.Join(h.cfg.MediaDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.NotFoundf("no image found with name %s", name)
	}
	return path, nil
}
