package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/seed"
)

// SeedHandler exposes the demo-data reset endpoint.
type SeedHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewSeedHandler constructs a SeedHandler.
func NewSeedHandler(db *gorm.DB, cfg *config.Config) *SeedHandler {
	return &SeedHandler{db: db, cfg: cfg}
}

// Run wipes the database and loads the demo dataset.
func (h *SeedHandler) Run(c *fiber.Ctx) error {
	if err := seed.Run(h.db, h.cfg); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Seed executed",
	})
}
