package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pepine/internal/config"
	"github.com/example/pepine/internal/handlers"
	"github.com/example/pepine/internal/middleware"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	mailer := services.NewSMTPMailer(cfg)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(db, cfg, mailer))
	userHandler := handlers.NewUserHandler(services.NewUserService(db))
	productHandler := handlers.NewProductHandler(services.NewProductService(db))
	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(db))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(db))
	mediaHandler := handlers.NewMediaHandler(cfg)
	seedHandler := handlers.NewSeedHandler(db, cfg)

	authRequired := middleware.AuthMiddleware(db, cfg)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	auth := app.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password/:token", authHandler.ResetPassword)
	auth.Patch("/update-password", authRequired, authHandler.UpdatePassword)

	users := app.Group("/users", authRequired)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:term", productHandler.Get)
	products.Post("/", authRequired, adminOnly, productHandler.Create)
	products.Patch("/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/:id", authRequired, adminOnly, productHandler.Delete)

	categories := app.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.Get)
	categories.Get("/:id/products", categoryHandler.ListProducts)
	categories.Post("/", authRequired, adminOnly, categoryHandler.Create)
	categories.Patch("/:id", authRequired, adminOnly, categoryHandler.Update)
	categories.Delete("/:id", authRequired, adminOnly, categoryHandler.Delete)

	orders := app.Group("/orders", authRequired)
	orders.Post("/", orderHandler.Create)
	orders.Post("/products", orderHandler.AddProduct)
	orders.Get("/", adminOnly, orderHandler.List)
	orders.Get("/user/:id", orderHandler.ListByUser)
	orders.Get("/:id", orderHandler.Get)
	orders.Patch("/:id", adminOnly, orderHandler.Update)
	orders.Delete("/:id", adminOnly, orderHandler.Delete)

	media := app.Group("/media")
	media.Get("/:imageName", mediaHandler.Get)
	media.Post("/", authRequired, adminOnly, mediaHandler.Upload)
	media.Delete("/:imageName", authRequired, adminOnly, mediaHandler.Delete)

	app.Get("/seed", seedHandler.Run)
}
