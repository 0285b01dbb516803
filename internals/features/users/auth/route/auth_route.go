package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fitbook_backend/internals/features/users/auth/controller"
	middlewares "fitbook_backend/internals/middlewares"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
