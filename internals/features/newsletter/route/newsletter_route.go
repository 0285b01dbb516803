package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/newsletter/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func NewsletterRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	api := app.Group("/api/newsletter")
	api.Post("/subscribe", ctrl.Subscribe)
	api.Get("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
		ctrl.List)
}
