package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/classes/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func ClassRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	api := app.Group("/api/classes")
	api.Get("/", ctrl.List)

	adminOnly := []fiber.Handler{
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
	}
	api.Post("/", append(adminOnly, ctrl.Create)...)
	api.Put("/:id", append(adminOnly, ctrl.Update)...)
	api.Delete("/:id", append(adminOnly, ctrl.Delete)...)
}
