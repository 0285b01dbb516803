package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/admin/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func AdminRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAdminController(db)

	api := app.Group("/api/admin",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin))
	api.Get("/stats", ctrl.Stats)
}
