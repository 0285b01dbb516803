package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/slots/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func SlotRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewSlotController(db)

	api := app.Group("/api/slots")
	api.Get("/trainer/:trainerId", ctrl.ListByTrainer)

	api.Get("/my-slots",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Trainer access required", constants.RoleTrainer),
		ctrl.MySlots)
	api.Post("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Trainer access required", constants.RoleTrainer),
		ctrl.Create)
	api.Patch("/:id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Trainer or admin access required", constants.RoleTrainer, constants.RoleAdmin),
		ctrl.Update)
	api.Delete("/:id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Trainer or admin access required", constants.RoleTrainer, constants.RoleAdmin),
		ctrl.Delete)
}
