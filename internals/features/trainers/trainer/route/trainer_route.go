package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	applicationController "fitbook_backend/internals/features/trainers/application/controller"
	controller "fitbook_backend/internals/features/trainers/trainer/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func TrainerRoutes(app *fiber.App, db *gorm.DB) {
	trainerCtrl := controller.NewTrainerController(db)
	appCtrl := applicationController.NewApplicationController(db)

	api := app.Group("/api/trainers")

	// Application lifecycle. Registered before "/:id" so the static
	// segments are not swallowed by the param route.
	api.Post("/apply",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Only members can apply as trainers", constants.RoleMember),
		appCtrl.Apply)
	api.Get("/my-application",
		authMiddleware.AuthMiddleware(db),
		appCtrl.MyApplication)
	api.Get("/applications",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
		appCtrl.List)
	api.Patch("/applications/:id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
		appCtrl.Review)

	// Public listings
	api.Get("/", trainerCtrl.List)
	api.Get("/:id", trainerCtrl.GetByID)

	// Admin removal
	api.Delete("/:id",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
		trainerCtrl.Delete)
}
