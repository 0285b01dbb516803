package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/bookings/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func BookingRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewBookingController(db)

	api := app.Group("/api/bookings",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Member access required", constants.RoleMember))
	api.Get("/my-bookings", ctrl.MyBookings)
	api.Post("/:id/review", ctrl.Review)
}
