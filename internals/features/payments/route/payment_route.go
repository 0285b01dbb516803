package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	controller "fitbook_backend/internals/features/payments/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	api := app.Group("/api/payments")
	api.Post("/create-payment-intent",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Only members can book sessions", constants.RoleMember),
		ctrl.CreatePaymentIntent)
	api.Post("/confirm-booking",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Only members can book sessions", constants.RoleMember),
		ctrl.ConfirmBooking)
	api.Get("/admin-stats",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Admin access required", constants.RoleAdmin),
		ctrl.AdminStats)
}
