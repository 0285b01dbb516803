package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "fitbook_backend/internals/features/admin/route"
	bookingRoute "fitbook_backend/internals/features/bookings/route"
	classRoute "fitbook_backend/internals/features/classes/route"
	forumRoute "fitbook_backend/internals/features/forum/route"
	newsletterRoute "fitbook_backend/internals/features/newsletter/route"
	paymentRoute "fitbook_backend/internals/features/payments/route"
	slotRoute "fitbook_backend/internals/features/slots/route"
	trainerRoute "fitbook_backend/internals/features/trainers/trainer/route"
	authRoute "fitbook_backend/internals/features/users/auth/route"
)

// SetupRoutes wires every feature router onto the app with a shared DB handle.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up TrainerRoutes...")
	trainerRoute.TrainerRoutes(app, db)

	log.Println("[INFO] Setting up ClassRoutes...")
	classRoute.ClassRoutes(app, db)

	log.Println("[INFO] Setting up SlotRoutes...")
	slotRoute.SlotRoutes(app, db)

	log.Println("[INFO] Setting up PaymentRoutes...")
	paymentRoute.PaymentRoutes(app, db)

	log.Println("[INFO] Setting up BookingRoutes...")
	bookingRoute.BookingRoutes(app, db)

	log.Println("[INFO] Setting up ForumRoutes...")
	forumRoute.ForumRoutes(app, db)

	log.Println("[INFO] Setting up NewsletterRoutes...")
	newsletterRoute.NewsletterRoutes(app, db)

	log.Println("[INFO] Setting up AdminRoutes...")
	adminRoute.AdminRoutes(app, db)
}
