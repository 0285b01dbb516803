package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fitbook_backend/internals/features/forum/controller"
	authMiddleware "fitbook_backend/internals/middlewares/auth"
)

func ForumRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewForumController(db)

	api := app.Group("/api/forum")

	// Reads are public; the optional auth pass lets logged-in callers see
	// their own vote on each post.
	api.Get("/", authMiddleware.OptionalAuthMiddleware(db), ctrl.List)
	api.Get("/:id", authMiddleware.OptionalAuthMiddleware(db), ctrl.GetByID)

	api.Post("/", authMiddleware.AuthMiddleware(db), ctrl.Create)
	api.Patch("/:id", authMiddleware.AuthMiddleware(db), ctrl.Update)
	api.Delete("/:id", authMiddleware.AuthMiddleware(db), ctrl.Delete)
	api.Post("/:id/vote", authMiddleware.AuthMiddleware(db), ctrl.Vote)
	api.Post("/:id/comments", authMiddleware.AuthMiddleware(db), ctrl.Comment)
}
