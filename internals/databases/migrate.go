package database

import (
	"gorm.io/gorm"

	bookingModel "fitbook_backend/internals/features/bookings/model"
	classModel "fitbook_backend/internals/features/classes/model"
	forumModel "fitbook_backend/internals/features/forum/model"
	newsletterModel "fitbook_backend/internals/features/newsletter/model"
	paymentModel "fitbook_backend/internals/features/payments/model"
	slotModel "fitbook_backend/internals/features/slots/model"
	applicationModel "fitbook_backend/internals/features/trainers/application/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	userModel "fitbook_backend/internals/features/users/user/model"
)

// AutoMigrate creates/updates every table. Shared with the test helpers so
// sqlite test databases carry the same schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.UserModel{},
		&trainerModel.TrainerModel{},
		&applicationModel.TrainerApplicationModel{},
		&classModel.ClassModel{},
		&classModel.ClassTrainerModel{},
		&slotModel.SlotModel{},
		&bookingModel.BookingModel{},
		&paymentModel.TransactionModel{},
		&forumModel.ForumPostModel{},
		&forumModel.ForumPostVoteModel{},
		&forumModel.ForumPostCommentModel{},
		&newsletterModel.NewsletterSubscriberModel{},
	)
}
