package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingModel "fitbook_backend/internals/features/bookings/model"
	classModel "fitbook_backend/internals/features/classes/model"
	newsletterModel "fitbook_backend/internals/features/newsletter/model"
	paymentModel "fitbook_backend/internals/features/payments/model"
	applicationModel "fitbook_backend/internals/features/trainers/application/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

/* ======================= DASHBOARD STATS (admin) ======================= */
// GET /api/admin/stats
func (h *AdminController) Stats(c *fiber.Ctx) error {
	var (
		totalUsers          int64
		totalTrainers       int64
		activeClasses       int64
		totalBookings       int64
		upcomingBookings    int64
		pendingApplications int64
		newsletterCount     int64
		totalRevenueIDR     int64
	)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalUsers, h.DB.Model(&userModel.UserModel{})},
		{&totalTrainers, h.DB.Model(&trainerModel.TrainerModel{}).
			Where("trainer_is_approved = ?", true)},
		{&activeClasses, h.DB.Model(&classModel.ClassModel{}).
			Where("class_is_active = ?", true)},
		{&totalBookings, h.DB.Model(&bookingModel.BookingModel{})},
		{&upcomingBookings, h.DB.Model(&bookingModel.BookingModel{}).
			Where("booking_status = ?", bookingModel.BookingStatusUpcoming)},
		{&pendingApplications, h.DB.Model(&applicationModel.TrainerApplicationModel{}).
			Where("application_status = ?", applicationModel.ApplicationStatusPending)},
		{&newsletterCount, h.DB.Model(&newsletterModel.NewsletterSubscriberModel{})},
	}
	for _, cnt := range counts {
		if err := cnt.query.Count(cnt.dest).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	if err := h.DB.Model(&paymentModel.TransactionModel{}).
		Select("COALESCE(SUM(transaction_amount_idr), 0)").
		Scan(&totalRevenueIDR).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{
		"total_users":          totalUsers,
		"total_trainers":       totalTrainers,
		"active_classes":       activeClasses,
		"total_bookings":       totalBookings,
		"upcoming_bookings":    upcomingBookings,
		"pending_applications": pendingApplications,
		"newsletter_count":     newsletterCount,
		"total_revenue_idr":    totalRevenueIDR,
	})
}
