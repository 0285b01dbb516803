package controller

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fitbook_backend/internals/features/bookings/dto"
	bookingModel "fitbook_backend/internals/features/bookings/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	helper "fitbook_backend/internals/helpers"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

/* ======================= MY BOOKINGS (member) ======================= */
// GET /api/bookings/my-bookings
func (h *BookingController) MyBookings(c *fiber.Ctx) error {
	memberID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []dto.MyBookingRow
	if err := h.DB.Table("bookings").
		Select(`bookings.*, users.user_name AS trainer_name, classes.class_name, slots.slot_start_time`).
		Joins("JOIN slots ON slots.slot_id = bookings.booking_slot_id").
		Joins("JOIN classes ON classes.class_id = slots.slot_class_id").
		Joins("JOIN trainers ON trainers.trainer_id = bookings.booking_trainer_id").
		Joins("JOIN users ON users.id = trainers.trainer_user_id").
		Where("bookings.booking_member_id = ?", memberID).
		Order("bookings.booking_created_at DESC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, rows)
}

/* ======================= REVIEW (member) ======================= */
// POST /api/bookings/:id/review
// Attaches a one-time review to the member's own booking, marks it
// completed and recomputes the trainer's rating (mean of all reviewed
// bookings, one decimal) in the same transaction.
func (h *BookingController) Review(c *fiber.Ctx) error {
	memberID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking id")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var booking bookingModel.BookingModel

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Booking not found")
			}
			return err
		}
		if booking.BookingMemberID != memberID {
			return fiber.NewError(fiber.StatusForbidden, "You can only review your own bookings")
		}
		if booking.BookingReviewRating != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Booking has already been reviewed")
		}

		booking.BookingReviewRating = &req.Rating
		if req.Feedback != "" {
			booking.BookingReviewFeedback = &req.Feedback
		}
		booking.BookingStatus = bookingModel.BookingStatusCompleted
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		rating, err := meanReviewRating(tx, booking.BookingTrainerID)
		if err != nil {
			return err
		}
		return tx.Model(&trainerModel.TrainerModel{}).
			Where("trainer_id = ?", booking.BookingTrainerID).
			Update("trainer_rating", rating).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, booking)
}

// meanReviewRating scans every reviewed booking for the trainer and rounds
// the arithmetic mean to one decimal.
func meanReviewRating(tx *gorm.DB, trainerID uuid.UUID) (float64, error) {
	var ratings []int
	if err := tx.Model(&bookingModel.BookingModel{}).
		Where("booking_trainer_id = ? AND booking_review_rating IS NOT NULL", trainerID).
		Pluck("booking_review_rating", &ratings).Error; err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10, nil
}
