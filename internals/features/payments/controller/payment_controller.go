package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bookingModel "fitbook_backend/internals/features/bookings/model"
	classModel "fitbook_backend/internals/features/classes/model"
	dto "fitbook_backend/internals/features/payments/dto"
	paymentModel "fitbook_backend/internals/features/payments/model"
	service "fitbook_backend/internals/features/payments/service"
	slotModel "fitbook_backend/internals/features/slots/model"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE PAYMENT INTENT ======================= */
// POST /api/payments/create-payment-intent
// Issues a gateway order for the slot and hands the Snap token back to the
// client, which completes the card payment on the hosted checkout.
func (h *PaymentController) CreatePaymentIntent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var slot slotModel.SlotModel
	if err := h.DB.Where("slot_id = ?", req.SlotID).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Slot not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if slot.SlotStatus == slotModel.SlotStatusBooked {
		return fiber.NewError(fiber.StatusBadRequest, "Slot is already booked")
	}

	var member userModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	orderID := "booking-" + strings.ToLower(uuid.NewString())
	token, redirectURL, err := service.GenerateSnapToken(service.PaymentIntentInput{
		OrderID:      orderID,
		AmountIDR:    req.AmountIDR,
		CustomerName: member.UserName,
		Email:        member.Email,
		ItemName:     req.PackageType + " training package",
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Payment gateway error: "+err.Error())
	}

	return helper.JsonOK(c, dto.PaymentIntentResponse{
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* ======================= CONFIRM BOOKING ======================= */
// POST /api/payments/confirm-booking
// Runs the whole booking workflow in one transaction: slot lookup, booking
// insert, slot → booked, atomic class counter bump, transaction record with
// the trainer's display-name snapshot. Any failure rolls everything back.
func (h *PaymentController) ConfirmBooking(c *fiber.Ctx) error {
	memberID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ConfirmBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var booking bookingModel.BookingModel

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var slot slotModel.SlotModel
		if err := tx.Where("slot_id = ?", req.SlotID).First(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Slot not found")
			}
			return err
		}
		if slot.SlotStatus == slotModel.SlotStatusBooked || slot.SlotIsBooked {
			return fiber.NewError(fiber.StatusBadRequest, "Slot is already booked")
		}

		booking = bookingModel.BookingModel{
			BookingMemberID:      memberID,
			BookingTrainerID:     slot.SlotTrainerID,
			BookingSlotID:        slot.SlotID,
			BookingPackageType:   req.PackageType,
			BookingAmountIDR:     req.AmountIDR,
			BookingPaymentID:     req.PaymentID,
			BookingPaymentStatus: bookingModel.PaymentStatusCompleted,
			BookingStatus:        bookingModel.BookingStatusUpcoming,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// The status guard above ran inside this transaction; the WHERE
		// clause repeats it so a concurrent confirmation loses cleanly.
		res := tx.Model(&slotModel.SlotModel{}).
			Where("slot_id = ? AND slot_status = ?", slot.SlotID, slotModel.SlotStatusAvailable).
			Updates(map[string]any{
				"slot_status":    slotModel.SlotStatusBooked,
				"slot_is_booked": true,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Slot is already booked")
		}

		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", slot.SlotClassID).
			Update("class_booking_count", gorm.Expr("class_booking_count + 1")).Error; err != nil {
			return err
		}

		var trainerName string
		if err := tx.Table("trainers").
			Select("users.user_name").
			Joins("JOIN users ON users.id = trainers.trainer_user_id").
			Where("trainers.trainer_id = ?", slot.SlotTrainerID).
			Scan(&trainerName).Error; err != nil {
			return err
		}

		transaction := paymentModel.TransactionModel{
			TransactionBookingID:   booking.BookingID,
			TransactionMemberID:    memberID,
			TransactionTrainerID:   slot.SlotTrainerID,
			TransactionTrainerName: trainerName,
			TransactionAmountIDR:   req.AmountIDR,
			TransactionStatus:      paymentModel.TransactionStatusCompleted,
		}
		if len(req.GatewayPayload) > 0 {
			raw, err := json.Marshal(req.GatewayPayload)
			if err == nil {
				transaction.TransactionGatewayPayload = datatypes.JSON(raw)
			}
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, booking)
}

/* ======================= ADMIN STATS ======================= */
// GET /api/payments/admin-stats
func (h *PaymentController) AdminStats(c *fiber.Ctx) error {
	var totalRevenue int64
	if err := h.DB.Model(&paymentModel.TransactionModel{}).
		Select("COALESCE(SUM(transaction_amount_idr), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var count int64
	if err := h.DB.Model(&paymentModel.TransactionModel{}).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var recent []paymentModel.TransactionModel
	if err := h.DB.Order("transaction_created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{
		"total_revenue_idr":   totalRevenue,
		"transaction_count":   count,
		"recent_transactions": recent,
	})
}
