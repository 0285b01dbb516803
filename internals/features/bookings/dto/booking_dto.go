package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

// MyBookingRow joins the booking with the trainer, class and slot display
// fields for the member dashboard.
type MyBookingRow struct {
	BookingID            uuid.UUID `gorm:"column:booking_id" json:"booking_id"`
	BookingSlotID        uuid.UUID `gorm:"column:booking_slot_id" json:"slot_id"`
	BookingTrainerID     uuid.UUID `gorm:"column:booking_trainer_id" json:"trainer_id"`
	TrainerName          string    `gorm:"column:trainer_name" json:"trainer_name"`
	ClassName            string    `gorm:"column:class_name" json:"class_name"`
	SlotStartTime        time.Time `gorm:"column:slot_start_time" json:"slot_start_time"`
	BookingPackageType   string    `gorm:"column:booking_package_type" json:"package_type"`
	BookingAmountIDR     int       `gorm:"column:booking_amount_idr" json:"amount_idr"`
	BookingStatus        string    `gorm:"column:booking_status" json:"status"`
	BookingPaymentStatus string    `gorm:"column:booking_payment_status" json:"payment_status"`
	BookingReviewRating  *int      `gorm:"column:booking_review_rating" json:"review_rating,omitempty"`
	BookingCreatedAt     time.Time `gorm:"column:booking_created_at" json:"created_at"`
}
