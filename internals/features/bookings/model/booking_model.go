package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"

	PaymentStatusCompleted = "completed"
)

// BookingModel is created only through payment confirmation and never
// deleted. A review can be attached once; the trainer's rating is
// recomputed inside the same transaction.
type BookingModel struct {
	BookingID        uuid.UUID `gorm:"column:booking_id;type:uuid;primaryKey" json:"booking_id"`
	BookingMemberID  uuid.UUID `gorm:"column:booking_member_id;type:uuid;index;not null" json:"booking_member_id"`
	BookingTrainerID uuid.UUID `gorm:"column:booking_trainer_id;type:uuid;index;not null" json:"booking_trainer_id"`
	BookingSlotID    uuid.UUID `gorm:"column:booking_slot_id;type:uuid;index;not null" json:"booking_slot_id"`

	BookingPackageType string `gorm:"column:booking_package_type;size:50;not null" json:"booking_package_type"`
	BookingAmountIDR   int    `gorm:"column:booking_amount_idr;not null;check:booking_amount_idr >= 0" json:"booking_amount_idr"`

	// Gateway order id echoed back at confirmation.
	BookingPaymentID     string `gorm:"column:booking_payment_id;size:128;not null" json:"booking_payment_id"`
	BookingPaymentStatus string `gorm:"column:booking_payment_status;type:varchar(20);not null;default:'completed'" json:"booking_payment_status"`
	BookingStatus        string `gorm:"column:booking_status;type:varchar(20);not null;default:'upcoming'" json:"booking_status"`

	BookingReviewRating   *int    `gorm:"column:booking_review_rating" json:"booking_review_rating,omitempty"`
	BookingReviewFeedback *string `gorm:"column:booking_review_feedback;type:text" json:"booking_review_feedback,omitempty"`

	BookingCreatedAt time.Time `gorm:"column:booking_created_at;autoCreateTime" json:"booking_created_at"`
	BookingUpdatedAt time.Time `gorm:"column:booking_updated_at;autoUpdateTime" json:"booking_updated_at"`
}

func (BookingModel) TableName() string { return "bookings" }

func (b *BookingModel) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	if b.BookingStatus == "" {
		b.BookingStatus = BookingStatusUpcoming
	}
	if b.BookingPaymentStatus == "" {
		b.BookingPaymentStatus = PaymentStatusCompleted
	}
	return nil
}
