package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const TransactionStatusCompleted = "completed"

// TransactionModel is the audit record of a completed payment, written in
// the same transaction as the booking it belongs to. The raw gateway
// payload is kept as JSON for reconciliation.
type TransactionModel struct {
	TransactionID        uuid.UUID `gorm:"column:transaction_id;type:uuid;primaryKey" json:"transaction_id"`
	TransactionBookingID uuid.UUID `gorm:"column:transaction_booking_id;type:uuid;index;not null" json:"transaction_booking_id"`
	TransactionMemberID  uuid.UUID `gorm:"column:transaction_member_id;type:uuid;index;not null" json:"transaction_member_id"`
	TransactionTrainerID uuid.UUID `gorm:"column:transaction_trainer_id;type:uuid;index;not null" json:"transaction_trainer_id"`

	// Display name snapshot so dashboards survive trainer removal.
	TransactionTrainerName string `gorm:"column:transaction_trainer_name;size:100" json:"transaction_trainer_name"`

	TransactionAmountIDR int    `gorm:"column:transaction_amount_idr;not null" json:"transaction_amount_idr"`
	TransactionStatus    string `gorm:"column:transaction_status;type:varchar(20);not null;default:'completed'" json:"transaction_status"`

	TransactionGatewayPayload datatypes.JSON `gorm:"column:transaction_gateway_payload" json:"transaction_gateway_payload,omitempty"`

	TransactionCreatedAt time.Time `gorm:"column:transaction_created_at;autoCreateTime" json:"transaction_created_at"`
}

func (TransactionModel) TableName() string { return "transactions" }

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.TransactionID == uuid.Nil {
		t.TransactionID = uuid.New()
	}
	if t.TransactionStatus == "" {
		t.TransactionStatus = TransactionStatusCompleted
	}
	return nil
}
