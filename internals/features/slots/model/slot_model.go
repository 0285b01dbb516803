package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
)

// SlotModel is a bookable session window published by a trainer for one of
// the classes they are assigned to. Once booked it rejects edits and
// deletes until externally reset.
type SlotModel struct {
	SlotID        uuid.UUID `gorm:"column:slot_id;type:uuid;primaryKey" json:"slot_id"`
	SlotTrainerID uuid.UUID `gorm:"column:slot_trainer_id;type:uuid;index;not null" json:"slot_trainer_id"`
	SlotClassID   uuid.UUID `gorm:"column:slot_class_id;type:uuid;index;not null" json:"slot_class_id"`

	SlotStartTime       time.Time      `gorm:"column:slot_start_time;not null" json:"slot_start_time"`
	SlotDurationMinutes int            `gorm:"column:slot_duration_minutes;not null;default:60" json:"slot_duration_minutes"`
	SlotSelectedDays    pq.StringArray `gorm:"column:slot_selected_days;type:text[]" json:"slot_selected_days"`

	// status and is_booked move together inside the booking transaction.
	SlotStatus   string `gorm:"column:slot_status;type:varchar(20);not null;default:'available'" json:"slot_status"`
	SlotIsBooked bool   `gorm:"column:slot_is_booked;not null;default:false" json:"slot_is_booked"`

	SlotCreatedAt time.Time `gorm:"column:slot_created_at;autoCreateTime" json:"slot_created_at"`
	SlotUpdatedAt time.Time `gorm:"column:slot_updated_at;autoUpdateTime" json:"slot_updated_at"`
}

func (SlotModel) TableName() string { return "slots" }

func (s *SlotModel) BeforeCreate(tx *gorm.DB) error {
	if s.SlotID == uuid.Nil {
		s.SlotID = uuid.New()
	}
	if s.SlotStatus == "" {
		s.SlotStatus = SlotStatusAvailable
	}
	return nil
}
