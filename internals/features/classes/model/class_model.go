package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID          uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`
	ClassName        string    `gorm:"column:class_name;size:100;not null" json:"class_name"`
	ClassDescription string    `gorm:"column:class_description;type:text" json:"class_description"`

	// Derived counter, bumped atomically inside the booking-confirmation
	// transaction.
	ClassBookingCount int  `gorm:"column:class_booking_count;not null;default:0" json:"class_booking_count"`
	ClassIsActive     bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}

// ClassTrainerModel assigns trainers to a class.
type ClassTrainerModel struct {
	ClassTrainerClassID   uuid.UUID `gorm:"column:class_trainer_class_id;type:uuid;primaryKey" json:"class_trainer_class_id"`
	ClassTrainerTrainerID uuid.UUID `gorm:"column:class_trainer_trainer_id;type:uuid;primaryKey" json:"class_trainer_trainer_id"`

	ClassTrainerCreatedAt time.Time `gorm:"column:class_trainer_created_at;autoCreateTime" json:"class_trainer_created_at"`
}

func (ClassTrainerModel) TableName() string { return "class_trainers" }
