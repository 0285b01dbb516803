package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TrainerModel is created when an admin approves a trainer application and
// hard-deleted on admin removal (the user reverts to member).
type TrainerModel struct {
	TrainerID     uuid.UUID `gorm:"column:trainer_id;type:uuid;primaryKey" json:"trainer_id"`
	TrainerUserID uuid.UUID `gorm:"column:trainer_user_id;type:uuid;uniqueIndex;not null" json:"trainer_user_id"`

	TrainerBio             string         `gorm:"column:trainer_bio;type:text" json:"trainer_bio"`
	TrainerExperienceYears int            `gorm:"column:trainer_experience_years;not null;default:0" json:"trainer_experience_years"`
	TrainerSkills          pq.StringArray `gorm:"column:trainer_skills;type:text[]" json:"trainer_skills"`

	// Mean of all reviewed bookings for this trainer, rounded to 1 decimal.
	// Recomputed inside the review transaction.
	TrainerRating     float64 `gorm:"column:trainer_rating;not null;default:0" json:"trainer_rating"`
	TrainerIsApproved bool    `gorm:"column:trainer_is_approved;not null;default:false" json:"trainer_is_approved"`

	TrainerCreatedAt time.Time `gorm:"column:trainer_created_at;autoCreateTime" json:"trainer_created_at"`
	TrainerUpdatedAt time.Time `gorm:"column:trainer_updated_at;autoUpdateTime" json:"trainer_updated_at"`
}

func (TrainerModel) TableName() string { return "trainers" }

func (t *TrainerModel) BeforeCreate(tx *gorm.DB) error {
	if t.TrainerID == uuid.Nil {
		t.TrainerID = uuid.New()
	}
	return nil
}
