package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ===================== Status enum ===================== */

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// RejectionCooldown: a rejected applicant may submit a new application one
// calendar month after the rejection's updated_at.
func RetryEligibleAt(rejectedAt time.Time) time.Time {
	return rejectedAt.AddDate(0, 1, 0)
}

/* ===================== Model ===================== */

type TrainerApplicationModel struct {
	ApplicationID     uuid.UUID `gorm:"column:application_id;type:uuid;primaryKey" json:"application_id"`
	ApplicationUserID uuid.UUID `gorm:"column:application_user_id;type:uuid;index;not null" json:"application_user_id"`

	ApplicationBio             string         `gorm:"column:application_bio;type:text;not null" json:"application_bio"`
	ApplicationExperienceYears int            `gorm:"column:application_experience_years;not null;default:0" json:"application_experience_years"`
	ApplicationSkills          pq.StringArray `gorm:"column:application_skills;type:text[]" json:"application_skills"`
	ApplicationAvailableDays   pq.StringArray `gorm:"column:application_available_days;type:text[]" json:"application_available_days"`

	ApplicationStatus        string  `gorm:"column:application_status;type:varchar(20);not null;default:'pending'" json:"application_status"`
	ApplicationAdminFeedback *string `gorm:"column:application_admin_feedback;type:text" json:"application_admin_feedback,omitempty"`

	ApplicationCreatedAt time.Time `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (TrainerApplicationModel) TableName() string { return "trainer_applications" }

func (a *TrainerApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if a.ApplicationID == uuid.Nil {
		a.ApplicationID = uuid.New()
	}
	if a.ApplicationStatus == "" {
		a.ApplicationStatus = ApplicationStatusPending
	}
	return nil
}
