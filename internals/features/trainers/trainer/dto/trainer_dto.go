package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	slotModel "fitbook_backend/internals/features/slots/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
)

// TrainerResponse is the public trainer card: profile joined with the user
// display fields and, on detail views, the open slots.
type TrainerResponse struct {
	TrainerID       uuid.UUID             `json:"trainer_id"`
	UserID          uuid.UUID             `json:"user_id"`
	Name            string                `json:"name"`
	Email           string                `json:"email"`
	Bio             string                `json:"bio"`
	ExperienceYears int                   `json:"experience_years"`
	Skills          []string              `json:"skills"`
	Rating          float64               `json:"rating"`
	IsApproved      bool                  `json:"is_approved"`
	Slots           []slotModel.SlotModel `json:"slots,omitempty"`
}

// TrainerWithUserRow is the scan target for the trainers ⋈ users join.
type TrainerWithUserRow struct {
	TrainerID              uuid.UUID      `gorm:"column:trainer_id"`
	TrainerUserID          uuid.UUID      `gorm:"column:trainer_user_id"`
	TrainerBio             string         `gorm:"column:trainer_bio"`
	TrainerExperienceYears int            `gorm:"column:trainer_experience_years"`
	TrainerSkills          pq.StringArray `gorm:"column:trainer_skills;type:text[]"`
	TrainerRating          float64        `gorm:"column:trainer_rating"`
	TrainerIsApproved      bool           `gorm:"column:trainer_is_approved"`
	UserName               string         `gorm:"column:user_name"`
	Email                  string         `gorm:"column:email"`
}

func (r TrainerWithUserRow) ToResponse() TrainerResponse {
	return TrainerResponse{
		TrainerID:       r.TrainerID,
		UserID:          r.TrainerUserID,
		Name:            r.UserName,
		Email:           r.Email,
		Bio:             r.TrainerBio,
		ExperienceYears: r.TrainerExperienceYears,
		Skills:          []string(r.TrainerSkills),
		Rating:          r.TrainerRating,
		IsApproved:      r.TrainerIsApproved,
	}
}

func FromModel(t trainerModel.TrainerModel, userName, email string) TrainerResponse {
	return TrainerResponse{
		TrainerID:       t.TrainerID,
		UserID:          t.TrainerUserID,
		Name:            userName,
		Email:           email,
		Bio:             t.TrainerBio,
		ExperienceYears: t.TrainerExperienceYears,
		Skills:          []string(t.TrainerSkills),
		Rating:          t.TrainerRating,
		IsApproved:      t.TrainerIsApproved,
	}
}
