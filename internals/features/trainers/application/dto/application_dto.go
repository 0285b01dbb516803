package dto

import (
	"github.com/lib/pq"

	applicationModel "fitbook_backend/internals/features/trainers/application/model"
)

type ApplyRequest struct {
	Bio             string   `json:"bio" validate:"required,min=20"`
	ExperienceYears int      `json:"experience_years" validate:"min=0,max=80"`
	Skills          []string `json:"skills" validate:"required,min=1,dive,required"`
	AvailableDays   []string `json:"available_days" validate:"required,min=1,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

type ReviewApplicationRequest struct {
	Action        string `json:"action" validate:"required,oneof=approve reject"`
	AdminFeedback string `json:"admin_feedback"`
}

func (r ApplyRequest) ToModel() applicationModel.TrainerApplicationModel {
	return applicationModel.TrainerApplicationModel{
		ApplicationBio:             r.Bio,
		ApplicationExperienceYears: r.ExperienceYears,
		ApplicationSkills:          pq.StringArray(r.Skills),
		ApplicationAvailableDays:   pq.StringArray(r.AvailableDays),
		ApplicationStatus:          applicationModel.ApplicationStatusPending,
	}
}
