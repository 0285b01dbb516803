package dto

import (
	"github.com/google/uuid"

	classModel "fitbook_backend/internals/features/classes/model"
)

type CreateClassRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Description string      `json:"description"`
	TrainerIDs  []uuid.UUID `json:"trainer_ids"`
	IsActive    *bool       `json:"is_active"`
}

type UpdateClassRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string      `json:"description"`
	TrainerIDs  *[]uuid.UUID `json:"trainer_ids"`
	IsActive    *bool        `json:"is_active"`
}

type ClassResponse struct {
	ClassID      uuid.UUID   `json:"class_id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	BookingCount int         `json:"booking_count"`
	IsActive     bool        `json:"is_active"`
	TrainerIDs   []uuid.UUID `json:"trainer_ids"`
}

func FromModel(m classModel.ClassModel, trainerIDs []uuid.UUID) ClassResponse {
	if trainerIDs == nil {
		trainerIDs = []uuid.UUID{}
	}
	return ClassResponse{
		ClassID:      m.ClassID,
		Name:         m.ClassName,
		Description:  m.ClassDescription,
		BookingCount: m.ClassBookingCount,
		IsActive:     m.ClassIsActive,
		TrainerIDs:   trainerIDs,
	}
}
