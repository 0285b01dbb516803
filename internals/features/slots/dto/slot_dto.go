package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	slotModel "fitbook_backend/internals/features/slots/model"
)

type CreateSlotRequest struct {
	ClassID         uuid.UUID `json:"class_id" validate:"required"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	SelectedDays    []string  `json:"selected_days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

type UpdateSlotRequest struct {
	StartTime       *time.Time `json:"start_time"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=15,max=240"`
	SelectedDays    *[]string  `json:"selected_days" validate:"omitempty,dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

func (r CreateSlotRequest) ToModel() slotModel.SlotModel {
	duration := r.DurationMinutes
	if duration == 0 {
		duration = 60
	}
	return slotModel.SlotModel{
		SlotClassID:         r.ClassID,
		SlotStartTime:       r.StartTime,
		SlotDurationMinutes: duration,
		SlotSelectedDays:    pq.StringArray(r.SelectedDays),
		SlotStatus:          slotModel.SlotStatusAvailable,
	}
}
