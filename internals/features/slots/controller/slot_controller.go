package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	classModel "fitbook_backend/internals/features/classes/model"
	dto "fitbook_backend/internals/features/slots/dto"
	slotModel "fitbook_backend/internals/features/slots/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	helper "fitbook_backend/internals/helpers"
)

type SlotController struct {
	DB *gorm.DB
}

func NewSlotController(db *gorm.DB) *SlotController {
	return &SlotController{DB: db}
}

// trainerForUser resolves the caller's trainer profile.
func (h *SlotController) trainerForUser(userID uuid.UUID) (*trainerModel.TrainerModel, error) {
	var trainer trainerModel.TrainerModel
	if err := h.DB.Where("trainer_user_id = ?", userID).First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "No trainer profile for this account")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &trainer, nil
}

/* ======================= LIST (public) ======================= */
// GET /api/slots/trainer/:trainerId — unbooked slots only.
func (h *SlotController) ListByTrainer(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("trainerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid trainer id")
	}

	var slots []slotModel.SlotModel
	if err := h.DB.
		Where("slot_trainer_id = ? AND slot_status = ?", trainerID, slotModel.SlotStatusAvailable).
		Order("slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, slots)
}

/* ======================= MY SLOTS (trainer) ======================= */
// GET /api/slots/my-slots — includes booked slots.
func (h *SlotController) MySlots(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	trainer, err := h.trainerForUser(userID)
	if err != nil {
		return err
	}

	var slots []slotModel.SlotModel
	if err := h.DB.
		Where("slot_trainer_id = ?", trainer.TrainerID).
		Order("slot_start_time ASC").
		Find(&slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, slots)
}

/* ======================= CREATE (trainer) ======================= */
// POST /api/slots — bound to the caller's own trainer profile and an
// active class.
func (h *SlotController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	trainer, err := h.trainerForUser(userID)
	if err != nil {
		return err
	}

	var req dto.CreateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var cls classModel.ClassModel
	if err := h.DB.Where("class_id = ? AND class_is_active = ?", req.ClassID, true).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Class not found or inactive")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	slot := req.ToModel()
	slot.SlotTrainerID = trainer.TrainerID
	if err := h.DB.Create(&slot).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, slot)
}

/* ======================= UPDATE ======================= */
// PATCH /api/slots/:id
// 404 missing, 403 someone else's slot (admin exempt), 400 once booked.
func (h *SlotController) Update(c *fiber.Ctx) error {
	slot, err := h.guardedSlot(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	if req.StartTime != nil {
		slot.SlotStartTime = *req.StartTime
	}
	if req.DurationMinutes != nil {
		slot.SlotDurationMinutes = *req.DurationMinutes
	}
	if req.SelectedDays != nil {
		slot.SlotSelectedDays = pq.StringArray(*req.SelectedDays)
	}

	if err := h.DB.Save(slot).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, slot)
}

/* ======================= DELETE ======================= */
// DELETE /api/slots/:id — same guards as update.
func (h *SlotController) Delete(c *fiber.Ctx) error {
	slot, err := h.guardedSlot(c)
	if err != nil {
		return err
	}

	if err := h.DB.Where("slot_id = ?", slot.SlotID).
		Delete(&slotModel.SlotModel{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"slot_id": slot.SlotID})
}

// guardedSlot loads the slot and applies the shared mutation guards:
// not found → 404, foreign slot → 403, booked → 400. The booked check runs
// last so a booked slot answers 400 regardless of caller.
func (h *SlotController) guardedSlot(c *fiber.Ctx) (*slotModel.SlotModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid slot id")
	}

	var slot slotModel.SlotModel
	if err := h.DB.Where("slot_id = ?", id).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Slot not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if helper.GetUserRoleFromToken(c) != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, err
		}
		trainer, err := h.trainerForUser(userID)
		if err != nil {
			return nil, err
		}
		if trainer.TrainerID != slot.SlotTrainerID {
			return nil, fiber.NewError(fiber.StatusForbidden, "You do not own this slot")
		}
	}

	if slot.SlotStatus == slotModel.SlotStatusBooked || slot.SlotIsBooked {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Slot is booked and cannot be modified")
	}

	return &slot, nil
}
