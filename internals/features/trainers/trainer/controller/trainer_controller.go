package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	classModel "fitbook_backend/internals/features/classes/model"
	slotModel "fitbook_backend/internals/features/slots/model"
	dto "fitbook_backend/internals/features/trainers/trainer/dto"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

type TrainerController struct {
	DB *gorm.DB
}

func NewTrainerController(db *gorm.DB) *TrainerController {
	return &TrainerController{DB: db}
}

/* ======================= LIST (public) ======================= */
// GET /api/trainers
func (h *TrainerController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Table("trainers").
		Joins("JOIN users ON users.id = trainers.trainer_user_id").
		Where("trainers.trainer_is_approved = ?", true).
		Where("users.is_active = ?", true).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.TrainerWithUserRow
	if err := base.
		Select("trainers.*, users.user_name, users.email").
		Order("trainers.trainer_rating DESC, trainers.trainer_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.TrainerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToResponse())
	}

	return helper.JsonList(c, out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================= DETAIL (public) ======================= */
// GET /api/trainers/:id
func (h *TrainerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid trainer id")
	}

	var row dto.TrainerWithUserRow
	err = h.DB.Table("trainers").
		Select("trainers.*, users.user_name, users.email").
		Joins("JOIN users ON users.id = trainers.trainer_user_id").
		Where("trainers.trainer_id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trainer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := row.ToResponse()

	// Open slots belong on the detail card so members can book directly.
	if err := h.DB.
		Where("slot_trainer_id = ? AND slot_status = ?", id, slotModel.SlotStatusAvailable).
		Order("slot_start_time ASC").
		Find(&resp.Slots).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, resp)
}

/* ======================= REMOVE (admin) ======================= */
// DELETE /api/trainers/:id
// Removes the trainer profile, their class assignments and unbooked slots,
// and demotes the user back to member. Bookings and transactions keep
// their snapshots.
func (h *TrainerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid trainer id")
	}

	var trainer trainerModel.TrainerModel
	if err := h.DB.Where("trainer_id = ?", id).First(&trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Trainer not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_trainer_trainer_id = ?", id).
			Delete(&classModel.ClassTrainerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("slot_trainer_id = ? AND slot_status = ?", id, slotModel.SlotStatusAvailable).
			Delete(&slotModel.SlotModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trainer_id = ?", id).
			Delete(&trainerModel.TrainerModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&userModel.UserModel{}).
			Where("id = ?", trainer.TrainerUserID).
			Update("role", constants.RoleMember).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"trainer_id": id})
}
