package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "fitbook_backend/internals/features/classes/dto"
	classModel "fitbook_backend/internals/features/classes/model"
	slotModel "fitbook_backend/internals/features/slots/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	helper "fitbook_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

func (h *ClassController) trainerIDsFor(classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := h.DB.Model(&classModel.ClassTrainerModel{}).
		Where("class_trainer_class_id = ?", classID).
		Pluck("class_trainer_trainer_id", &ids).Error
	return ids, err
}

/* ======================= LIST (public) ======================= */
// GET /api/classes
func (h *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&classModel.ClassModel{}).
		Where("class_is_active = ?", true).
		Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var classes []classModel.ClassModel
	if err := q.Order("class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ClassResponse, 0, len(classes))
	for _, cls := range classes {
		ids, err := h.trainerIDsFor(cls.ClassID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.FromModel(cls, ids))
	}

	return helper.JsonList(c, out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================= CREATE (admin) ======================= */
// POST /api/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	cls := classModel.ClassModel{
		ClassName:        req.Name,
		ClassDescription: req.Description,
		ClassIsActive:    true,
	}
	if req.IsActive != nil {
		cls.ClassIsActive = *req.IsActive
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cls).Error; err != nil {
			return err
		}
		return h.assignTrainers(tx, cls.ClassID, req.TrainerIDs)
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, dto.FromModel(cls, req.TrainerIDs))
}

/* ======================= UPDATE (admin) ======================= */
// PUT /api/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var cls classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		cls.ClassName = *req.Name
	}
	if req.Description != nil {
		cls.ClassDescription = *req.Description
	}
	if req.IsActive != nil {
		cls.ClassIsActive = *req.IsActive
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&cls).Error; err != nil {
			return err
		}
		if req.TrainerIDs != nil {
			if err := tx.Where("class_trainer_class_id = ?", id).
				Delete(&classModel.ClassTrainerModel{}).Error; err != nil {
				return err
			}
			return h.assignTrainers(tx, id, *req.TrainerIDs)
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	ids, err := h.trainerIDsFor(id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, dto.FromModel(cls, ids))
}

/* ======================= DELETE (admin) ======================= */
// DELETE /api/classes/:id
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	var cls classModel.ClassModel
	if err := h.DB.Where("class_id = ?", id).First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Booked slots hold history against this class; refuse while any exist.
	var booked int64
	if err := h.DB.Model(&slotModel.SlotModel{}).
		Where("slot_class_id = ? AND slot_status = ?", id, slotModel.SlotStatusBooked).
		Count(&booked).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if booked > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Class has booked slots and cannot be deleted")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot_class_id = ?", id).
			Delete(&slotModel.SlotModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("class_trainer_class_id = ?", id).
			Delete(&classModel.ClassTrainerModel{}).Error; err != nil {
			return err
		}
		return tx.Where("class_id = ?", id).Delete(&classModel.ClassModel{}).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"class_id": id})
}

func (h *ClassController) assignTrainers(tx *gorm.DB, classID uuid.UUID, trainerIDs []uuid.UUID) error {
	for _, tid := range trainerIDs {
		var count int64
		if err := tx.Model(&trainerModel.TrainerModel{}).
			Where("trainer_id = ?", tid).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown trainer id: "+tid.String())
		}
		if err := tx.Create(&classModel.ClassTrainerModel{
			ClassTrainerClassID:   classID,
			ClassTrainerTrainerID: tid,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}
