package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	dto "fitbook_backend/internals/features/trainers/application/dto"
	applicationModel "fitbook_backend/internals/features/trainers/application/model"
	trainerModel "fitbook_backend/internals/features/trainers/trainer/model"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

type ApplicationController struct {
	DB *gorm.DB
}

func NewApplicationController(db *gorm.DB) *ApplicationController {
	return &ApplicationController{DB: db}
}

/* ======================= APPLY (member) ======================= */
// POST /api/trainers/apply
func (h *ApplicationController) Apply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	// Latest application decides eligibility:
	//   pending/approved → blocked outright
	//   rejected         → blocked for one calendar month from the rejection
	var last applicationModel.TrainerApplicationModel
	err = h.DB.Where("application_user_id = ?", userID).
		Order("application_created_at DESC").
		First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if err == nil {
		switch last.ApplicationStatus {
		case applicationModel.ApplicationStatusPending:
			return fiber.NewError(fiber.StatusBadRequest, "You already have a pending application")
		case applicationModel.ApplicationStatusApproved:
			return fiber.NewError(fiber.StatusBadRequest, "Your application has already been approved")
		case applicationModel.ApplicationStatusRejected:
			retryAt := applicationModel.RetryEligibleAt(last.ApplicationUpdatedAt)
			if time.Now().Before(retryAt) {
				return fiber.NewError(fiber.StatusForbidden,
					"You can re-apply on or after "+retryAt.Format("2006-01-02"))
			}
		}
	}

	app := req.ToModel()
	app.ApplicationUserID = userID
	if err := h.DB.Create(&app).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, app)
}

/* ======================= MY APPLICATION (member) ======================= */
// GET /api/trainers/my-application
func (h *ApplicationController) MyApplication(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var app applicationModel.TrainerApplicationModel
	if err := h.DB.Where("application_user_id = ?", userID).
		Order("application_created_at DESC").
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No application found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, app)
}

/* ======================= LIST (admin) ======================= */
// GET /api/trainers/applications?status=
func (h *ApplicationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&applicationModel.TrainerApplicationModel{}).Session(&gorm.Session{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("application_status = ?", status).Session(&gorm.Session{})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var apps []applicationModel.TrainerApplicationModel
	if err := q.Order("application_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&apps).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, apps, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================= REVIEW (admin) ======================= */
// PATCH /api/trainers/applications/:id
// pending → approved: creates the trainer profile and promotes the user.
// pending → rejected: stores feedback; re-application opens after cooldown.
// Both transitions are terminal for this application row.
func (h *ApplicationController) Review(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid application id")
	}

	var req dto.ReviewApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}
	if req.Action == "reject" && strings.TrimSpace(req.AdminFeedback) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "admin_feedback is required when rejecting")
	}

	var app applicationModel.TrainerApplicationModel
	if err := h.DB.Where("application_id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if app.ApplicationStatus != applicationModel.ApplicationStatusPending {
		return fiber.NewError(fiber.StatusBadRequest, "Application has already been reviewed")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Action == "approve" {
			app.ApplicationStatus = applicationModel.ApplicationStatusApproved
			if fb := strings.TrimSpace(req.AdminFeedback); fb != "" {
				app.ApplicationAdminFeedback = &fb
			}
			if err := tx.Save(&app).Error; err != nil {
				return err
			}

			trainer := trainerModel.TrainerModel{
				TrainerUserID:          app.ApplicationUserID,
				TrainerBio:             app.ApplicationBio,
				TrainerExperienceYears: app.ApplicationExperienceYears,
				TrainerSkills:          app.ApplicationSkills,
				TrainerIsApproved:      true,
			}
			if err := tx.Create(&trainer).Error; err != nil {
				return err
			}

			return tx.Model(&userModel.UserModel{}).
				Where("id = ?", app.ApplicationUserID).
				Update("role", constants.RoleTrainer).Error
		}

		fb := strings.TrimSpace(req.AdminFeedback)
		app.ApplicationStatus = applicationModel.ApplicationStatusRejected
		app.ApplicationAdminFeedback = &fb
		return tx.Save(&app).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, app)
}
