package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/features/newsletter/dto"
	"fitbook_backend/internals/features/newsletter/model"
	helper "fitbook_backend/internals/helpers"
)

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

/* ======================= SUBSCRIBE (public) ======================= */
// POST /api/newsletter/subscribe
func (h *NewsletterController) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing model.NewsletterSubscriberModel
	err := h.DB.Where("subscriber_email = ?", email).First(&existing).Error
	if err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email is already subscribed")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	sub := model.NewsletterSubscriberModel{
		SubscriberEmail: email,
		SubscriberName:  strings.TrimSpace(req.Name),
	}
	if err := h.DB.Create(&sub).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, sub)
}

/* ======================= LIST (admin) ======================= */
// GET /api/newsletter
func (h *NewsletterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	base := h.DB.Model(&model.NewsletterSubscriberModel{}).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var subs []model.NewsletterSubscriberModel
	if err := base.
		Order("subscriber_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&subs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, subs, helper.BuildPagination(total, paging.Page, paging.PerPage))
}
