package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	dto "fitbook_backend/internals/features/users/auth/dto"
	service "fitbook_backend/internals/features/users/auth/service"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= REGISTER ======================= */
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == "" {
		req.Role = constants.RoleMember
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		IsActive: true,
	}

	// The duplicate-email and one-admin checks run inside the same
	// transaction as the insert so concurrent registrations serialize.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("email = ?", req.Email).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Email is already registered")
		}

		// Exactly one active administrator account may exist.
		if req.Role == constants.RoleAdmin {
			if err := tx.Model(&userModel.UserModel{}).
				Where("role = ? AND is_active = ?", constants.RoleAdmin, true).
				Count(&count).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
			if count > 0 {
				return fiber.NewError(fiber.StatusForbidden, "An administrator account already exists")
			}
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, dto.AuthResponse{User: dto.FromUserModel(user), Token: token})
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !service.CheckPassword(user.Password, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, dto.AuthResponse{User: dto.FromUserModel(user), Token: token})
}

/* ======================= GOOGLE LOGIN ======================= */
// POST /api/auth/google
func (h *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	claims, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	err = h.DB.Where("google_id = ?", claims.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First Google login: adopt an existing credential account with the
		// same email, otherwise create a fresh member.
		err = h.DB.Where("email = ?", strings.ToLower(claims.Email)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashed, herr := service.HashPassword(service.GenerateRandomPassword())
			if herr != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create account")
			}
			user = userModel.UserModel{
				UserName: claims.Name,
				Email:    strings.ToLower(claims.Email),
				Password: hashed,
				GoogleID: &claims.Sub,
				Role:     constants.RoleMember,
				IsActive: true,
			}
			if err := h.DB.Create(&user).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		} else {
			user.GoogleID = &claims.Sub
			if err := h.DB.Model(&user).Update("google_id", claims.Sub).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, dto.AuthResponse{User: dto.FromUserModel(user), Token: token})
}

/* ======================= ME ======================= */
// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, dto.FromUserModel(user))
}
