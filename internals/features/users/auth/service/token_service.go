package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"fitbook_backend/internals/configs"
	userModel "fitbook_backend/internals/features/users/user/model"
)

const accessTTL = 24 * time.Hour

// CreateAccessToken signs a bearer token carrying the user identity. The
// role claim is informational only; the middleware re-reads the role from
// the database on every request.
func CreateAccessToken(user userModel.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
