package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"fitbook_backend/internals/configs"
	userModel "fitbook_backend/internals/features/users/user/model"
	helper "fitbook_backend/internals/helpers"
)

// OptionalAuthMiddleware resolves the caller identity when a valid bearer
// token is present and stays silent otherwise. Public listings use it to
// personalize responses (e.g. the caller's own forum vote).
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return c.Next()
		}
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return c.Next()
		}
		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}

		var user userModel.UserModel
		if err := db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
			return c.Next()
		}

		c.Locals(helper.LocUserID, user.ID.String())
		c.Locals(helper.LocUserRole, user.Role)
		c.Locals(helper.LocUserName, user.UserName)
		return c.Next()
	}
}
