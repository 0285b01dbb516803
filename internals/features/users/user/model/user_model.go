package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
)

// UserModel represents the users table. Users are never hard-deleted; the
// role can be demoted instead (trainer removal sets it back to member).
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null" json:"user_name"`
	Email    string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"size:255" json:"-"`
	GoogleID *string   `gorm:"size:255" json:"google_id,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleMember
	}
	return nil
}
