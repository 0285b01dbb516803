package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriberModel struct {
	SubscriberID    uuid.UUID `gorm:"column:subscriber_id;type:uuid;primaryKey" json:"subscriber_id"`
	SubscriberEmail string    `gorm:"column:subscriber_email;size:255;uniqueIndex;not null" json:"subscriber_email"`
	SubscriberName  string    `gorm:"column:subscriber_name;size:100" json:"subscriber_name"`

	SubscriberCreatedAt time.Time `gorm:"column:subscriber_created_at;autoCreateTime" json:"subscriber_created_at"`
}

func (NewsletterSubscriberModel) TableName() string { return "newsletter_subscribers" }

func (s *NewsletterSubscriberModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubscriberID == uuid.Nil {
		s.SubscriberID = uuid.New()
	}
	return nil
}
