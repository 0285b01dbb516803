package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VoteTypeUp   = "up"
	VoteTypeDown = "down"
)

type ForumPostModel struct {
	ForumPostID       uuid.UUID `gorm:"column:forum_post_id;type:uuid;primaryKey" json:"forum_post_id"`
	ForumPostAuthorID uuid.UUID `gorm:"column:forum_post_author_id;type:uuid;index;not null" json:"forum_post_author_id"`

	ForumPostTitle   string `gorm:"column:forum_post_title;size:200;not null" json:"forum_post_title"`
	ForumPostContent string `gorm:"column:forum_post_content;type:text;not null" json:"forum_post_content"`

	// Tallies are only moved with atomic UPDATE expressions inside the vote
	// transaction; clamped at zero.
	ForumPostUpVotes   int `gorm:"column:forum_post_up_votes;not null;default:0" json:"forum_post_up_votes"`
	ForumPostDownVotes int `gorm:"column:forum_post_down_votes;not null;default:0" json:"forum_post_down_votes"`

	ForumPostCreatedAt time.Time `gorm:"column:forum_post_created_at;autoCreateTime" json:"forum_post_created_at"`
	ForumPostUpdatedAt time.Time `gorm:"column:forum_post_updated_at;autoUpdateTime" json:"forum_post_updated_at"`
}

func (ForumPostModel) TableName() string { return "forum_posts" }

func (p *ForumPostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ForumPostID == uuid.Nil {
		p.ForumPostID = uuid.New()
	}
	return nil
}

// ForumPostVoteModel keeps at most one vote row per (post, user).
type ForumPostVoteModel struct {
	ForumPostVoteID     uuid.UUID `gorm:"column:forum_post_vote_id;type:uuid;primaryKey" json:"forum_post_vote_id"`
	ForumPostVotePostID uuid.UUID `gorm:"column:forum_post_vote_post_id;type:uuid;uniqueIndex:idx_forum_vote_post_user;not null" json:"forum_post_vote_post_id"`
	ForumPostVoteUserID uuid.UUID `gorm:"column:forum_post_vote_user_id;type:uuid;uniqueIndex:idx_forum_vote_post_user;not null" json:"forum_post_vote_user_id"`

	ForumPostVoteType string `gorm:"column:forum_post_vote_type;type:varchar(10);not null" json:"forum_post_vote_type"`

	ForumPostVoteCreatedAt time.Time `gorm:"column:forum_post_vote_created_at;autoCreateTime" json:"forum_post_vote_created_at"`
}

func (ForumPostVoteModel) TableName() string { return "forum_post_votes" }

func (v *ForumPostVoteModel) BeforeCreate(tx *gorm.DB) error {
	if v.ForumPostVoteID == uuid.Nil {
		v.ForumPostVoteID = uuid.New()
	}
	return nil
}

type ForumPostCommentModel struct {
	ForumPostCommentID     uuid.UUID `gorm:"column:forum_post_comment_id;type:uuid;primaryKey" json:"forum_post_comment_id"`
	ForumPostCommentPostID uuid.UUID `gorm:"column:forum_post_comment_post_id;type:uuid;index;not null" json:"forum_post_comment_post_id"`
	ForumPostCommentUserID uuid.UUID `gorm:"column:forum_post_comment_user_id;type:uuid;not null" json:"forum_post_comment_user_id"`

	ForumPostCommentText string `gorm:"column:forum_post_comment_text;type:text;not null" json:"forum_post_comment_text"`

	ForumPostCommentCreatedAt time.Time `gorm:"column:forum_post_comment_created_at;autoCreateTime" json:"forum_post_comment_created_at"`
}

func (ForumPostCommentModel) TableName() string { return "forum_post_comments" }

func (m *ForumPostCommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ForumPostCommentID == uuid.Nil {
		m.ForumPostCommentID = uuid.New()
	}
	return nil
}
