package dto

import (
	"time"

	"github.com/google/uuid"

	forumModel "fitbook_backend/internals/features/forum/model"
)

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=3,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=3,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=up down"`
}

type CommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

type CommentResponse struct {
	CommentID uuid.UUID `json:"comment_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type PostResponse struct {
	PostID     uuid.UUID         `json:"post_id"`
	AuthorID   uuid.UUID         `json:"author_id"`
	AuthorName string            `json:"author_name"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	UpVotes    int               `json:"up_votes"`
	DownVotes  int               `json:"down_votes"`
	// The caller's own vote ("up"/"down"), null when none or anonymous.
	UserVote   *string           `json:"user_vote"`
	Comments   []CommentResponse `json:"comments,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

func FromPostModel(p forumModel.ForumPostModel, authorName string, userVote *string) PostResponse {
	return PostResponse{
		PostID:     p.ForumPostID,
		AuthorID:   p.ForumPostAuthorID,
		AuthorName: authorName,
		Title:      p.ForumPostTitle,
		Content:    p.ForumPostContent,
		UpVotes:    p.ForumPostUpVotes,
		DownVotes:  p.ForumPostDownVotes,
		UserVote:   userVote,
		CreatedAt:  p.ForumPostCreatedAt,
	}
}
