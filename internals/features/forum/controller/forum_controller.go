package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitbook_backend/internals/constants"
	dto "fitbook_backend/internals/features/forum/dto"
	forumModel "fitbook_backend/internals/features/forum/model"
	helper "fitbook_backend/internals/helpers"
)

type ForumController struct {
	DB *gorm.DB
}

func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{DB: db}
}

func (h *ForumController) loadPost(id uuid.UUID) (*forumModel.ForumPostModel, error) {
	var post forumModel.ForumPostModel
	if err := h.DB.Where("forum_post_id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &post, nil
}

func (h *ForumController) userVoteFor(postID, userID uuid.UUID) (*string, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var vote forumModel.ForumPostVoteModel
	err := h.DB.Where("forum_post_vote_post_id = ? AND forum_post_vote_user_id = ?", postID, userID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote.ForumPostVoteType, nil
}

// callerID resolves the optional authenticated caller; uuid.Nil when
// anonymous.
func callerID(c *fiber.Ctx) uuid.UUID {
	if raw, ok := c.Locals(helper.LocUserID).(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			return id
		}
	}
	return uuid.Nil
}

/* ======================= LIST ======================= */
// GET /api/forum — public, newest first.
func (h *ForumController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&forumModel.ForumPostModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	type postRow struct {
		forumModel.ForumPostModel
		AuthorName string `gorm:"column:author_name"`
	}
	var rows []postRow
	if err := h.DB.Table("forum_posts").
		Select("forum_posts.*, users.user_name AS author_name").
		Joins("JOIN users ON users.id = forum_posts.forum_post_author_id").
		Order("forum_posts.forum_post_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	uid := callerID(c)
	out := make([]dto.PostResponse, 0, len(rows))
	for _, r := range rows {
		userVote, err := h.userVoteFor(r.ForumPostID, uid)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, dto.FromPostModel(r.ForumPostModel, r.AuthorName, userVote))
	}

	return helper.JsonList(c, out, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

/* ======================= DETAIL ======================= */
// GET /api/forum/:id — includes comments.
func (h *ForumController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}

	post, err := h.loadPost(id)
	if err != nil {
		return err
	}

	var authorName string
	if err := h.DB.Table("users").
		Select("user_name").
		Where("id = ?", post.ForumPostAuthorID).
		Scan(&authorName).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	userVote, err := h.userVoteFor(id, callerID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromPostModel(*post, authorName, userVote)

	var comments []dto.CommentResponse
	if err := h.DB.Table("forum_post_comments").
		Select(`forum_post_comments.forum_post_comment_id AS comment_id,
			forum_post_comments.forum_post_comment_user_id AS user_id,
			users.user_name,
			forum_post_comments.forum_post_comment_text AS text,
			forum_post_comments.forum_post_comment_created_at AS created_at`).
		Joins("JOIN users ON users.id = forum_post_comments.forum_post_comment_user_id").
		Where("forum_post_comments.forum_post_comment_post_id = ?", id).
		Order("forum_post_comments.forum_post_comment_created_at ASC").
		Scan(&comments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp.Comments = comments

	return helper.JsonOK(c, resp)
}

/* ======================= CREATE ======================= */
// POST /api/forum
func (h *ForumController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	post := forumModel.ForumPostModel{
		ForumPostAuthorID: userID,
		ForumPostTitle:    req.Title,
		ForumPostContent:  req.Content,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, post)
}

/* ======================= UPDATE ======================= */
// PATCH /api/forum/:id — author or admin.
func (h *ForumController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}
	post, err := h.loadPost(id)
	if err != nil {
		return err
	}
	if err := h.requireAuthorOrAdmin(c, post); err != nil {
		return err
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	if req.Title != nil {
		post.ForumPostTitle = *req.Title
	}
	if req.Content != nil {
		post.ForumPostContent = *req.Content
	}
	if err := h.DB.Save(post).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, post)
}

/* ======================= DELETE ======================= */
// DELETE /api/forum/:id — author or admin; votes and comments go with it.
func (h *ForumController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}
	post, err := h.loadPost(id)
	if err != nil {
		return err
	}
	if err := h.requireAuthorOrAdmin(c, post); err != nil {
		return err
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("forum_post_vote_post_id = ?", id).
			Delete(&forumModel.ForumPostVoteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("forum_post_comment_post_id = ?", id).
			Delete(&forumModel.ForumPostCommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("forum_post_id = ?", id).
			Delete(&forumModel.ForumPostModel{}).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{"post_id": id})
}

/* ======================= VOTE ======================= */
// POST /api/forum/:id/vote
// Three transitions, all inside one transaction with atomic tally updates:
//   no prior vote       → insert row, +1 on that tally
//   same direction      → remove row, -1 on that tally (toggle off)
//   opposite direction  → flip row, -1 old tally, +1 new tally
func (h *ForumController) Vote(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var post forumModel.ForumPostModel
		if err := tx.Where("forum_post_id = ?", id).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Post not found")
			}
			return err
		}

		var vote forumModel.ForumPostVoteModel
		verr := tx.Where("forum_post_vote_post_id = ? AND forum_post_vote_user_id = ?", id, userID).
			First(&vote).Error

		switch {
		case errors.Is(verr, gorm.ErrRecordNotFound):
			if err := tx.Create(&forumModel.ForumPostVoteModel{
				ForumPostVotePostID: id,
				ForumPostVoteUserID: userID,
				ForumPostVoteType:   req.VoteType,
			}).Error; err != nil {
				return err
			}
			return bumpTally(tx, id, req.VoteType, +1)

		case verr != nil:
			return verr

		case vote.ForumPostVoteType == req.VoteType:
			// toggle off
			if err := tx.Where("forum_post_vote_id = ?", vote.ForumPostVoteID).
				Delete(&forumModel.ForumPostVoteModel{}).Error; err != nil {
				return err
			}
			return bumpTally(tx, id, req.VoteType, -1)

		default:
			// flip
			if err := tx.Model(&forumModel.ForumPostVoteModel{}).
				Where("forum_post_vote_id = ?", vote.ForumPostVoteID).
				Update("forum_post_vote_type", req.VoteType).Error; err != nil {
				return err
			}
			if err := bumpTally(tx, id, vote.ForumPostVoteType, -1); err != nil {
				return err
			}
			return bumpTally(tx, id, req.VoteType, +1)
		}
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	post, err := h.loadPost(id)
	if err != nil {
		return err
	}
	userVote, err := h.userVoteFor(id, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, fiber.Map{
		"post_id":    id,
		"up_votes":   post.ForumPostUpVotes,
		"down_votes": post.ForumPostDownVotes,
		"user_vote":  userVote,
	})
}

// bumpTally moves one tally atomically, clamped at zero on the way down.
func bumpTally(tx *gorm.DB, postID uuid.UUID, voteType string, delta int) error {
	column := "forum_post_up_votes"
	if voteType == forumModel.VoteTypeDown {
		column = "forum_post_down_votes"
	}

	q := tx.Model(&forumModel.ForumPostModel{}).Where("forum_post_id = ?", postID)
	if delta > 0 {
		return q.Update(column, gorm.Expr(column+" + 1")).Error
	}
	return q.Update(column, gorm.Expr("CASE WHEN "+column+" > 0 THEN "+column+" - 1 ELSE 0 END")).Error
}

/* ======================= COMMENT ======================= */
// POST /api/forum/:id/comments
func (h *ForumController) Comment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid post id")
	}
	if _, err := h.loadPost(id); err != nil {
		return err
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return err
	}

	comment := forumModel.ForumPostCommentModel{
		ForumPostCommentPostID: id,
		ForumPostCommentUserID: userID,
		ForumPostCommentText:   req.Text,
	}
	if err := h.DB.Create(&comment).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, comment)
}

func (h *ForumController) requireAuthorOrAdmin(c *fiber.Ctx, post *forumModel.ForumPostModel) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if post.ForumPostAuthorID == userID {
		return nil
	}
	if helper.GetUserRoleFromToken(c) == constants.RoleAdmin {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Only the author or an admin can modify this post")
}
