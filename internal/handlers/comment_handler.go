package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/configs"
	"blogserver/dto"
	"blogserver/internal/authctx"
	"blogserver/internal/policy"
	"blogserver/internal/repository"
	"blogserver/internal/validate"
	"blogserver/model"
)

type CommentHandler struct {
	Comments *repository.CommentRepository
	Posts    *repository.PostRepository
}

// Create godoc
// @Summary  Comment on a post
// @Accept   json
// @Produce  json
// @Param    postId path string true "post id"
// @Param    body body dto.CreateCommentReq true "comment text"
// @Success  201 {object} model.Comment
// @Failure  400 {object} dto.ErrorResponse
// @Router   /post/{postId}/comment [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	var body dto.CreateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	text := strings.TrimSpace(body.Text)
	if err := validate.CommentText(text); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	if _, err := h.Posts.FindByID(c.Context(), postID); err != nil {
		return errJSON(c, storeStatus(err), "Post not found")
	}

	exists, err := h.Comments.Exists(c.Context(), postID, actor.ID, text)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Unable to post comment")
	}
	if exists {
		return errJSON(c, http.StatusBadRequest, "Oops! You've already said that")
	}

	com, err := h.Comments.Insert(c.Context(), postID, actor.ID, text)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Unable to post comment")
	}

	// Not atomic with the insert above; a crash here leaves a comment the
	// post does not reference.
	if err := h.Posts.PushComment(c.Context(), postID, com.ID); err != nil {
		return errJSON(c, http.StatusInternalServerError, "Unable to post comment")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Commented successfully",
		"comment": com,
	})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid comment id")
	}

	com, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return errJSON(c, storeStatus(err), "Comment not found")
	}
	if policy.Authorize(policy.EditOwnContent, actor, com.CommentorID) == policy.Deny {
		return errJSON(c, http.StatusForbidden, "You can only edit your own comment")
	}

	var body dto.UpdateCommentReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	text := strings.TrimSpace(body.Text)
	if err := validate.CommentText(text); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	updated, err := h.Comments.UpdateText(c.Context(), cid, text)
	if err != nil {
		return errJSON(c, storeStatus(err), "Could not edit comment")
	}
	return c.JSON(fiber.Map{
		"message": "Comment updated successfully",
		"comment": updated,
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid comment id")
	}

	com, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return errJSON(c, storeStatus(err), "Comment not found")
	}
	if policy.Authorize(policy.DeleteOwnContent, actor, com.CommentorID) == policy.Deny {
		return errJSON(c, http.StatusForbidden, "You can only delete your own comment")
	}

	deleted, err := h.Comments.Delete(c.Context(), cid)
	if err != nil {
		return errJSON(c, storeStatus(err), "Error deleting comment")
	}
	if err := h.Posts.PullComment(c.Context(), deleted.PostID, deleted.ID); err != nil {
		return errJSON(c, http.StatusInternalServerError, "Error deleting comment")
	}
	return c.JSON(fiber.Map{
		"message": "Comment deleted successfully",
		"comment": deleted,
	})
}

// Like toggles the bearer's like on a comment.
func (h *CommentHandler) Like(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	cid, err := bson.ObjectIDFromHex(c.Params("commentId"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid comment id")
	}

	com, err := h.Comments.ToggleLike(c.Context(), cid, actor.ID)
	if err != nil {
		return errJSON(c, storeStatus(err), "Comment not found")
	}
	return c.JSON(fiber.Map{
		"message": "Like status updated",
		"comment": com,
	})
}

// List godoc
// @Summary  List a post's comments, newest first
// @Produce  json
// @Param    postId path  string true  "post id"
// @Param    limit  query int    false "page size"
// @Param    cursor query string false "opaque cursor from a previous page"
// @Success  200 {object} dto.ListCommentsResp[model.Comment]
// @Router   /post/{postId}/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	postID, err := bson.ObjectIDFromHex(c.Params("postId"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	limit := int64(c.QueryInt("limit", configs.DefaultLimitComments))
	if limit <= 0 {
		limit = configs.DefaultLimitComments
	}
	if limit > configs.MaxLimitComments {
		limit = configs.MaxLimitComments
	}

	items, next, err := h.Comments.ListByPost(c.Context(), postID, c.Query("cursor"), limit)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			status = http.StatusBadRequest
		}
		return errJSON(c, status, err.Error())
	}
	if len(items) == 0 {
		return c.JSON(fiber.Map{
			"message":  "No comments found",
			"comments": []model.Comment{},
		})
	}

	return c.JSON(dto.ListCommentsResp[model.Comment]{
		Comments:   items,
		NextCursor: next,
		HasMore:    next != nil,
	})
}
