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

type PostHandler struct {
	Posts *repository.PostRepository
}

// Create godoc
// @Summary  Create a post
// @Accept   json
// @Produce  json
// @Param    body body dto.CreatePostReq true "post fields"
// @Success  201 {object} model.Post
// @Failure  400 {object} dto.ErrorResponse
// @Router   /post [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var body dto.CreatePostReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := validatePostFields(body.Title, body.Desc, body.Content, body.Tags, body.PreviewPix, body.DetailPix); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	post, err := h.Posts.Insert(c.Context(), model.Post{
		Title:      strings.TrimSpace(body.Title),
		Desc:       strings.TrimSpace(body.Desc),
		Content:    strings.TrimSpace(body.Content),
		CreatorID:  actor.ID,
		Tags:       body.Tags,
		PreviewPix: body.PreviewPix,
		DetailPix:  body.DetailPix,
		Published:  body.Published,
	})
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Unable to create post")
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// List godoc
// @Summary  List published posts, newest first
// @Produce  json
// @Param    limit  query int    false "page size"
// @Param    cursor query string false "opaque cursor from a previous page"
// @Success  200 {object} dto.ListPostsResp[model.Post]
// @Router   /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", configs.DefaultLimitPosts))
	if limit <= 0 {
		limit = configs.DefaultLimitPosts
	}
	if limit > configs.MaxLimitPosts {
		limit = configs.MaxLimitPosts
	}

	items, next, err := h.Posts.ListPublished(c.Context(), c.Query("cursor"), limit)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			status = http.StatusBadRequest
		}
		return errJSON(c, status, err.Error())
	}
	if items == nil {
		items = []model.Post{}
	}

	return c.JSON(dto.ListPostsResp[model.Post]{
		Posts:      items,
		NextCursor: next,
		HasMore:    next != nil,
	})
}

// Get godoc
// @Summary  Fetch a single post
// @Produce  json
// @Param    id path string true "post id"
// @Success  200 {object} model.Post
// @Failure  404 {object} dto.ErrorResponse
// @Router   /post/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return errJSON(c, storeStatus(err), "Post not found")
	}
	return c.JSON(fiber.Map{"post": post})
}

// Update edits a post. Resolve first (404 wins over 403), then the ownership
// policy, then the mutation.
func (h *PostHandler) Update(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return errJSON(c, storeStatus(err), "Post not found")
	}
	if policy.Authorize(policy.EditOwnContent, actor, post.CreatorID) == policy.Deny {
		return errJSON(c, http.StatusForbidden, "You can only edit your own post")
	}

	var body dto.UpdatePostReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	fields := bson.M{}
	if body.Title != nil {
		if err := validate.PostTitle(*body.Title); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["title"] = strings.TrimSpace(*body.Title)
	}
	if body.Desc != nil {
		if err := validate.PostDesc(*body.Desc); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["desc"] = strings.TrimSpace(*body.Desc)
	}
	if body.Content != nil {
		if err := validate.PostContent(*body.Content); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["content"] = strings.TrimSpace(*body.Content)
	}
	if body.Tags != nil {
		if err := validate.Tags(*body.Tags); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["tags"] = *body.Tags
	}
	if body.PreviewPix != nil {
		if err := validate.PixURL(*body.PreviewPix); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["preview_pix"] = *body.PreviewPix
	}
	if body.DetailPix != nil {
		if err := validate.PixURL(*body.DetailPix); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["detail_pix"] = *body.DetailPix
	}
	if body.Published != nil {
		fields["published"] = *body.Published
	}
	if len(fields) == 0 {
		return errJSON(c, http.StatusBadRequest, "No fields to update")
	}

	updated, err := h.Posts.Update(c.Context(), id, fields)
	if err != nil {
		return errJSON(c, storeStatus(err), "Could not edit post")
	}
	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    updated,
	})
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return errJSON(c, storeStatus(err), "Post not found")
	}
	if policy.Authorize(policy.DeleteOwnContent, actor, post.CreatorID) == policy.Deny {
		return errJSON(c, http.StatusForbidden, "You can only delete your own post")
	}

	deleted, err := h.Posts.Delete(c.Context(), id)
	if err != nil {
		return errJSON(c, storeStatus(err), "Error deleting post")
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
		"post":    deleted,
	})
}

// Like toggles the bearer's like on a post.
func (h *PostHandler) Like(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid post id")
	}

	post, err := h.Posts.ToggleLike(c.Context(), id, actor.ID)
	if err != nil {
		return errJSON(c, storeStatus(err), "Post not found")
	}
	return c.JSON(fiber.Map{
		"message": "Like status updated",
		"post":    post,
	})
}

func validatePostFields(title, desc, content string, tags []string, previewPix, detailPix string) error {
	if err := validate.PostTitle(title); err != nil {
		return err
	}
	if err := validate.PostDesc(desc); err != nil {
		return err
	}
	if err := validate.PostContent(content); err != nil {
		return err
	}
	if err := validate.Tags(tags); err != nil {
		return err
	}
	if err := validate.PixURL(previewPix); err != nil {
		return err
	}
	return validate.PixURL(detailPix)
}
