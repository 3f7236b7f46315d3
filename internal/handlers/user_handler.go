package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/dto"
	"blogserver/internal/authctx"
	"blogserver/internal/policy"
	"blogserver/internal/repository"
	"blogserver/internal/security"
	"blogserver/internal/validate"
)

type UserHandler struct {
	Users *repository.UserRepository
}

// Get godoc
// @Summary  Fetch a user's public profile
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {object} model.User
// @Failure  404 {object} dto.ErrorResponse
// @Router   /user/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid user id")
	}

	user, err := h.Users.FindPublicByID(c.Context(), id)
	if err != nil {
		return errJSON(c, storeStatus(err), "User not found")
	}
	return c.JSON(user)
}

// Update applies the bearer's own profile changes. Role and password are not
// reachable from here.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var body dto.UpdateUserReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	fields := bson.M{}
	if body.UserName != nil {
		if err := validate.UserName(*body.UserName); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["user_name"] = strings.TrimSpace(*body.UserName)
	}
	if body.Email != nil {
		if err := validate.Email(*body.Email); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["email"] = strings.ToLower(strings.TrimSpace(*body.Email))
	}
	if body.Gender != nil {
		if err := validate.Gender(*body.Gender); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["gender"] = *body.Gender
	}
	if body.Age != nil {
		if err := validate.Age(*body.Age); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["age"] = *body.Age
	}
	if body.Bio != nil {
		if err := validate.Bio(*body.Bio); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		fields["bio"] = *body.Bio
	}
	if body.ProfilePicture != nil {
		fields["profile_picture"] = strings.TrimSpace(*body.ProfilePicture)
	}
	if len(fields) == 0 {
		return errJSON(c, http.StatusBadRequest, "No fields to update")
	}

	user, err := h.Users.UpdateFields(c.Context(), actor.ID, fields)
	if err != nil {
		return errJSON(c, storeStatus(err), "Cannot update user info")
	}
	return c.JSON(fiber.Map{
		"message": "User information updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var body dto.UpdatePasswordReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	user, err := h.Users.FindByID(c.Context(), actor.ID)
	if err != nil {
		return errJSON(c, storeStatus(err), "User not found")
	}
	if err := security.CheckPassword(user.Password, body.OldPassword); err != nil {
		return errJSON(c, http.StatusBadRequest, "Old password does not match")
	}
	if body.OldPassword == body.NewPassword {
		return errJSON(c, http.StatusBadRequest, "New password cannot be the same as the old one")
	}
	if err := validate.Password(body.NewPassword); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	hash, err := security.HashPassword(strings.TrimSpace(body.NewPassword))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Cannot update password")
	}
	if err := h.Users.UpdatePassword(c.Context(), actor.ID, hash); err != nil {
		return errJSON(c, storeStatus(err), "Cannot update password")
	}
	return c.JSON(fiber.Map{"message": "Password successfully updated"})
}

// UpdateRole changes another user's role. Gated on the actor's role, not on
// ownership.
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var body dto.UpdateRoleReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	if policy.Authorize(policy.ChangeRole, actor, bson.NilObjectID) == policy.Deny {
		return errJSON(c, http.StatusForbidden, "You don't have permission to update user roles")
	}

	targetID, err := bson.ObjectIDFromHex(body.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid user id")
	}
	if err := validate.Role(body.NewRole); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.Users.UpdateRole(c.Context(), targetID, body.NewRole)
	if err != nil {
		return errJSON(c, storeStatus(err), "User not found")
	}
	return c.JSON(fiber.Map{
		"message": "User role updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor, ok := authctx.ActorFrom(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	user, err := h.Users.Delete(c.Context(), actor.ID)
	if err != nil {
		return errJSON(c, storeStatus(err), "User not found")
	}

	clearSessionCookie(c)
	return c.JSON(fiber.Map{
		"message": "User successfully deleted",
		"user":    user,
	})
}
