package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogserver/dto"
	"blogserver/internal/repository"
	"blogserver/internal/security"
	"blogserver/internal/token"
	"blogserver/internal/validate"
	"blogserver/model"
)

type AuthHandler struct {
	Users     *repository.UserRepository
	JWTSecret string
}

// Register godoc
// @Summary  Register a new user
// @Accept   json
// @Produce  json
// @Param    body body dto.RegisterReq true "registration fields"
// @Success  201 {object} model.User
// @Failure  400 {object} dto.ErrorResponse
// @Router   /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	if err := validate.UserName(body.UserName); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.Email(body.Email); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.Password(body.Password); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.Gender(body.Gender); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.Age(body.Age); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}
	if err := validate.Bio(body.Bio); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	hash, err := security.HashPassword(strings.TrimSpace(body.Password))
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to register user")
	}

	user, err := h.Users.Insert(c.Context(), model.User{
		UserName:       strings.TrimSpace(body.UserName),
		Email:          strings.ToLower(strings.TrimSpace(body.Email)),
		Password:       hash,
		Gender:         body.Gender,
		Age:            body.Age,
		Bio:            body.Bio,
		ProfilePicture: strings.TrimSpace(body.ProfilePicture),
		Role:           model.RoleUser,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return errJSON(c, http.StatusBadRequest, "userName or email already taken")
	}
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to register user")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary  Log in with email and password
// @Accept   json
// @Produce  json
// @Param    body body dto.LoginReq true "credentials"
// @Success  200 {object} map[string]string
// @Failure  401 {object} dto.ErrorResponse
// @Router   /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if body.Email == "" || body.Password == "" {
		return errJSON(c, http.StatusBadRequest, "email and password are required")
	}

	user, err := h.Users.FindByEmail(c.Context(), strings.ToLower(strings.TrimSpace(body.Email)))
	if errors.Is(err, repository.ErrNotFound) {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "login failed")
	}
	if user.CredentialAccount || user.Password == "" {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}
	if err := security.CheckPassword(user.Password, body.Password); err != nil {
		return errJSON(c, http.StatusUnauthorized, "invalid credentials")
	}

	return h.issueSession(c, user, "Logged in successfully")
}

// CredentialRegister signs in a user whose identity is vouched for by an
// external credential provider, creating the account on first sight. No
// password is stored for these users.
func (h *AuthHandler) CredentialRegister(c *fiber.Ctx) error {
	var body dto.CredentialReq
	if err := c.BodyParser(&body); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	if err := validate.Email(body.Email); err != nil {
		return errJSON(c, http.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	user, err := h.Users.FindByEmail(c.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		if err := validate.UserName(body.UserName); err != nil {
			return errJSON(c, http.StatusBadRequest, err.Error())
		}
		user, err = h.Users.Insert(c.Context(), model.User{
			UserName:          strings.TrimSpace(body.UserName),
			Email:             email,
			CredentialAccount: true,
			Role:              model.RoleUser,
		})
		if errors.Is(err, repository.ErrDuplicate) {
			return errJSON(c, http.StatusBadRequest, "userName or email already taken")
		}
	}
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "authentication failed")
	}

	return h.issueSession(c, user, "Authenticated successfully")
}

// Logout godoc
// @Summary  Log out and clear the session cookie
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) issueSession(c *fiber.Ctx, user model.User, message string) error {
	tok, err := token.Issue(h.JWTSecret, user.ID.Hex(), user.Role)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "failed to issue token")
	}
	setSessionCookie(c, tok, token.TTL)
	return c.JSON(fiber.Map{
		"message": message,
		"token":   tok,
	})
}
