package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/bind"
	"github.com/shashiranjanraj/vendora/pkg/middleware"
	"github.com/shashiranjanraj/vendora/pkg/response"
	"github.com/shashiranjanraj/vendora/pkg/validate"
)

// AuthController exposes signup, login, refresh, profile and password
// change endpoints.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.Signup(body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusConflict, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}

	response.Created(w, user)
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, pair, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		response.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	response.Success(w, map[string]interface{}{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user":    user,
	})
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token in the response context never rotates.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var body refreshRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	access, err := c.service.Refresh(body.Refresh)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	response.Success(w, map[string]string{"access": access})
}

// profileResponse flattens the user record into the shape API clients bind.
type profileResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.service.Profile(userID)
	if err != nil {
		response.NotFound(w)
		return
	}

	response.Success(w, profileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsAdmin:   user.Admin,
		CreatedAt: user.CreatedAt,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6"`
}

func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body changePasswordRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.ChangePassword(userID, body.CurrentPassword, body.NewPassword); err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not change password")
		return
	}

	response.Message(w, "password updated")
}
