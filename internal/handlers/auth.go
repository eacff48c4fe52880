package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/contest-tracker/internal/constants"
	"github.com/yukikurage/contest-tracker/internal/dto"
	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
	"github.com/yukikurage/contest-tracker/internal/middleware"
	"github.com/yukikurage/contest-tracker/internal/services"
)

// AuthHandler coordinates account HTTP handlers.
type AuthHandler struct {
	authService  *services.AuthService
	tokenTTL     time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. Cookies carry the Secure flag
// when secureCookie is set.
func NewAuthHandler(authService *services.AuthService, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenTTL:     tokenTTL,
		secureCookie: secureCookie,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"max=100"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login authenticates a user and sets the token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setTokenCookie(c, constants.AuthTokenCookie, result.Token, int(h.tokenTTL.Seconds()))

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:      result.Token,
		User:       dto.ToUserDTO(*result.User),
		RedirectTo: middleware.TakeCallbackURL(c),
	})
}

// Logout expires both the current and the legacy token cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, constants.AuthTokenCookie, "", -1)
	h.setTokenCookie(c, constants.LegacyTokenCookie, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile changes the display name and optionally the password.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	type UpdateProfileRequest struct {
		Name            string `json:"name" binding:"max=100"`
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), middleware.ViewerID(c), services.UpdateProfileInput{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.secureCookie, true)
}
