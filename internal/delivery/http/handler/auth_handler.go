package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "padel-booking/internal/domain/user"
	"padel-booking/internal/middleware"
	"padel-booking/internal/usecase/auth"
	"padel-booking/pkg/utils"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/reset-password", h.RequestPasswordReset)
	router.PUT("/reset-password", h.ConfirmPasswordReset)
}

func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.PUT("/user/update", h.UpdateProfile)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)
	req.Name = utils.SanitizeString(req.Name)

	resp, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid credentials.")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req auth.ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Email is required.")
		return
	}

	req.Email = utils.SanitizeEmail(req.Email)

	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "No account with this email exists.")
			return
		}
		respondWithError(c, err)
		return
	}

	c.String(http.StatusOK, "Password reset email sent.")
}

func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req auth.ResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Token and password are required.")
		return
	}

	if err := h.service.ConfirmPasswordReset(c.Request.Context(), req.ResetToken, req.Password); err != nil {
		respondWithError(c, err)
		return
	}

	c.String(http.StatusOK, "Password updated successfully.")
}

// UpdateProfile relies on the auth middleware having verified the bearer
// token and stored the caller's email on the context.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	email := c.GetString(middleware.ContextEmailKey)
	if email == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req auth.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "No updates were provided.")
		return
	}

	if req.Name != nil {
		sanitized := utils.SanitizeString(*req.Name)
		req.Name = &sanitized
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), email, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
