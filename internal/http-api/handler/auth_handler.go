package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/middleware"
	"bookworm/internal/http-api/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.POST("/refresh", h.Refresh)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.POST("/verify-otp", h.VerifyOTP)
	rg.POST("/reset-password", h.ResetPassword)

	rg.GET("/profile", requireAuth, h.Profile)
	rg.PUT("/profile", requireAuth, h.UpdateProfile)
	rg.GET("/users", requireAuth, requireAdmin, h.ListUsers)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in dto.RegisterRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.svc.Register(ctx, in.Name, in.Email, in.Password, in.PhotoURL)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusCreated, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in dto.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	access, refresh, user, err := h.svc.Login(ctx, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(c, http.StatusOK, dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.FromModelToUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var in dto.RefreshRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Logout(ctx, in.RefreshToken); err != nil {
		respondError(c, http.StatusUnauthorized, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var in dto.RefreshRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	access, err := h.svc.RefreshAccessToken(ctx, in.RefreshToken)
	if err != nil {
		respondError(c, http.StatusUnauthorized, err.Error())
		return
	}
	respondData(c, http.StatusOK, gin.H{"access_token": access})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var in dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.ForgotPassword(ctx, in.Email)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// Same answer whether or not the account exists
	respondMessage(c, http.StatusOK, "if the account exists, a reset code has been sent")
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var in dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.VerifyOTP(ctx, in.Email, in.OTP); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "code verified")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var in dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.ResetPassword(ctx, in.Email, in.OTP, in.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "password updated")
}

func (h *AuthHandler) Profile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.svc.GetProfile(ctx, c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusNotFound, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var in dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.svc.UpdateProfile(ctx, c.GetString(middleware.ContextUserID), in.Name, in.PhotoURL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToUserResponse(user))
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	users, total, err := h.svc.ListUsers(ctx, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.FromModelToUserResponse(&users[i]))
	}
	pagination := dto.NewPagination(total, page, limit)
	respondPage(c, resp, &pagination)
}
