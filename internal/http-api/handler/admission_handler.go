package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/middleware"
	"bookworm/internal/http-api/service"
)

type AdmissionHandler struct {
	svc service.AdmissionService
}

func NewAdmissionHandler(svc service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{svc: svc}
}

func (h *AdmissionHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.POST("", requireAuth, h.Apply)
	rg.GET("/mine", requireAuth, h.Mine)
	rg.GET("/college/:collegeId", requireAuth, requireAdmin, h.ByCollege)
}

func (h *AdmissionHandler) Apply(c *gin.Context) {
	var in dto.CreateAdmissionDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	admission, err := h.svc.Apply(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollegeNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyApplied):
			respondError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidDOB):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusCreated, admission)
}

// Mine lists the caller's own applications, matched by token email.
func (h *AdmissionHandler) Mine(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	admissions, err := h.svc.ListByEmail(ctx, c.GetString(middleware.ContextEmail))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, admissions)
}

func (h *AdmissionHandler) ByCollege(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	admissions, err := h.svc.ListByCollege(ctx, c.Param("collegeId"))
	if err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, admissions)
}
