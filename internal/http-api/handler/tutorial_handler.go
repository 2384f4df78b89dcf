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

type TutorialHandler struct {
	svc service.TutorialService
}

func NewTutorialHandler(svc service.TutorialService) *TutorialHandler {
	return &TutorialHandler{svc: svc}
}

func (h *TutorialHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAuth, requireAdmin, h.Create)
	rg.PUT("/:id", requireAuth, requireAdmin, h.Update)
	rg.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
}

func (h *TutorialHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	tutorials, pagination, err := h.svc.List(ctx, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondPage(c, tutorials, pagination)
}

func (h *TutorialHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	tutorial, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTutorialNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, tutorial)
}

func (h *TutorialHandler) Create(c *gin.Context) {
	var in dto.CreateTutorialDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	tutorial, err := h.svc.Create(ctx, in, c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, tutorial)
}

func (h *TutorialHandler) Update(c *gin.Context) {
	var in dto.UpdateTutorialDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	tutorial, err := h.svc.Update(ctx, c.Param("id"), in)
	if err != nil {
		if errors.Is(err, service.ErrTutorialNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, tutorial)
}

func (h *TutorialHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTutorialNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "tutorial deleted")
}
