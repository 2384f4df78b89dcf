package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/names", h.Names)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAuth, requireAdmin, h.Create)
	rg.PUT("/:id", requireAuth, requireAdmin, h.Update)
	rg.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
}

func (h *GenreHandler) List(c *gin.Context) {
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

	genres, total, err := h.svc.List(ctx, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dto.GenreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, dto.FromModelToGenreResponse(g))
	}
	pagination := dto.NewPagination(total, page, limit)
	respondPage(c, resp, &pagination)
}

// Names serves the slim id/name list for filter dropdowns.
func (h *GenreHandler) Names(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genres, err := h.svc.Names(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dto.GenreNameResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, dto.GenreNameResponse{ID: g.ID, Name: g.Name})
	}
	respondData(c, http.StatusOK, resp)
}

func (h *GenreHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToGenreResponse(*genre))
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, err := h.svc.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrGenreExists) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, dto.FromModelToGenreResponse(*genre))
}

func (h *GenreHandler) Update(c *gin.Context) {
	var in dto.UpdateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	genre, err := h.svc.Update(ctx, c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGenreNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGenreExists):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToGenreResponse(*genre))
}

func (h *GenreHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "genre deleted")
}
