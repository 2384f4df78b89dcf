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

type CollegeHandler struct {
	svc service.CollegeService
}

func NewCollegeHandler(svc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{svc: svc}
}

func (h *CollegeHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/graduates", h.Graduates)
	rg.GET("/research-papers/recommended", h.RecommendedPapers)
	rg.GET("/college-for-admission", h.ForAdmission)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAuth, requireAdmin, h.Create)
	rg.PUT("/:id", requireAuth, requireAdmin, h.Update)
	rg.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
}

func (h *CollegeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	search := c.Query("search")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	colleges, pagination, err := h.svc.List(ctx, search, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondPage(c, colleges, pagination)
}

func (h *CollegeHandler) Graduates(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	graduates, err := h.svc.Graduates(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, graduates)
}

func (h *CollegeHandler) RecommendedPapers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	papers, err := h.svc.RecommendedPapers(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, papers)
}

func (h *CollegeHandler) ForAdmission(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	colleges, pagination, err := h.svc.ForAdmission(ctx, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondPage(c, colleges, pagination)
}

func (h *CollegeHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	college, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, college)
}

func (h *CollegeHandler) Create(c *gin.Context) {
	var in dto.CreateCollegeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	college, err := h.svc.Create(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrCollegeExists) {
			respondError(c, http.StatusConflict, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, college)
}

func (h *CollegeHandler) Update(c *gin.Context) {
	var in dto.UpdateCollegeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	college, err := h.svc.Update(ctx, c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCollegeNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCollegeExists):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusOK, college)
}

func (h *CollegeHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCollegeNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "college deleted")
}
