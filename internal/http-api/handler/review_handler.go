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

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.POST("", requireAuth, h.Create)
	rg.GET("", h.List)
	rg.GET("/summary/:bookId", h.Summary)
	rg.PATCH("/:id/approve", requireAuth, requireAdmin, h.Approve)
	rg.DELETE("/:id", requireAuth, requireAdmin, h.Reject)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var in dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	review, err := h.svc.Create(ctx, c.GetString(middleware.ContextUserID), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyReviewed):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusCreated, dto.FromModelToReviewResponse(*review))
}

func (h *ReviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")
	bookID := c.Query("book_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	reviews, total, err := h.svc.List(ctx, status, bookID, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.FromModelToReviewResponse(r))
	}
	pagination := dto.NewPagination(total, page, limit)
	respondPage(c, resp, &pagination)
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	summary, err := h.svc.Summary(ctx, c.Param("bookId"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, summary)
}

func (h *ReviewHandler) Approve(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Approve(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "review approved")
}

func (h *ReviewHandler) Reject(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Reject(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "review rejected")
}
