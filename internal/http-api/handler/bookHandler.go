package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/service"
)

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", requireAuth, requireAdmin, h.Create)
	rg.PUT("/:id", requireAuth, requireAdmin, h.Update)
	rg.DELETE("/:id", requireAuth, requireAdmin, h.Delete)
}

func (h *BookHandler) List(c *gin.Context) {
	q := dto.BookListQuery{
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sort", "newest"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))
	if raw := c.Query("genres"); raw != "" {
		q.Genres = strings.Split(raw, ",")
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, total, err := h.svc.List(ctx, q)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.FromModelToBookResponse(b))
	}
	pagination := dto.NewPagination(total, q.Page, q.Limit)
	respondPage(c, resp, &pagination)
}

func (h *BookHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToBookResponse(*book))
}

func (h *BookHandler) Create(c *gin.Context) {
	var in dto.CreateBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.svc.Create(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidGenreID):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTitleTaken):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusCreated, dto.FromModelToBookResponse(*book))
}

func (h *BookHandler) Update(c *gin.Context) {
	var in dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book, err := h.svc.Update(ctx, c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidGenreID):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTitleTaken):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToBookResponse(*book))
}

func (h *BookHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "book deleted")
}
