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

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.Use(requireAuth)
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.PATCH("/shelf", h.Move)
	rg.PATCH("/progress", h.UpdateProgress)
	rg.DELETE("/:bookId", h.Remove)
}

func (h *LibraryHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	entries, err := h.svc.List(ctx, c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	items := make([]dto.LibraryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromModelToLibraryEntryResponse(e))
	}
	respondData(c, http.StatusOK, dto.LibraryListResponse{Items: items, Total: len(items)})
}

func (h *LibraryHandler) Add(c *gin.Context) {
	var in dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	entry, err := h.svc.Add(ctx, c.GetString(middleware.ContextUserID), in.BookID, in.Shelf)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrAlreadyInLibrary):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondData(c, http.StatusCreated, dto.FromModelToLibraryEntryResponse(*entry))
}

func (h *LibraryHandler) Move(c *gin.Context) {
	var in dto.MoveBookRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	entry, err := h.svc.Move(ctx, c.GetString(middleware.ContextUserID), in.BookID, in.Shelf)
	if err != nil {
		if errors.Is(err, service.ErrNotInLibrary) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToLibraryEntryResponse(*entry))
}

func (h *LibraryHandler) UpdateProgress(c *gin.Context) {
	var in dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	entry, err := h.svc.UpdateProgress(ctx, c.GetString(middleware.ContextUserID), in.BookID, in.Progress)
	if err != nil {
		if errors.Is(err, service.ErrNotInLibrary) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, dto.FromModelToLibraryEntryResponse(*entry))
}

func (h *LibraryHandler) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Remove(ctx, c.GetString(middleware.ContextUserID), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, service.ErrNotInLibrary) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, http.StatusOK, "book removed from library")
}
