package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/handler"
	"bookworm/internal/http-api/service"
)

type stubRecommender struct {
	gotUserID string
	gotLimit  int
	resp      *dto.RecommendationResponse
	err       error
}

func (s *stubRecommender) Recommend(ctx context.Context, userID string, limit int) (*dto.RecommendationResponse, error) {
	s.gotUserID = userID
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newRecommendationRouter(stub *stubRecommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewRecommendationHandler(stub).RegisterRoutes(r.Group("/api/v1/recommendations"))
	return r
}

func TestRecommendEndpointBadUserID(t *testing.T) {
	stub := &stubRecommender{err: service.ErrInvalidUserID}
	r := newRecommendationRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/recommendations/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid user ID", body["message"])
}

func TestRecommendEndpointPassesLimit(t *testing.T) {
	stub := &stubRecommender{
		resp: &dto.RecommendationResponse{
			Recommendations: []dto.RecommendationItem{
				{
					ID:     "b1",
					Title:  "Dune",
					Author: "Frank Herbert",
					Genre:  dto.RecommendationGenre{ID: "g1", Name: "Sci-Fi"},
					Reason: "Popular pick with 4.6★ rating",
				},
			},
			IsPersonalized: true,
			BooksRead:      5,
		},
	}
	r := newRecommendationRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/recommendations/5f0c9597-44ad-4c01-9c9a-26af0a0c8c64?limit=6", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5f0c9597-44ad-4c01-9c9a-26af0a0c8c64", stub.gotUserID)
	assert.Equal(t, 6, stub.gotLimit)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Recommendations []map[string]any `json:"recommendations"`
			IsPersonalized  bool             `json:"isPersonalized"`
			BooksRead       int              `json:"booksRead"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.IsPersonalized)
	assert.Equal(t, 5, body.Data.BooksRead)
	require.Len(t, body.Data.Recommendations, 1)
	assert.Equal(t, "b1", body.Data.Recommendations[0]["_id"])
	assert.Equal(t, "Sci-Fi", body.Data.Recommendations[0]["genre"].(map[string]any)["name"])
}

func TestRecommendEndpointDefaultsLimitToServiceDefault(t *testing.T) {
	stub := &stubRecommender{resp: &dto.RecommendationResponse{}}
	r := newRecommendationRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/recommendations/5f0c9597-44ad-4c01-9c9a-26af0a0c8c64", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Zero tells the service to use its configured default
	assert.Equal(t, 0, stub.gotLimit)
}
