package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookworm/internal/http-api/dto"
	"bookworm/internal/http-api/models"
	"bookworm/internal/http-api/repository"
)

func newCollegeService(db *gorm.DB) CollegeService {
	return NewCollegeService(repository.NewCollegeRepo(db))
}

func seedCollege(t *testing.T, db *gorm.DB, college models.College) models.College {
	t.Helper()
	if college.Image == "" {
		college.Image = "campus.jpg"
	}
	if college.ShortDescription == "" {
		college.ShortDescription = "sd"
	}
	if college.AdmissionDate == "" {
		college.AdmissionDate = "2026-09-01"
	}
	require.NoError(t, db.Create(&college).Error)
	return college
}

func TestCollegeCreateRejectsDuplicateName(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newCollegeService(db)

	req := dto.CreateCollegeDTO{
		Name:             "Miskatonic",
		Image:            "campus.jpg",
		ShortDescription: "sd",
		AdmissionDate:    "2026-09-01",
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrCollegeExists)
}

func TestCollegeGraduatesListing(t *testing.T) {
	db := newRecommendationTestDB(t)
	seedCollege(t, db, models.College{
		Name: "Alumni U",
		Graduates: []models.Graduate{
			{Name: "Ada", Photo: "ada.jpg"},
			{Name: "Grace", Photo: "grace.jpg"},
		},
	})
	seedCollege(t, db, models.College{Name: "Fresh U"})

	svc := newCollegeService(db)
	listing, err := svc.Graduates(context.Background())
	require.NoError(t, err)
	require.Len(t, listing, 2)

	byName := make(map[string][]models.Graduate, len(listing))
	for _, c := range listing {
		byName[c.Name] = c.Graduates
	}
	require.Len(t, byName["Alumni U"], 2)
	assert.Equal(t, "Ada", byName["Alumni U"][0].Name)
	assert.Empty(t, byName["Fresh U"])
}

func TestCollegeRecommendedPapersNewestFirstCapped(t *testing.T) {
	db := newRecommendationTestDB(t)
	now := time.Now()

	seedCollege(t, db, models.College{
		Name:      "Old Research U",
		CreatedAt: now.Add(-48 * time.Hour),
		ResearchPapers: []models.ResearchPaper{
			{Title: "On Dust", Link: "http://papers/dust"},
			{Title: "On Rust", Link: "http://papers/rust"},
		},
	})
	seedCollege(t, db, models.College{Name: "No Papers U", CreatedAt: now.Add(-24 * time.Hour)})
	seedCollege(t, db, models.College{
		Name:      "New Research U",
		CreatedAt: now,
		ResearchPapers: []models.ResearchPaper{
			{Title: "On Light", Link: "http://papers/light"},
			{Title: "On Sound", Link: "http://papers/sound"},
		},
	})

	svc := newCollegeService(db)
	papers, err := svc.RecommendedPapers(context.Background())
	require.NoError(t, err)
	require.Len(t, papers, 3)

	assert.Equal(t, "New Research U", papers[0].CollegeName)
	assert.Equal(t, "On Light", papers[0].PaperTitle)
	assert.Equal(t, "On Sound", papers[1].PaperTitle)
	assert.Equal(t, "Old Research U", papers[2].CollegeName)
	assert.Equal(t, "On Dust", papers[2].PaperTitle)
}

func TestCollegeForAdmissionPagesNewestFirst(t *testing.T) {
	db := newRecommendationTestDB(t)
	now := time.Now()
	seedCollege(t, db, models.College{Name: "First U", Rating: 3.5, CreatedAt: now.Add(-2 * time.Hour)})
	seedCollege(t, db, models.College{Name: "Second U", Rating: 4.0, CreatedAt: now.Add(-time.Hour)})
	seedCollege(t, db, models.College{Name: "Third U", Rating: 4.5, CreatedAt: now})

	svc := newCollegeService(db)
	page1, pagination, err := svc.ForAdmission(context.Background(), 1, 2)
	require.NoError(t, err)
	require.NotNil(t, pagination)
	assert.EqualValues(t, 3, pagination.Total)
	require.Len(t, page1, 2)

	assert.Equal(t, "Third U", page1[0].Name)
	assert.Equal(t, "Second U", page1[1].Name)
	assert.NotEmpty(t, page1[0].ID)
	assert.NotEmpty(t, page1[0].Image)
	assert.NotEmpty(t, page1[0].AdmissionDate)
	assert.InDelta(t, 4.5, page1[0].Rating, 0.001)

	page2, _, err := svc.ForAdmission(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "First U", page2[0].Name)
}
