package dto

import (
	"bookworm/internal/http-api/models"
)

type CreateCollegeDTO struct {
	Name             string   `json:"name" binding:"required"`
	Image            string   `json:"image" binding:"required"`
	ShortDescription string   `json:"short_description" binding:"required,max=200"`
	AdmissionDate    string   `json:"admission_date" binding:"required"`
	Rating           float64                `json:"rating" binding:"min=0,max=5"`
	ResearchCount    int                    `json:"research_count"`
	ResearchHistory  string                 `json:"research_history"`
	ResearchPapers   []models.ResearchPaper `json:"research_papers"`
	Events           []string               `json:"events"`
	Sports           []string               `json:"sports"`
	Gallery          []string               `json:"gallery"`
	Graduates        []models.Graduate      `json:"graduates"`
	Description      string                 `json:"description"`
}

type UpdateCollegeDTO struct {
	Name             *string   `json:"name,omitempty"`
	Image            *string   `json:"image,omitempty"`
	ShortDescription *string   `json:"short_description,omitempty"`
	AdmissionDate    *string   `json:"admission_date,omitempty"`
	Rating           *float64                `json:"rating,omitempty"`
	ResearchCount    *int                    `json:"research_count,omitempty"`
	ResearchHistory  *string                 `json:"research_history,omitempty"`
	ResearchPapers   *[]models.ResearchPaper `json:"research_papers,omitempty"`
	Events           *[]string               `json:"events,omitempty"`
	Sports           *[]string               `json:"sports,omitempty"`
	Gallery          *[]string               `json:"gallery,omitempty"`
	Graduates        *[]models.Graduate      `json:"graduates,omitempty"`
	Description      *string                 `json:"description,omitempty"`
}

// CollegeGraduates is the graduates listing projection: college name
// plus its alumni gallery.
type CollegeGraduates struct {
	Name      string            `json:"name"`
	Graduates []models.Graduate `json:"graduates"`
}

// RecommendedPaper is one flattened research paper with its college.
type RecommendedPaper struct {
	CollegeName string `json:"college_name"`
	PaperTitle  string `json:"paper_title"`
	PaperLink   string `json:"paper_link"`
}

// CollegeForAdmission carries only the fields the admission page lists.
type CollegeForAdmission struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Image         string  `json:"image"`
	AdmissionDate string  `json:"admission_date"`
	Rating        float64 `json:"rating"`
}

func (d CreateCollegeDTO) ToModel() models.College {
	return models.College{
		Name:             d.Name,
		Image:            d.Image,
		ShortDescription: d.ShortDescription,
		AdmissionDate:    d.AdmissionDate,
		Rating:           d.Rating,
		ResearchCount:    d.ResearchCount,
		ResearchHistory:  d.ResearchHistory,
		ResearchPapers:   d.ResearchPapers,
		Events:           d.Events,
		Sports:           d.Sports,
		Gallery:          d.Gallery,
		Graduates:        d.Graduates,
		Description:      d.Description,
	}
}

func (d UpdateCollegeDTO) ApplyTo(c *models.College) {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Image != nil {
		c.Image = *d.Image
	}
	if d.ShortDescription != nil {
		c.ShortDescription = *d.ShortDescription
	}
	if d.AdmissionDate != nil {
		c.AdmissionDate = *d.AdmissionDate
	}
	if d.Rating != nil {
		c.Rating = *d.Rating
	}
	if d.ResearchCount != nil {
		c.ResearchCount = *d.ResearchCount
	}
	if d.ResearchHistory != nil {
		c.ResearchHistory = *d.ResearchHistory
	}
	if d.ResearchPapers != nil {
		c.ResearchPapers = *d.ResearchPapers
	}
	if d.Events != nil {
		c.Events = *d.Events
	}
	if d.Sports != nil {
		c.Sports = *d.Sports
	}
	if d.Gallery != nil {
		c.Gallery = *d.Gallery
	}
	if d.Graduates != nil {
		c.Graduates = *d.Graduates
	}
	if d.Description != nil {
		c.Description = *d.Description
	}
}
