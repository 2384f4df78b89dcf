package dto

// RecommendationGenre is the genre shape embedded in a recommendation
// item. Field names follow the recommendation API contract.
type RecommendationGenre struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// RecommendationItem is one recommended book with its aggregates and a
// human-readable justification.
type RecommendationItem struct {
	ID           string              `json:"_id"`
	Title        string              `json:"title"`
	Author       string              `json:"author"`
	CoverImage   string              `json:"coverImage"`
	Genre        RecommendationGenre `json:"genre"`
	AvgRating    float64             `json:"avgRating"`
	ShelvedCount int64               `json:"shelvedCount"`
	ReviewCount  int64               `json:"reviewCount,omitempty"`
	Score        float64             `json:"score,omitempty"`
	Reason       string              `json:"reason"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	IsPersonalized  bool                 `json:"isPersonalized"`
	BooksRead       int                  `json:"booksRead"`
}
