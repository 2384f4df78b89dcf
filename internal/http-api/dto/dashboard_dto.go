package dto

// DashboardStats is the admin dashboard payload. Cached in Redis.
type DashboardStats struct {
	Overview DashboardOverview `json:"overview"`
	Charts   DashboardCharts   `json:"charts"`
}

type DashboardOverview struct {
	TotalBooks     int64 `json:"total_books"`
	TotalUsers     int64 `json:"total_users"`
	TotalReviews   int64 `json:"total_reviews"`
	PendingReviews int64 `json:"pending_reviews"`
	RecentUsers    int64 `json:"recent_users"` // registered in the last 7 days
}

type DashboardCharts struct {
	BooksPerGenre     []GenreCount   `json:"books_per_genre"`
	ShelfDistribution []ShelfCount   `json:"shelf_distribution"`
	TopRatedBooks     []TopRatedBook `json:"top_rated_books"`
	UserRoles         []RoleCount    `json:"user_roles"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type ShelfCount struct {
	Shelf string `json:"shelf"`
	Count int64  `json:"count"`
}

type TopRatedBook struct {
	Title        string  `json:"title"`
	AvgRating    float64 `json:"avg_rating"`
	TotalReviews int64   `json:"total_reviews"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}
