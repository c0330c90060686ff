package models

// SearchResponse wraps project search results. Total is the true number of
// matching projects in storage, which may exceed the capped Results slice.
type SearchResponse struct {
	Query   string    `json:"query"`
	Results []Project `json:"results"`
	Total   int64     `json:"total"`
}

// Statistics holds platform-wide aggregate counts and sums.
type Statistics struct {
	TotalProjects int64   `json:"total_projects"`
	TotalRaised   float64 `json:"total_raised"`
	TotalBackers  int64   `json:"total_backers"`
	TotalUsers    int64   `json:"total_users"`
}

// ProjectFilter captures the query parameters of the project listing
// endpoint.
type ProjectFilter struct {
	Skip     int
	Limit    int
	Category string
	Search   string
	SortBy   string
}
