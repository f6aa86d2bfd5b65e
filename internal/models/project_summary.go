package models

// ProjectSummary is the total of logged hours for one project. It is derived
// on every read and never persisted.
type ProjectSummary struct {
	ProjectNumber string  `json:"project_number" example:"P-1001"`
	TotalHours    float64 `json:"total_hours" example:"12.5"`
}
