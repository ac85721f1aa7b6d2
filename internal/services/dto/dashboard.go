package dto

import "recruitpro_backend/internal/repositories"

type RecruiterStats struct {
	Name     string `json:"name"`
	Assigned int    `json:"assigned"`
	Active   int    `json:"active"`
}

type DashboardStats struct {
	Active     int64                         `json:"active"`
	Inactive   int64                         `json:"inactive"`
	Pending    int64                         `json:"pending"`
	Recruiters []RecruiterStats              `json:"recruiters"`
	Timeline   []repositories.TimelineBucket `json:"timeline"`
}
