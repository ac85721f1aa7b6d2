package services

import (
	"recruitpro_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	LeadService      LeadService
	ImportService    ImportService
	SearchService    SearchService
	DashboardService DashboardService
	ClientService    ClientService
	EmailNotifier    email.Notifier
}
