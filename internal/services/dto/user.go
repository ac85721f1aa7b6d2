package dto

import "recruitpro_backend/internal/models"

type CreateUserRequest struct {
	FullName      string `json:"fullName" validate:"required"`
	MobileNumber  string `json:"mobileNumber" validate:"required"`
	City          string `json:"city" validate:"required"`
	Qualification string `json:"qualification" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=Recruiter Developer"`
	RecruiterID   string `json:"recruiterId" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
	Email         string `json:"email" validate:"omitempty,email"`
}

// UpdateUserRequest is a partial profile update; empty fields are left
// untouched.
type UpdateUserRequest struct {
	FullName      string `json:"fullName"`
	MobileNumber  string `json:"mobileNumber"`
	City          string `json:"city"`
	Qualification string `json:"qualification"`
	Type          string `json:"type" validate:"omitempty,oneof=Recruiter Developer"`
}

type ResetPasswordRequest struct {
	RecruiterID string `json:"recruiterId" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UserResponse is a recruiter with its reference lists expanded into
// full assigned-lead records.
type UserResponse struct {
	models.User
	AssignedLeads []models.AssignedLead `json:"assignedLeadRecords"`
	ActiveLeads   []models.AssignedLead `json:"activeLeadRecords"`
	InactiveLeads []models.AssignedLead `json:"inactiveLeadRecords"`
}
