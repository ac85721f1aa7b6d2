package models

import "gorm.io/datatypes"

type UserType string

const (
	UserTypeRecruiter UserType = "Recruiter"
	UserTypeDeveloper UserType = "Developer"
)

// User is a recruiter (or developer) account. The three id lists
// reference AssignedLead records: assigned holds every lead ever given
// to this recruiter; active and inactive partition the current
// engagement state.
type User struct {
	BaseModel
	FullName      string   `gorm:"not null" json:"fullName"`
	MobileNumber  string   `gorm:"not null" json:"mobileNumber"`
	City          string   `gorm:"not null" json:"city"`
	Qualification string   `gorm:"not null" json:"qualification"`
	Type          UserType `gorm:"type:varchar(20);not null" json:"type"`
	RecruiterID   string   `gorm:"uniqueIndex;not null" json:"recruiterId"`
	PasswordHash  string   `gorm:"not null" json:"-"`

	AssignedLeadIDs datatypes.JSONSlice[string] `json:"assignedLeads"`
	ActiveLeadIDs   datatypes.JSONSlice[string] `json:"activeLeads"`
	InactiveLeadIDs datatypes.JSONSlice[string] `json:"inactiveLeads"`
}

// Admin is a backoffice account able to search and manage all leads.
type Admin struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
